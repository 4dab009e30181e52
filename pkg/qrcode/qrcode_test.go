package qrcode_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/dmitrymomot/totpkit/pkg/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enrollmentURI = "otpauth://totp/Acme:alice@example.com?algorithm=SHA1&digits=6&issuer=Acme&period=30&secret=GEZDGNBVGY3TQOJQ"

func TestImage(t *testing.T) {
	t.Parallel()
	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Image("", 256)

		require.Error(t, err)
		require.Nil(t, result)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})

	t.Run("returns error when content is whitespace only", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Image("   \t\n", 256)

		require.Error(t, err)
		require.Nil(t, result)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})

	t.Run("renders an enrollment URI as a valid PNG", func(t *testing.T) {
		t.Parallel()
		size := 256
		result, err := qrcode.Image(enrollmentURI, size)

		require.NoError(t, err)
		require.NotEmpty(t, result)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err, "result should be a valid PNG image")
		assert.Equal(t, size, img.Bounds().Dx())
		assert.Equal(t, size, img.Bounds().Dy())
	})

	t.Run("uses default size when size is not positive", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.Image(enrollmentURI, 0)

		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(result))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()
	t.Run("propagates empty content error", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.DataURI("", 256)

		require.Error(t, err)
		assert.Empty(t, result)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})

	t.Run("returns an embeddable PNG data URI", func(t *testing.T) {
		t.Parallel()
		result, err := qrcode.DataURI(enrollmentURI, 128)

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(result, "data:image/png;base64,"))

		payload := strings.TrimPrefix(result, "data:image/png;base64,")
		raw, err := base64.StdEncoding.DecodeString(payload)
		require.NoError(t, err, "payload should be valid base64")

		_, err = png.Decode(bytes.NewReader(raw))
		require.NoError(t, err, "decoded payload should be a valid PNG image")
	})
}
