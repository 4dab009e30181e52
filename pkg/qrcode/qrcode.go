package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when the content string is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrFailedToGenerateQRCode is returned when QR code generation fails.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
)

// defaultSize is the edge length in pixels used when no size is specified.
// 256px scans reliably from both desktop and mobile screens.
const defaultSize = 256

// Image renders content, typically an otpauth:// provisioning URI, as a
// PNG QR code. A size of zero or less falls back to the default.
func Image(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = defaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrFailedToGenerateQRCode, err)
	}
	return png, nil
}

// DataURI renders content as a QR code and returns it as a base64 PNG
// data-URI, ready to embed in an <img> tag during enrollment:
//
//	<img src="{{.QrCode}}">
func DataURI(content string, size int) (string, error) {
	png, err := Image(content, size)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(png)), nil
}
