package totp_test

import (
	"testing"

	"github.com/dmitrymomot/totpkit/pkg/totp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvisioningURI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		params  totp.URIParams
		want    string
		wantErr error
	}{
		{
			name: "Basic URI",
			params: totp.URIParams{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test@example.com",
				Issuer:      "TestApp",
			},
			want: "otpauth://totp/TestApp:test@example.com?algorithm=SHA1&digits=6&issuer=TestApp&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "URI with special characters",
			params: totp.URIParams{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test+user@example.com",
				Issuer:      "Test & App",
			},
			want: "otpauth://totp/Test%20&%20App:test+user@example.com?algorithm=SHA1&digits=6&issuer=Test+%26+App&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "Missing secret",
			params: totp.URIParams{
				AccountName: "test@example.com",
				Issuer:      "TestApp",
			},
			wantErr: totp.ErrMissingSecret,
		},
		{
			name: "Invalid secret characters",
			params: totp.URIParams{
				Secret:      "not-base32!",
				AccountName: "test@example.com",
				Issuer:      "TestApp",
			},
			wantErr: totp.ErrInvalidSecret,
		},
		{
			name: "Missing account name",
			params: totp.URIParams{
				Secret: "ABCDEFGHIJKLMNOP",
				Issuer: "TestApp",
			},
			wantErr: totp.ErrMissingAccountName,
		},
		{
			name: "Missing issuer",
			params: totp.URIParams{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test@example.com",
			},
			wantErr: totp.ErrMissingIssuer,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.ProvisioningURI(tt.params)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvisioningURIFromGeneratedSecret(t *testing.T) {
	t.Parallel()
	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	uri, err := totp.ProvisioningURI(totp.URIParams{
		Secret:      secret,
		AccountName: "alice@example.com",
		Issuer:      "Acme",
	})
	require.NoError(t, err)
	assert.Contains(t, uri, "otpauth://totp/Acme:alice@example.com")
	assert.Contains(t, uri, "secret="+secret)
}
