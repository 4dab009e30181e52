package totp

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
)

// algorithm is the only HMAC algorithm this package speaks. It is spelled
// out in provisioning URIs so authenticator apps don't have to guess.
const algorithm = "SHA1"

// SecretKeyRegex ensures base32 format: uppercase A-Z, digits 2-7, optional padding
var SecretKeyRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

// URIParams holds the inputs for building an otpauth:// provisioning URI.
type URIParams struct {
	Secret      string // Base32-encoded TOTP secret key (required)
	AccountName string // User identifier like email (required)
	Issuer      string // Service name displayed in authenticator apps (required)
}

// Validate ensures all required provisioning parameters are present and valid.
func (p URIParams) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !SecretKeyRegex.MatchString(p.Secret) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// ProvisioningURI builds a Key Uri Format string for onboarding the secret
// into Google Authenticator and compatible apps:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// The algorithm, digit count, and period are fixed at SHA1/6/30; they are
// still written into the query so the URI is self-describing.
func ProvisioningURI(params URIParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", params.Secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", algorithm)
	query.Set("digits", strconv.Itoa(Digits))
	query.Set("period", strconv.Itoa(Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}
