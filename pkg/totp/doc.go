// Package totp implements Time-based One-Time Passwords (RFC 4226/6238)
// compatible with Google Authenticator, from secret generation down to the
// base32 wire encoding.
//
// Unlike wrappers around third-party OTP libraries, the whole pipeline is
// self-contained: a strict base32 codec, cryptographically random secret
// generation, HMAC-SHA1 code derivation with RFC 4226 dynamic truncation,
// and constant-time windowed validation. Codes are always 6 decimal digits
// over 30-second periods, the parameters every mainstream authenticator
// app ships with.
//
// # Architecture
//
// The package is divided into small cohesive layers.
//
//   • codec      – base32.go implements RFC 4648 base32 with strict padding
//     validation (trailing '=' runs of 0/1/3/4/6 only, nothing misplaced)
//     and faithful zero-byte handling.
//
//   • secrets    – secret.go mints 16–128 byte secrets from crypto/rand,
//     mapping each byte's low 5 bits onto the base32 alphabet. No fallback
//     entropy source exists; failures surface as ErrNoSecureRandom.
//
//   • codes      – code.go derives codes (GenerateCode/GenerateCodeAt) and
//     verify.go validates them (ValidateCode/ValidateCodeAt) over a
//     discrepancy window using crypto/subtle constant-time comparison.
//
//   • enrollment – uri.go builds otpauth:// provisioning URIs; crypto.go
//     provides AES-256-GCM helpers for persisting secrets encrypted; and
//     recovery.go creates and verifies single-use recovery codes.
//
// Time is read from the wall clock in exactly one place, CurrentTimeStep;
// every operation also has an explicit-step variant so tests can pin time
// deterministically.
//
// # Usage
//
// The minimal happy path for enrolling a user:
//
//	package main
//
//	import (
//	    "fmt"
//	    "github.com/dmitrymomot/totpkit/pkg/totp"
//	)
//
//	func main() {
//	    // 1. Create a brand-new secret
//	    secret, _ := totp.GenerateSecretKey()
//
//	    // 2. Persist the secret encrypted in your datastore
//	    cfg, _ := totp.LoadConfig()
//	    key, _ := totp.EncryptionKeyFromConfig(cfg)
//	    encSecret, _ := totp.EncryptSecret(secret, key)
//	    _ = encSecret
//
//	    // 3. Display the bootstrap URI/QR code to the user
//	    uri, _ := totp.ProvisioningURI(totp.URIParams{
//	        Secret:      secret,
//	        AccountName: "alice@example.com",
//	        Issuer:      "Acme",
//	    })
//	    fmt.Println(uri)
//
//	    // 4. Later – validate a code provided by the user
//	    ok := totp.ValidateCode(secret, "123456")
//	    fmt.Println(ok)
//	}
//
// # Error Handling
//
// Generation and decoding surface descriptive errors wrapped with
// errors.Join; inspect them with errors.Is against package sentinels such
// as ErrInvalidBase32, ErrInvalidSecretLength, or ErrNoSecureRandom.
// ValidateCode deliberately returns only a bool: a malformed stored secret
// is indistinguishable from a wrong code, so validation cannot be used as
// a decoding oracle.
//
// # See Also
//
//   • RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   • RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
