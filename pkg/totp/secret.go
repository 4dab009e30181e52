package totp

import (
	"crypto/rand"
	"errors"
)

const (
	// DefaultSecretLength is the number of random bytes consumed when no
	// explicit length is requested (128 bits of source entropy).
	DefaultSecretLength = 16
	// MinSecretLength and MaxSecretLength bound GenerateSecretKeyLen.
	MinSecretLength = 16
	MaxSecretLength = 128
)

// GenerateSecretKey generates a new base32 secret key of the default length.
func GenerateSecretKey() (string, error) {
	return GenerateSecretKeyLen(DefaultSecretLength)
}

// GenerateSecretKeyLen generates a secret key from length random bytes,
// where length must be between 16 and 128 inclusive.
//
// Each random byte is reduced to its low 5 bits and mapped to one alphabet
// character, so the output has exactly length characters and no padding.
// This per-byte mapping is what Google Authenticator-compatible tooling
// expects; secrets produced here decode cleanly with DecodeBase32.
//
// Randomness comes from crypto/rand only. If the platform CSPRNG is
// unavailable the call fails with ErrNoSecureRandom; there is no fallback
// to a weaker source.
func GenerateSecretKeyLen(length int) (string, error) {
	if length < MinSecretLength || length > MaxSecretLength {
		return "", ErrInvalidSecretLength
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrNoSecureRandom, err)
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = Base32Alphabet[b&0x1f]
	}
	return string(out), nil
}
