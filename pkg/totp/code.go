package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

const (
	Digits = 6  // Standard 6-digit TOTP codes
	Period = 30 // 30-second validity window (RFC 6238 standard)
)

// codeModulus reduces the truncated 31-bit value to Digits decimal digits.
const codeModulus = 1_000_000

// CurrentTimeStep returns the number of complete 30-second periods elapsed
// since the Unix epoch. This is the only place the package reads the wall
// clock; every code path accepts an explicit step so tests can inject one.
func CurrentTimeStep() int64 {
	return time.Now().Unix() / Period
}

// GenerateCode generates the 6-digit code for the current 30-second window.
// The secret must be a base32 string accepted by DecodeBase32.
func GenerateCode(secret string) (string, error) {
	return GenerateCodeAt(secret, CurrentTimeStep())
}

// GenerateCodeAt generates the 6-digit code for an explicit time step.
// Useful for testing and for pre-computing adjacent windows.
func GenerateCodeAt(secret string, step int64) (string, error) {
	key, err := DecodeBase32(normalizeSecret(secret))
	if err != nil {
		return "", err
	}
	return hotpCode(key, step), nil
}

// normalizeSecret strips surrounding whitespace and upper-cases the secret
// before decoding, matching what authenticator apps accept on enrollment.
func normalizeSecret(secret string) string {
	return strings.ToUpper(strings.TrimSpace(secret))
}

// hotpCode implements the RFC 4226 HOTP computation for a decoded key:
// HMAC-SHA1 over the big-endian 8-byte counter, dynamic truncation to a
// 31-bit value, reduction mod 10^6, zero-padded to 6 digits.
func hotpCode(key []byte, counter int64) string {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(counter))

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): the low 4 bits of the final
	// byte select where the 4-byte window starts; the MSB is cleared so
	// the value is a positive 31-bit integer.
	offset := sum[len(sum)-1] & 0x0f
	value := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	return fmt.Sprintf("%06d", value%codeModulus)
}
