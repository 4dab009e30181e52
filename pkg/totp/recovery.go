package totp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
)

// GenerateRecoveryCodes creates single-use backup codes for account
// recovery. Each code is a 16-character hexadecimal string (64 bits of
// entropy) drawn from crypto/rand.
func GenerateRecoveryCodes(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidRecoveryCodeCount
	}

	codes := make([]string, count)
	for i := 0; i < count; i++ {
		codeBytes := make([]byte, 8)
		if _, err := rand.Read(codeBytes); err != nil {
			return nil, errors.Join(ErrFailedToGenerateRecovery, ErrNoSecureRandom, err)
		}
		codes[i] = fmt.Sprintf("%X", codeBytes)
	}
	return codes, nil
}

// HashRecoveryCode creates a SHA-256 hash for secure storage of recovery codes.
func HashRecoveryCode(code string) string {
	hash := sha256.Sum256([]byte(code))
	return hex.EncodeToString(hash[:])
}

// VerifyRecoveryCode checks a submitted code against its stored hash in
// constant time so comparison latency reveals nothing about where the
// hashes diverge.
func VerifyRecoveryCode(code, hashedCode string) bool {
	computedHash := HashRecoveryCode(code)

	return subtle.ConstantTimeCompare(
		[]byte(computedHash),
		[]byte(hashedCode),
	) == 1
}
