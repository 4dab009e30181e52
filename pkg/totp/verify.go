package totp

import "crypto/subtle"

// DefaultDiscrepancy is the number of adjacent 30-second steps tolerated
// on each side of the current step during validation (±30s of clock drift).
const DefaultDiscrepancy = 1

// ValidateCode validates a user-submitted code against the current time
// step with the default discrepancy window.
func ValidateCode(secret, code string) bool {
	return ValidateCodeAt(secret, code, CurrentTimeStep(), DefaultDiscrepancy)
}

// ValidateCodeAt validates a code against an explicit time step, accepting
// codes from any step in [step-discrepancy, step+discrepancy].
//
// It returns only a bool: a secret that fails to decode reports false
// exactly like a wrong code, so callers cannot be turned into an oracle
// that distinguishes malformed stored secrets from bad guesses. Each
// candidate is compared in constant time.
func ValidateCodeAt(secret, code string, step int64, discrepancy int) bool {
	if len(code) != Digits {
		return false
	}

	key, err := DecodeBase32(normalizeSecret(secret))
	if err != nil {
		return false
	}

	for offset := -discrepancy; offset <= discrepancy; offset++ {
		candidate := hotpCode(key, step+int64(offset))
		if subtle.ConstantTimeCompare([]byte(candidate), []byte(code)) == 1 {
			return true
		}
	}
	return false
}
