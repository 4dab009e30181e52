package totp

import "errors"

var (
	ErrInvalidBase32            = errors.New("invalid base32 input")
	ErrInvalidPadding           = errors.New("invalid base32 padding")
	ErrInvalidCharacter         = errors.New("character outside base32 alphabet")
	ErrInvalidSecretLength      = errors.New("secret length out of bounds, must be 16 to 128 bytes")
	ErrNoSecureRandom           = errors.New("no secure random source available")
	ErrMissingSecret            = errors.New("missing secret")
	ErrInvalidSecret            = errors.New("invalid secret")
	ErrMissingAccountName       = errors.New("missing account name")
	ErrMissingIssuer            = errors.New("missing issuer")
	ErrFailedToEncryptSecret    = errors.New("failed to encrypt TOTP secret")
	ErrFailedToDecryptSecret    = errors.New("failed to decrypt TOTP secret")
	ErrInvalidCipherTooShort    = errors.New("cipher text too short")
	ErrFailedToGenerateKey      = errors.New("failed to generate encryption key")
	ErrFailedToLoadKey          = errors.New("failed to load encryption key")
	ErrInvalidEncryptionKeySize = errors.New("invalid encryption key length")
	ErrEncryptionKeyNotSet      = errors.New("TOTP encryption key not set")
	ErrInvalidRecoveryCodeCount = errors.New("invalid recovery code count, must be greater than 0")
	ErrFailedToGenerateRecovery = errors.New("failed to generate recovery code")
)
