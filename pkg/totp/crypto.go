package totp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

const (
	EncryptionKeySize = 32 // Required key size for AES-256 (256 bits / 8 = 32 bytes)
)

// EncryptSecret encrypts a TOTP secret with AES-256-GCM for storage.
// Returns the ciphertext (nonce-prefixed) as a base64-encoded string.
func EncryptSecret(plainText string, key []byte) (string, error) {
	if len(key) != EncryptionKeySize {
		return "", errors.Join(ErrFailedToEncryptSecret, ErrInvalidEncryptionKeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", errors.Join(ErrFailedToEncryptSecret, err)
	}

	cipherText := aesGCM.Seal(nonce, nonce, []byte(plainText), nil)
	return base64.StdEncoding.EncodeToString(cipherText), nil
}

// DecryptSecret reverses EncryptSecret, expecting the base64-encoded,
// nonce-prefixed ciphertext produced by it.
func DecryptSecret(cipherTextBase64 string, key []byte) (string, error) {
	if len(key) != EncryptionKeySize {
		return "", errors.Join(ErrFailedToDecryptSecret, ErrInvalidEncryptionKeySize)
	}

	cipherText, err := base64.StdEncoding.DecodeString(cipherTextBase64)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(cipherText) < nonceSize {
		return "", errors.Join(ErrFailedToDecryptSecret, ErrInvalidCipherTooShort)
	}
	nonce, cipherText := cipherText[:nonceSize], cipherText[nonceSize:]

	plainText, err := aesGCM.Open(nil, nonce, cipherText, nil)
	if err != nil {
		return "", errors.Join(ErrFailedToDecryptSecret, err)
	}

	return string(plainText), nil
}

// GenerateEncryptionKey creates a new random 32-byte key suitable for
// AES-256 encryption of stored secrets.
func GenerateEncryptionKey() ([]byte, error) {
	key := make([]byte, EncryptionKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.Join(ErrFailedToGenerateKey, ErrNoSecureRandom, err)
	}
	return key, nil
}

// GenerateEncodedEncryptionKey creates a new random encryption key and
// returns it base64-encoded, ready to drop into configuration.
func GenerateEncodedEncryptionKey() (string, error) {
	key, err := GenerateEncryptionKey()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// EncryptionKeyFromConfig decodes the base64 encryption key carried by the
// configuration and enforces the AES-256 key size.
func EncryptionKeyFromConfig(cfg Config) ([]byte, error) {
	if cfg.EncryptionKey == "" {
		return nil, errors.Join(ErrFailedToLoadKey, ErrEncryptionKeyNotSet)
	}

	key, err := base64.StdEncoding.DecodeString(cfg.EncryptionKey)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadKey, err)
	}

	if len(key) != EncryptionKeySize {
		return nil, errors.Join(ErrFailedToLoadKey, ErrInvalidEncryptionKeySize)
	}

	return key, nil
}
