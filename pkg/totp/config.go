package totp

import (
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg  Config
	once sync.Once
)

type Config struct {
	EncryptionKey string `env:"TOTP_ENCRYPTION_KEY,required"` // Encryption key for stored TOTP secrets
}

// LoadConfig loads the configuration from the environment exactly once per
// process. The TOTP_ENCRYPTION_KEY variable must hold a base64-encoded
// 32-byte key; see GenerateEncodedEncryptionKey for producing one.
func LoadConfig() (Config, error) {
	configLoadFunc := func() (Config, error) {
		var cfg Config
		if err := env.Parse(&cfg); err != nil {
			return Config{}, err
		}
		if cfg.EncryptionKey == "" {
			return Config{}, ErrEncryptionKeyNotSet
		}
		return cfg, nil
	}

	var err error
	once.Do(func() {
		cfg, err = configLoadFunc()
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
