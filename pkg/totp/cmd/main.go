package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrymomot/totpkit/pkg/qrcode"
	"github.com/dmitrymomot/totpkit/pkg/totp"
)

func main() {
	issuer := flag.String("issuer", "", "service name shown in authenticator apps")
	account := flag.String("account", "", "account identifier, usually an email")
	secretLen := flag.Int("len", totp.DefaultSecretLength, "secret length in bytes (16-128)")
	qrOut := flag.String("qr", "", "write an enrollment QR code PNG to this path")
	newKey := flag.Bool("newkey", false, "print a fresh base64 encryption key (for TOTP_ENCRYPTION_KEY) and exit")
	flag.Parse()

	if *newKey {
		encodedKey, err := totp.GenerateEncodedEncryptionKey()
		if err != nil {
			log.Fatalf("Failed to generate encoded encryption key: %v", err)
		}
		fmt.Printf("Generated Encoded Encryption Key (for TOTP_ENCRYPTION_KEY env var): \n———\n%s\n———\n", encodedKey)
		return
	}

	if *issuer == "" || *account == "" {
		log.Fatal("both -issuer and -account are required")
	}

	secret, err := totp.GenerateSecretKeyLen(*secretLen)
	if err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	uri, err := totp.ProvisioningURI(totp.URIParams{
		Secret:      secret,
		AccountName: *account,
		Issuer:      *issuer,
	})
	if err != nil {
		log.Fatalf("Failed to build provisioning URI: %v", err)
	}

	fmt.Printf("Secret: %s\nURI:    %s\n", secret, uri)

	if *qrOut != "" {
		png, err := qrcode.Image(uri, 0)
		if err != nil {
			log.Fatalf("Failed to generate enrollment QR code: %v", err)
		}
		if err := os.WriteFile(*qrOut, png, 0o600); err != nil {
			log.Fatalf("Failed to write QR code file: %v", err)
		}
		fmt.Printf("QR:     %s\n", *qrOut)
	}
}
