// Package qrcode renders enrollment QR codes, either as raw PNG bytes or
// as a data-URI string that can be embedded directly into HTML pages.
//
// It is a thin wrapper around github.com/skip2/go-qrcode with sensible
// defaults and input validation, aimed at displaying otpauth://
// provisioning URIs during two-factor enrollment — though any content
// string works.
//
// # Usage
//
//	import "github.com/dmitrymomot/totpkit/pkg/qrcode"
//
//	// Raw PNG bytes
//	img, err := qrcode.Image(uri, 256)
//
//	// Base64 data URI for an <img> tag
//	dataURI, err := qrcode.DataURI(uri, 256)
//
// # Error Handling
//
// The functions return well-defined sentinel errors comparable with
// errors.Is:
//
//   • ErrEmptyContent           – the content argument was empty.
//   • ErrFailedToGenerateQRCode – the underlying library could not
//     generate the QR code.
package qrcode
