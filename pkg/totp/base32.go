package totp

import (
	"errors"
	"strings"
)

const (
	// Base32Alphabet is the RFC 4648 data alphabet used for secrets.
	Base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	base32Padding  = '='
)

// base32Values maps an ASCII byte to its 5-bit value, or -1 for bytes
// outside the alphabet. Built once at package init, never mutated.
var base32Values = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Base32Alphabet); i++ {
		t[Base32Alphabet[i]] = int8(i)
	}
	return t
}()

// validPaddingCounts are the trailing '=' run lengths an 8-character
// base32 block can legally produce (RFC 4648).
var validPaddingCounts = map[int]bool{0: true, 1: true, 3: true, 4: true, 6: true}

// EncodeBase32 encodes src as standard base32 with '=' padding up to the
// next 8-character block boundary. The inverse of DecodeBase32.
func EncodeBase32(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow((len(src)*8/5 + 8) &^ 7)

	var buf uint32
	var bits uint
	for _, c := range src {
		buf = buf<<8 | uint32(c)
		bits += 8
		for bits >= 5 {
			bits -= 5
			b.WriteByte(Base32Alphabet[buf>>bits&0x1f])
		}
	}
	if bits > 0 {
		b.WriteByte(Base32Alphabet[buf<<(5-bits)&0x1f])
	}
	for b.Len()%8 != 0 {
		b.WriteByte(base32Padding)
	}
	return b.String()
}

// DecodeBase32 decodes a base32 string into raw bytes.
//
// Padding is validated strictly: the trailing '=' run must be 0, 1, 3, 4
// or 6 characters long, and no '=' may appear anywhere else in the input.
// Any byte outside the 32-character data alphabet is rejected. Decoded
// bytes are appended verbatim, including NUL bytes, so secrets containing
// zero bytes survive the round trip. An empty string decodes to an empty
// byte slice.
func DecodeBase32(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	trailing := 0
	for i := len(s) - 1; i >= 0 && s[i] == base32Padding; i-- {
		trailing++
	}
	if !validPaddingCounts[trailing] {
		return nil, errors.Join(ErrInvalidBase32, ErrInvalidPadding)
	}
	if strings.Count(s, string(base32Padding)) != trailing {
		return nil, errors.Join(ErrInvalidBase32, ErrInvalidPadding)
	}

	data := s[:len(s)-trailing]
	out := make([]byte, 0, len(data)*5/8)

	var buf uint32
	var bits uint
	for i := 0; i < len(data); i++ {
		v := base32Values[data[i]]
		if v < 0 {
			return nil, errors.Join(ErrInvalidBase32, ErrInvalidCharacter)
		}
		buf = buf<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			out = append(out, byte(buf>>bits))
		}
	}
	return out, nil
}
