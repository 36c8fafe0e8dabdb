package value

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
)

// EncodeBase16 returns the upper case hexadecimal text of b.
func EncodeBase16(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// DecodeBase16 decodes hexadecimal text in either case.
func DecodeBase16(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base16: %w", ErrConversion, err)
	}
	return b, nil
}

// EncodeBase64 returns padded standard base64 text.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes standard base64 text, padded or not.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %w", ErrConversion, err)
	}
	return b, nil
}

// EncodeBase64URL returns unpadded url-safe base64 text.
func EncodeBase64URL(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBase64URL decodes url-safe base64 text, padded or not.
func DecodeBase64URL(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: base64url: %w", ErrConversion, err)
	}
	return b, nil
}

// EncodeBytes renders b as text according to tag. Tags other than the
// binary text tags use base64url.
func EncodeBytes(b []byte, tag SemanticTag) string {
	switch tag {
	case Base16:
		return EncodeBase16(b)
	case Base64:
		return EncodeBase64(b)
	default:
		return EncodeBase64URL(b)
	}
}

// DecodeBytes decodes s according to tag, which must be a binary text tag.
func DecodeBytes(s string, tag SemanticTag) ([]byte, error) {
	switch tag {
	case Base16:
		return DecodeBase16(s)
	case Base64:
		return DecodeBase64(s)
	case Base64URL:
		return DecodeBase64URL(s)
	default:
		return nil, fmt.Errorf("%w: tag %q is not a binary text encoding", ErrConversion, tag)
	}
}
