package value

import (
	"fmt"
	"strings"
)

// SemanticTag is an interpretation hint carried by every value alongside its
// storage kind. Tags never change how a value is stored; they change how it
// converts to and from text, bytes and numbers.
type SemanticTag uint8

const (
	NoTag SemanticTag = iota
	Undefined
	Datetime
	Timestamp
	EpochMilli
	EpochNano
	Bigint
	Bigdec
	Bigfloat
	Base16
	Base64
	Base64URL
	URI
	Float128
	ID
	Regex

	numTags
)

var tagNames = [numTags]string{
	NoTag:      "",
	Undefined:  "!undefined",
	Datetime:   "!datetime",
	Timestamp:  "!timestamp",
	EpochMilli: "!epochmilli",
	EpochNano:  "!epochnano",
	Bigint:     "!bigint",
	Bigdec:     "!bigdec",
	Bigfloat:   "!bigfloat",
	Base16:     "!base16",
	Base64:     "!base64",
	Base64URL:  "!base64url",
	URI:        "!uri",
	Float128:   "!float128",
	ID:         "!id",
	Regex:      "!regex",
}

// String returns the tag in tag syntax, e.g. "!base64". NoTag is "".
func (t SemanticTag) String() string {
	if t < numTags {
		return tagNames[t]
	}
	return fmt.Sprintf("!<tag %d>", uint8(t))
}

// ParseTag parses a tag in tag syntax. The leading '!' is optional and the
// empty string parses as NoTag.
func ParseTag(s string) (SemanticTag, error) {
	if s == "" || s == "!" {
		return NoTag, nil
	}
	if !strings.HasPrefix(s, "!") {
		s = "!" + s
	}
	for i := 1; i < int(numTags); i++ {
		if tagNames[i] == s {
			return SemanticTag(i), nil
		}
	}
	return NoTag, fmt.Errorf("%w: unknown semantic tag %q", ErrConversion, s)
}

func (t SemanticTag) MarshalText() ([]byte, error) {
	if t >= numTags {
		return nil, fmt.Errorf("unknown semantic tag %d", uint8(t))
	}
	return []byte(tagNames[t]), nil
}

func (t *SemanticTag) UnmarshalText(d []byte) error {
	pt, err := ParseTag(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// IsNumber reports whether strings carrying this tag hold numbers.
func (t SemanticTag) IsNumber() bool {
	switch t {
	case Bigint, Bigdec, Bigfloat:
		return true
	default:
		return false
	}
}

// IsBinaryText reports whether strings carrying this tag are a textual
// encoding of bytes.
func (t SemanticTag) IsBinaryText() bool {
	switch t {
	case Base16, Base64, Base64URL:
		return true
	default:
		return false
	}
}

// ext packs a storage kind (low nibble) and a semantic tag (high nibble) into
// the single discriminant byte that leads every Value.
type ext uint8

func makeExt(k StorageKind, t SemanticTag) ext {
	return ext(uint8(k)&0x0f | uint8(t)<<4)
}

func (e ext) kind() StorageKind { return StorageKind(e & 0x0f) }
func (e ext) tag() SemanticTag  { return SemanticTag(e >> 4) }
