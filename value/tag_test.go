package value

import (
	"errors"
	"testing"
)

func TestTagText(t *testing.T) {
	for tag := NoTag; tag < numTags; tag++ {
		d, err := tag.MarshalText()
		if err != nil {
			t.Fatalf("%d: %v", tag, err)
		}
		var back SemanticTag
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%q: %v", d, err)
		}
		if back != tag {
			t.Errorf("%q round trip gave %v", d, back)
		}
	}
	if tag, err := ParseTag("base64"); err != nil || tag != Base64 {
		t.Errorf("ParseTag without '!' = %v, %v", tag, err)
	}
	if _, err := ParseTag("!nope"); !errors.Is(err, ErrConversion) {
		t.Errorf("ParseTag(!nope) err = %v", err)
	}
	if !Bigdec.IsNumber() || Base64.IsNumber() || !Base16.IsBinaryText() || Datetime.IsBinaryText() {
		t.Errorf("tag predicates wrong")
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back StorageKind
		if err := back.UnmarshalText(d); err != nil || back != k {
			t.Errorf("%q round trip gave %v, %v", d, back, err)
		}
	}
	if k := StorageKind(200); k.String() == "" {
		t.Errorf("unknown kind has empty name")
	}
	if LongStringKind.Type() != StringType || EmptyObjectKind.Type() != ObjectType {
		t.Errorf("coarse types wrong")
	}
	if !ByteStringKind.IsHeap() || ShortStringKind.IsHeap() || EmptyObjectKind.IsHeap() {
		t.Errorf("IsHeap wrong")
	}
}

func TestCodecs(t *testing.T) {
	data := []byte{0x00, 0xfb, 0xff, 'a'}
	for _, tag := range []SemanticTag{Base16, Base64, Base64URL} {
		s := EncodeBytes(data, tag)
		back, err := DecodeBytes(s, tag)
		if err != nil {
			t.Fatalf("%v: %v", tag, err)
		}
		if string(back) != string(data) {
			t.Errorf("%v: %q round trip gave %x", tag, s, back)
		}
	}
	if got := EncodeBytes(data, NoTag); got != EncodeBase64URL(data) {
		t.Errorf("default encoding %q", got)
	}
	if _, err := DecodeBase64("!!"); !errors.Is(err, ErrConversion) {
		t.Errorf("bad base64 err = %v", err)
	}
	if _, err := DecodeBytes("AA", URI); !errors.Is(err, ErrConversion) {
		t.Errorf("non-binary tag err = %v", err)
	}
	if h := EncodeHalf(1.0); h != 0x3c00 || DecodeHalf(h) != 1 {
		t.Errorf("half 1.0 = %#x", h)
	}
}
