package value

import "fmt"

// StorageKind selects which of the payload shapes a Value currently holds.
type StorageKind uint8

const (
	NullKind StorageKind = iota
	BoolKind
	Int64Kind
	Uint64Kind
	HalfKind
	DoubleKind
	ShortStringKind
	LongStringKind
	ByteStringKind
	ArrayKind
	EmptyObjectKind
	ObjectKind
)

var kindNames = [...]string{
	NullKind:        "null",
	BoolKind:        "bool",
	Int64Kind:       "int64",
	Uint64Kind:      "uint64",
	HalfKind:        "half_float",
	DoubleKind:      "double",
	ShortStringKind: "short_string",
	LongStringKind:  "long_string",
	ByteStringKind:  "byte_string",
	ArrayKind:       "array",
	EmptyObjectKind: "empty_object",
	ObjectKind:      "object",
}

func (k StorageKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("<unknown kind %d>", uint8(k))
}

func (k StorageKind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("unknown storage kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *StorageKind) UnmarshalText(d []byte) error {
	for i, name := range kindNames {
		if name == string(d) {
			*k = StorageKind(i)
			return nil
		}
	}
	return fmt.Errorf("unrecognized storage kind %q", d)
}

// Kinds returns every storage kind in declaration order.
func Kinds() []StorageKind {
	res := make([]StorageKind, len(kindNames))
	for i := range kindNames {
		res[i] = StorageKind(i)
	}
	return res
}

// IsHeap reports whether values of this kind own a heap payload.
func (k StorageKind) IsHeap() bool {
	switch k {
	case LongStringKind, ByteStringKind, ArrayKind, ObjectKind:
		return true
	default:
		return false
	}
}

// rank orders unrelated kinds.
// Order: Null < Object < Bool < Number < String < ByteString < Array
func (k StorageKind) rank() int {
	switch k {
	case NullKind:
		return 0
	case EmptyObjectKind, ObjectKind:
		return 1
	case BoolKind:
		return 2
	case Int64Kind, Uint64Kind, HalfKind, DoubleKind:
		return 3
	case ShortStringKind, LongStringKind:
		return 4
	case ByteStringKind:
		return 5
	case ArrayKind:
		return 6
	}
	return 100
}

// Type is the coarse, representation independent type of a value: both
// string representations are StringType and both object representations are
// ObjectType.
type Type int

const (
	NullType Type = iota
	BoolType
	Int64Type
	Uint64Type
	HalfType
	DoubleType
	StringType
	ByteStringType
	ArrayType
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:       "Null",
		BoolType:       "Bool",
		Int64Type:      "Int64",
		Uint64Type:     "Uint64",
		HalfType:       "Half",
		DoubleType:     "Double",
		StringType:     "String",
		ByteStringType: "ByteString",
		ArrayType:      "Array",
		ObjectType:     "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		Int64Type,
		Uint64Type,
		HalfType,
		DoubleType,
		StringType,
		ByteStringType,
		ArrayType,
		ObjectType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

func (k StorageKind) Type() Type {
	switch k {
	case BoolKind:
		return BoolType
	case Int64Kind:
		return Int64Type
	case Uint64Kind:
		return Uint64Type
	case HalfKind:
		return HalfType
	case DoubleKind:
		return DoubleType
	case ShortStringKind, LongStringKind:
		return StringType
	case ByteStringKind:
		return ByteStringType
	case ArrayKind:
		return ArrayType
	case EmptyObjectKind, ObjectKind:
		return ObjectType
	default:
		return NullType
	}
}
