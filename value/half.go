package value

import (
	"github.com/x448/float16"
)

// DecodeHalf returns the float64 value of IEEE 754 binary16 bits.
func DecodeHalf(bits uint16) float64 {
	return float64(float16.Frombits(bits).Float32())
}

// EncodeHalf returns the binary16 bits nearest to f.
func EncodeHalf(f float64) uint16 {
	return float16.Fromfloat32(float32(f)).Bits()
}
