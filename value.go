package gsplat

import "math"

// Value is one decoded property value, tagged with its wire format. It is
// a discriminated union over the numeric primitive kinds rather than an
// untyped blob: each constructor records the format and the accessors
// convert from whichever kind is held.
type Value struct {
	bits   uint64
	format PropertyFormat
}

func I8Value(v int8) Value   { return Value{bits: uint64(v), format: FormatI8} }
func I16Value(v int16) Value { return Value{bits: uint64(v), format: FormatI16} }
func I32Value(v int32) Value { return Value{bits: uint64(v), format: FormatI32} }
func U8Value(v uint8) Value  { return Value{bits: uint64(v), format: FormatU8} }
func U16Value(v uint16) Value {
	return Value{bits: uint64(v), format: FormatU16}
}
func U32Value(v uint32) Value {
	return Value{bits: uint64(v), format: FormatU32}
}
func F32Value(v float32) Value {
	return Value{bits: uint64(math.Float32bits(v)), format: FormatF32}
}
func F64Value(v float64) Value {
	return Value{bits: math.Float64bits(v), format: FormatF64}
}

// Format returns the wire format the value was decoded from.
func (v Value) Format() PropertyFormat { return v.format }

// Float64 converts the held value to float64, whatever its kind. A zero
// Value (FormatUnknown) converts to 0.
func (v Value) Float64() float64 {
	switch v.format {
	case FormatI8:
		return float64(int8(v.bits))
	case FormatI16:
		return float64(int16(v.bits))
	case FormatI32:
		return float64(int32(v.bits))
	case FormatU8:
		return float64(uint8(v.bits))
	case FormatU16:
		return float64(uint16(v.bits))
	case FormatU32:
		return float64(uint32(v.bits))
	case FormatF32:
		return float64(math.Float32frombits(uint32(v.bits)))
	case FormatF64:
		return math.Float64frombits(v.bits)
	default:
		return 0
	}
}

// Float32 converts the held value to float32, whatever its kind.
func (v Value) Float32() float32 {
	if v.format == FormatF32 {
		return math.Float32frombits(uint32(v.bits))
	}
	return float32(v.Float64())
}

// IsZero reports whether the value is the zero Value, i.e. was never
// decoded. The decoder yields it for formats it does not implement.
func (v Value) IsZero() bool {
	return v.format == FormatUnknown && v.bits == 0
}
