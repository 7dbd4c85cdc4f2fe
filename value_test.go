package gsplat

import "testing"

func TestValueConversions(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		format PropertyFormat
		f64    float64
	}{
		{"i8", I8Value(-5), FormatI8, -5},
		{"i16", I16Value(-300), FormatI16, -300},
		{"i32", I32Value(-70000), FormatI32, -70000},
		{"u8", U8Value(200), FormatU8, 200},
		{"u16", U16Value(60000), FormatU16, 60000},
		{"u32", U32Value(4000000000), FormatU32, 4000000000},
		{"f32", F32Value(1.5), FormatF32, 1.5},
		{"f64", F64Value(-2.25), FormatF64, -2.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Format(); got != tt.format {
				t.Errorf("Format() = %v, want %v", got, tt.format)
			}
			if got := tt.value.Float64(); got != tt.f64 {
				t.Errorf("Float64() = %v, want %v", got, tt.f64)
			}
			if got := tt.value.Float32(); got != float32(tt.f64) {
				t.Errorf("Float32() = %v, want %v", got, float32(tt.f64))
			}
		})
	}
}

func TestValueZero(t *testing.T) {
	var v Value
	if !v.IsZero() {
		t.Error("zero Value should report IsZero")
	}
	if v.Float64() != 0 {
		t.Errorf("zero Value Float64() = %v, want 0", v.Float64())
	}
	if F32Value(0).IsZero() {
		t.Error("a decoded zero is not the zero Value")
	}
}
