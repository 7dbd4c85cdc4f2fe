package gsplat

import "testing"

func TestPropertyString(t *testing.T) {
	tests := []struct {
		prop Property
		want string
	}{
		{Ignore, "ignore"},
		{X, "x"},
		{RotationW, "rotation_w"},
		{DCBlue, "dc_blue"},
		{Opacity, "opacity"},
		{Property(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.prop.String(); got != tt.want {
			t.Errorf("Property(%d).String() = %q, want %q", tt.prop, got, tt.want)
		}
	}
}

func TestPropertyFormatSize(t *testing.T) {
	tests := []struct {
		format PropertyFormat
		size   int
	}{
		{FormatUnknown, 0},
		{FormatI8, 1},
		{FormatI16, 2},
		{FormatI32, 4},
		{FormatU8, 1},
		{FormatU16, 2},
		{FormatU32, 4},
		{FormatF32, 4},
		{FormatF64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.Size(); got != tt.size {
				t.Errorf("size: got %d, want %d", got, tt.size)
			}
		})
	}

	// Declarable formats all have nonzero width so that ignored
	// properties of any type keep the stride accounting correct.
	for f := FormatI8; f <= FormatF64; f++ {
		if f.Size() == 0 {
			t.Errorf("format %v has zero size", f)
		}
	}
}
