package convert

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/splatforge/gsplat"
)

func TestColorLinear(t *testing.T) {
	tests := []struct {
		name string
		dc   float32
		want uint8
	}{
		// dc=0: srgb 0.5, linear 0.5^2.2, round(0.21764*255) = 55.
		{"zero", 0, 55},
		{"clamped_high", 10, 255},
		{"clamped_low", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorLinear(gsplat.F32Value(tt.dc)); got != tt.want {
				t.Errorf("ColorLinear(%v) = %d, want %d", tt.dc, got, tt.want)
			}
		})
	}
}

func TestAlphaLinear(t *testing.T) {
	tests := []struct {
		name    string
		opacity float32
		want    uint8
	}{
		// o=0: logistic gives 0.5, round(127.5) = 128.
		{"zero", 0, 128},
		{"saturated", 10, 255},
		{"near_transparent", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AlphaLinear(gsplat.F32Value(tt.opacity)); got != tt.want {
				t.Errorf("AlphaLinear(%v) = %d, want %d", tt.opacity, got, tt.want)
			}
		})
	}
}

func TestAlphaAndColorFormulasDiffer(t *testing.T) {
	// The two encodings are intentionally different; a raw value that is
	// mid-range under one must not map identically under the other.
	v := gsplat.F32Value(0)
	if ColorLinear(v) == AlphaLinear(v) {
		t.Error("color and alpha conversions must not agree at 0")
	}
}

func TestScaleLinear(t *testing.T) {
	if got := ScaleLinear(gsplat.F32Value(0)); got != 1 {
		t.Errorf("ScaleLinear(0) = %v, want 1", got)
	}
	got := ScaleLinear(gsplat.F32Value(float32(math.Log(2))))
	if !scalar.EqualWithinAbs(float64(got), 2, 1e-6) {
		t.Errorf("ScaleLinear(ln 2) = %v, want 2", got)
	}
	// Sign does not matter for magnitude: the output is always positive.
	if got := ScaleLinear(gsplat.F32Value(-3)); got <= 0 {
		t.Errorf("ScaleLinear(-3) = %v, want positive", got)
	}
}

// getFrom builds a GetPropertyFn over a fixed property table.
func getFrom(values map[gsplat.Property]float32) gsplat.GetPropertyFn {
	return func(p gsplat.Property) gsplat.Value {
		return gsplat.F32Value(values[p])
	}
}

func TestSplatAxisRemap(t *testing.T) {
	get := getFrom(map[gsplat.Property]float32{
		gsplat.X: 1, gsplat.Y: 2, gsplat.Z: 3,
		gsplat.RotationW: 1,
		gsplat.ScaleX:    1, gsplat.ScaleY: 2, gsplat.ScaleZ: 3,
	})

	positions := make([]Vec3, 1)
	rotations := make([]Quat, 1)
	scales := make([]Vec3, 1)
	colors := make([]RGBA, 1)
	Splat(0, get, positions, rotations, scales, colors)

	// Z+ forward / X+ right / Y- up becomes X+ forward / Y+ right / Z+ up.
	if positions[0] != (Vec3{3, 1, -2}) {
		t.Errorf("position = %v, want {3 1 -2}", positions[0])
	}

	// Scale axes permute the same way; values leave log space.
	want := Vec3{
		float32(math.Exp(3)),
		float32(math.Exp(1)),
		float32(math.Exp(2)),
	}
	if scales[0] != want {
		t.Errorf("scale = %v, want %v", scales[0], want)
	}
}

func TestRotationHandednessFlip(t *testing.T) {
	get := getFrom(map[gsplat.Property]float32{
		gsplat.RotationX: 0.5,
		gsplat.RotationY: 0.5,
		gsplat.RotationZ: 0.5,
		gsplat.RotationW: 0.5,
	})

	q := rotation(0, get)

	want := Quat{-0.5, -0.5, 0.5, 0.5}
	if q != want {
		t.Errorf("rotation = %v, want %v", q, want)
	}
}

func TestRotationNormalized(t *testing.T) {
	tests := []struct {
		name       string
		x, y, z, w float32
	}{
		{"already_unit", 0, 0, 0, 1},
		{"unnormalized", 1, 2, 3, 4},
		{"tiny", 0, 1e-4, 0, 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			get := getFrom(map[gsplat.Property]float32{
				gsplat.RotationX: tt.x,
				gsplat.RotationY: tt.y,
				gsplat.RotationZ: tt.z,
				gsplat.RotationW: tt.w,
			})
			q := rotation(0, get)
			length := math.Sqrt(float64(q[0])*float64(q[0]) +
				float64(q[1])*float64(q[1]) +
				float64(q[2])*float64(q[2]) +
				float64(q[3])*float64(q[3]))
			if !scalar.EqualWithinAbs(length, 1, 1e-6) {
				t.Errorf("|q| = %v, want 1", length)
			}
		})
	}
}

func TestRotationZeroSubstitutesIdentity(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(zap.NewNop())

	get := getFrom(map[gsplat.Property]float32{})
	q := rotation(7, get)

	if q != identity {
		t.Errorf("rotation = %v, want identity", q)
	}
	warns := logs.FilterLevelExact(zap.WarnLevel).All()
	if len(warns) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warns))
	}
}

func TestSplatColor(t *testing.T) {
	get := getFrom(map[gsplat.Property]float32{
		gsplat.DCRed:     10, // clamps to 255
		gsplat.DCGreen:   0,  // mid gray, 55 after linearization
		gsplat.DCBlue:    -10,
		gsplat.Opacity:   0,
		gsplat.RotationW: 1,
	})

	positions := make([]Vec3, 1)
	rotations := make([]Quat, 1)
	scales := make([]Vec3, 1)
	colors := make([]RGBA, 1)
	Splat(0, get, positions, rotations, scales, colors)

	if colors[0] != (RGBA{255, 55, 0, 128}) {
		t.Errorf("color = %v, want {255 55 0 128}", colors[0])
	}
}
