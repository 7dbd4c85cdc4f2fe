package convert

import (
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/num/quat"

	"github.com/splatforge/gsplat"
)

// Vec3 is a position or scale triple.
type Vec3 [3]float32

// Quat is a unit quaternion in x, y, z, w order.
type Quat [4]float32

// RGBA is an 8-bit color with linear-space channels.
type RGBA [4]uint8

// identity is substituted when an asset carries an all-zero quaternion,
// whose length cannot be normalized. Substituting keeps the record usable
// instead of propagating NaN.
var identity = Quat{0, 0, 0, 1}

// ColorLinear converts a zeroth-order spherical-harmonic coefficient (DC)
// to an 8-bit linear color channel. Alpha does not use this formula; see
// AlphaLinear.
//
// Blending happens in linear space prior to the renderer's gamma
// correction, so the sRGB value recovered from the coefficient is
// linearized before quantization.
func ColorLinear(dc gsplat.Value) uint8 {
	srgb := 0.5 + 0.2820948*dc.Float64()
	linear := math.Pow(srgb, 2.2)
	return quantize(linear)
}

// AlphaLinear converts a raw opacity to an 8-bit alpha value. Opacity is
// stored with an inverse logistic encoding
// (https://en.wikipedia.org/wiki/Logit).
func AlphaLinear(opacity gsplat.Value) uint8 {
	return quantize(1 / (1 + math.Exp(-opacity.Float64())))
}

// ScaleLinear converts a log-space scaling factor to linear. The sign of
// the raw value does not matter for magnitude purposes; the result is
// always positive.
func ScaleLinear(scale gsplat.Value) float32 {
	return float32(math.Exp(scale.Float64()))
}

func quantize(linear float64) uint8 {
	v := math.Round(linear * 255)
	switch {
	case v > 255:
		return 255
	case v >= 0:
		return uint8(v)
	default:
		// Negative, or NaN from a coefficient far outside the sRGB range.
		return 0
	}
}

// Splat extracts and converts one record, writing into the caller-owned
// output slices at index. The slices must be pre-sized to the record
// count; Splat performs no bounds checking of its own.
//
// Axes are remapped from the asset's Z+ forward, X+ right, Y- up frame to
// X+ forward, Y+ right, Z+ up.
func Splat(index int, get gsplat.GetPropertyFn, positions []Vec3, rotations []Quat, scales []Vec3, colors []RGBA) {
	positions[index] = Vec3{
		get(gsplat.Z).Float32(),
		get(gsplat.X).Float32(),
		-get(gsplat.Y).Float32(),
	}

	rotations[index] = rotation(index, get)

	scales[index] = Vec3{
		ScaleLinear(get(gsplat.ScaleZ)),
		ScaleLinear(get(gsplat.ScaleX)),
		ScaleLinear(get(gsplat.ScaleY)),
	}

	colors[index] = RGBA{
		ColorLinear(get(gsplat.DCRed)),
		ColorLinear(get(gsplat.DCGreen)),
		ColorLinear(get(gsplat.DCBlue)),
		AlphaLinear(get(gsplat.Opacity)),
	}
}

// rotation applies the handedness flip and renormalizes. Swapping
// handedness negates every imaginary component; z reads positive because
// the axis remap already negates Y.
func rotation(index int, get gsplat.GetPropertyFn) Quat {
	x := -get(gsplat.RotationZ).Float32()
	y := -get(gsplat.RotationX).Float32()
	z := get(gsplat.RotationY).Float32()
	w := get(gsplat.RotationW).Float32()

	length := quat.Abs(quat.Number{
		Real: float64(w),
		Imag: float64(x),
		Jmag: float64(y),
		Kmag: float64(z),
	})
	if length == 0 {
		Logger().Warn("zero-length rotation quaternion, substituting identity",
			zap.Int("index", index))
		return identity
	}

	l := float32(length)
	return Quat{x / l, y / l, z / l, w / l}
}
