// Package convert maps raw 3DGS property values into render-ready
// position, rotation, scale and color outputs.
//
// # Coordinate System
//
// Splat assets store positions in a Z+ forward, X+ right, Y- up frame;
// outputs use X+ forward, Y+ right, Z+ up. The axis remap reverses
// handedness, so the quaternion's imaginary components are negated and
// the result is renormalized.
//
// # Color Space
//
// The zeroth-order (DC) spherical-harmonic coefficients encode a solid
// sRGB color; channels are converted to linear space before quantization
// because injection into the render pipeline happens prior to gamma
// correction. Opacity uses a logistic (inverse logit) encoding and a
// deliberately different formula from the color channels.
//
// # Usage
//
// ValidateMetadata decides whether an asset carries the full property set
// this importer requires; Splat converts one record into caller-owned
// output slices sized to the record count.
package convert
