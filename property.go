package gsplat

// Property identifies a semantic per-splat attribute that may appear in a
// 3DGS asset. Ignore marks a declared attribute the importer does not
// consume; it still occupies space in each record.
type Property uint8

const (
	Ignore Property = iota
	X
	Y
	Z
	RotationX
	RotationY
	RotationZ
	RotationW
	ScaleX
	ScaleY
	ScaleZ
	DCRed
	DCGreen
	DCBlue
	Opacity
)

var propertyNames = [...]string{
	Ignore:    "ignore",
	X:         "x",
	Y:         "y",
	Z:         "z",
	RotationX: "rotation_x",
	RotationY: "rotation_y",
	RotationZ: "rotation_z",
	RotationW: "rotation_w",
	ScaleX:    "scale_x",
	ScaleY:    "scale_y",
	ScaleZ:    "scale_z",
	DCRed:     "dc_red",
	DCGreen:   "dc_green",
	DCBlue:    "dc_blue",
	Opacity:   "opacity",
}

func (p Property) String() string {
	if int(p) < len(propertyNames) {
		return propertyNames[p]
	}
	return "unknown"
}

// PropertyFormat is the wire encoding of one property's bytes within a
// record. It is kept separate from the decoded Go representation so that
// formats that are not one-to-one with a Go type (packed vectors, LUT
// indices) can be added without touching Property.
type PropertyFormat uint8

const (
	FormatUnknown PropertyFormat = iota
	FormatI8
	FormatI16
	FormatI32
	FormatU8
	FormatU16
	FormatU32
	FormatF32
	FormatF64
)

var formatNames = [...]string{
	FormatUnknown: "unknown",
	FormatI8:      "i8",
	FormatI16:     "i16",
	FormatI32:     "i32",
	FormatU8:      "u8",
	FormatU16:     "u16",
	FormatU32:     "u32",
	FormatF32:     "f32",
	FormatF64:     "f64",
}

func (f PropertyFormat) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

var formatSizes = [...]int{
	FormatUnknown: 0,
	FormatI8:      1,
	FormatI16:     2,
	FormatI32:     4,
	FormatU8:      1,
	FormatU16:     2,
	FormatU32:     4,
	FormatF32:     4,
	FormatF64:     8,
}

// Size returns the byte width of the format within a record. Every format
// except FormatUnknown has a nonzero width, so stride accounting for
// ignored properties works for all declarable encodings.
func (f PropertyFormat) Size() int {
	if int(f) < len(formatSizes) {
		return formatSizes[f]
	}
	return 0
}
