package convert

import (
	"go.uber.org/zap"

	"github.com/splatforge/gsplat"
)

// RequiredProperties is the full property set this importer needs:
// position, rotation, scale, DC spherical harmonics (solid color) and
// opacity. Higher-degree harmonics are not implemented.
var RequiredProperties = []gsplat.Property{
	gsplat.X, gsplat.Y, gsplat.Z,
	gsplat.RotationX, gsplat.RotationY, gsplat.RotationZ, gsplat.RotationW,
	gsplat.ScaleX, gsplat.ScaleY, gsplat.ScaleZ,
	gsplat.DCRed, gsplat.DCGreen, gsplat.DCBlue,
	gsplat.Opacity,
}

// ValidateMetadata reports whether an asset with the given metadata can be
// imported. The first missing required property is logged at error level;
// remaining absences are not aggregated. Extra or ignored properties do
// not affect the result.
func ValidateMetadata(md *gsplat.Metadata) bool {
	for _, prop := range RequiredProperties {
		if _, ok := md.Properties[prop]; !ok {
			Logger().Error("required property missing",
				zap.Stringer("property", prop))
			return false
		}
	}
	return true
}
