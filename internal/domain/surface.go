package domain

import (
	"fmt"
	"strings"
)

// Surface is a passive display variant
type Surface string

const (
	// Home screen sizes
	SurfaceSmall  Surface = "small"
	SurfaceMedium Surface = "medium"
	SurfaceLarge  Surface = "large"

	// Lock screen variants
	SurfaceCircular    Surface = "circular"
	SurfaceRectangular Surface = "rectangular"
	SurfaceInline      Surface = "inline"
)

// DefaultSurface is used when a subscriber does not pick one
const DefaultSurface = SurfaceMedium

// Surfaces lists every supported surface
func Surfaces() []Surface {
	return []Surface{
		SurfaceSmall, SurfaceMedium, SurfaceLarge,
		SurfaceCircular, SurfaceRectangular, SurfaceInline,
	}
}

// ParseSurface maps a name to a Surface; empty input yields DefaultSurface
func ParseSurface(name string) (Surface, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultSurface, nil
	}
	for _, s := range Surfaces() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSurface, name)
}

// IsLockScreen reports whether the surface is a lock screen variant
func (s Surface) IsLockScreen() bool {
	return s == SurfaceCircular || s == SurfaceRectangular || s == SurfaceInline
}
