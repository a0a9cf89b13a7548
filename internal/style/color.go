// Package style resolves a profile into a renderer-ready presentation: the
// background, text colors, button treatment and font used by the live
// preview, and the independent treatment used by the share card.
package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex color with an opacity in [0, 1].
type Color struct {
	Hex   string
	Alpha float64
}

// Transparent renders as the CSS keyword.
var Transparent = Color{Hex: "transparent", Alpha: 1}

// Solid returns an opaque color.
func Solid(hex string) Color {
	return Color{Hex: hex, Alpha: 1}
}

// Tint returns hex at the given opacity.
func Tint(hex string, alpha float64) Color {
	return Color{Hex: hex, Alpha: alpha}
}

// IsZero reports whether the color was never set.
func (c Color) IsZero() bool {
	return c.Hex == ""
}

// Opaque reports whether the color is drawn at full opacity.
func (c Color) Opaque() bool {
	return c.Alpha >= 1
}

// CSS renders the color for a style attribute. Translucent colors become
// rgba(); values that do not parse are passed through untouched.
func (c Color) CSS() string {
	if c.IsZero() {
		return ""
	}
	if c.Opaque() || c.Hex == Transparent.Hex {
		return c.Hex
	}
	parsed, err := colorful.Hex(c.Hex)
	if err != nil {
		return c.Hex
	}
	r, g, b := parsed.RGB255()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(c.Alpha, 'f', -1, 64))
}

func (c Color) String() string {
	if c.Opaque() {
		return c.Hex
	}
	return fmt.Sprintf("%s/%d%%", c.Hex, int(c.Alpha*100+0.5))
}

// Terminal returns a hex suitable for a terminal color. Translucent colors
// are blended over base, which should be the color underneath.
func (c Color) Terminal(base string) string {
	if c.Opaque() || c.Hex == Transparent.Hex {
		if c.Hex == Transparent.Hex {
			return base
		}
		return c.Hex
	}
	top, err := colorful.Hex(c.Hex)
	if err != nil {
		return c.Hex
	}
	under, err := colorful.Hex(base)
	if err != nil {
		return c.Hex
	}
	return under.BlendRgb(top, c.Alpha).Clamped().Hex()
}

// cssURL quotes value for use inside url().
func cssURL(value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", "", "\r", "").Replace(value)
	return `url("` + escaped + `")`
}
