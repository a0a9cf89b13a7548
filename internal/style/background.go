package style

import (
	"strings"
)

// BackgroundKind tells the renderer which fill a Background carries.
type BackgroundKind int

const (
	BackgroundFlat BackgroundKind = iota
	BackgroundGradient
	BackgroundImage
)

func (k BackgroundKind) String() string {
	switch k {
	case BackgroundGradient:
		return "gradient"
	case BackgroundImage:
		return "image"
	default:
		return "flat"
	}
}

// GradientKind selects the CSS gradient function.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientConic
)

// Gradient is a multi-stop gradient. Position is the CSS direction for
// linear gradients ("to bottom right") or the origin for conic ones
// ("at top right").
type Gradient struct {
	Kind     GradientKind
	Position string
	Stops    []Color
}

// CSS renders the gradient as a background-image value.
func (g Gradient) CSS() string {
	stops := make([]string, len(g.Stops))
	for i, stop := range g.Stops {
		stops[i] = stop.CSS()
	}
	fn := "linear-gradient"
	if g.Kind == GradientConic {
		fn = "conic-gradient"
	}
	return fn + "(" + g.Position + ", " + strings.Join(stops, ", ") + ")"
}

// Background describes one resolved background layer plus the optional
// legibility overlay composited above it.
type Background struct {
	Kind     BackgroundKind
	Fill     Color
	Gradient Gradient
	Image    string
	Overlay  Color
}

// imageOverlay darkens image backgrounds so text stays legible.
var imageOverlay = Tint("#000000", 0.2)

// Flat returns a solid color background.
func Flat(hex string) Background {
	return Background{Kind: BackgroundFlat, Fill: Solid(hex)}
}

// Image returns a cover-fit, centered image background. withOverlay adds the
// dark legibility overlay.
func Image(url string, withOverlay bool) Background {
	bg := Background{Kind: BackgroundImage, Image: url}
	if withOverlay {
		bg.Overlay = imageOverlay
	}
	return bg
}

// HasOverlay reports whether an overlay layer must be drawn.
func (b Background) HasOverlay() bool {
	return !b.Overlay.IsZero()
}

// CSS renders the background as style declarations.
func (b Background) CSS() string {
	switch b.Kind {
	case BackgroundGradient:
		return "background-image: " + b.Gradient.CSS() + ";"
	case BackgroundImage:
		return "background-image: " + cssURL(b.Image) + "; background-size: cover; background-position: center;"
	default:
		return "background-color: " + b.Fill.CSS() + ";"
	}
}

// OverlayCSS renders the overlay layer declarations, or "" when there is none.
func (b Background) OverlayCSS() string {
	if !b.HasOverlay() {
		return ""
	}
	return "background-color: " + b.Overlay.CSS() + ";"
}

// Base returns a representative solid color for surfaces that cannot draw
// gradients or images, such as a terminal.
func (b Background) Base() string {
	switch b.Kind {
	case BackgroundGradient:
		if len(b.Gradient.Stops) == 0 {
			return "#000000"
		}
		return b.Gradient.Stops[len(b.Gradient.Stops)/2].Hex
	case BackgroundImage:
		return "#1e293b"
	default:
		return b.Fill.Hex
	}
}
