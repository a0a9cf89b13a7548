// Package contrast picks a readable foreground for a solid background color.
package contrast

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Foreground is the recommended text treatment for a background.
type Foreground int

const (
	// ForegroundWhite means the background is dark and needs white text.
	ForegroundWhite Foreground = iota
	// ForegroundDark means the background is light and needs dark text.
	ForegroundDark
)

func (f Foreground) String() string {
	if f == ForegroundDark {
		return "dark"
	}
	return "white"
}

// lumaThreshold is 128 scaled by 1000 so the comparison stays in integers.
const lumaThreshold = 128 * 1000

// Parse splits a 3- or 6-digit hex triplet, with or without a leading '#',
// into 8-bit channels.
func Parse(hex string) (r, g, b uint8, err error) {
	value := strings.TrimSpace(hex)
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	if len(value) != 4 && len(value) != 7 {
		return 0, 0, 0, fmt.Errorf("parse color %q: expected 3 or 6 hex digits", hex)
	}

	c, err := colorful.Hex(value)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// Luma returns 0.299·R + 0.587·G + 0.114·B for the color, in [0, 255].
func Luma(hex string) (float64, error) {
	r, g, b, err := Parse(hex)
	if err != nil {
		return 0, err
	}
	return float64(weighted(r, g, b)) / 1000, nil
}

// Evaluate recommends dark text when luma is at least 128 and white text
// otherwise. Malformed input falls back to white text.
func Evaluate(hex string) Foreground {
	r, g, b, err := Parse(hex)
	if err != nil {
		return ForegroundWhite
	}
	if weighted(r, g, b) >= lumaThreshold {
		return ForegroundDark
	}
	return ForegroundWhite
}

func weighted(r, g, b uint8) int {
	return 299*int(r) + 587*int(g) + 114*int(b)
}
