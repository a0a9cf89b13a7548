package profile

import (
	"fmt"
	"strings"

	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

// BackgroundType selects how the main profile background is produced.
type BackgroundType string

const (
	BackgroundPreset BackgroundType = "preset"
	BackgroundColor  BackgroundType = "color"
	BackgroundImage  BackgroundType = "image"
)

// BackgroundTypes lists every background type in display order.
var BackgroundTypes = []BackgroundType{BackgroundPreset, BackgroundColor, BackgroundImage}

// TextColor is the user's explicit text color choice for custom backgrounds
// and for the share card.
type TextColor string

const (
	TextWhite TextColor = "white"
	TextBlack TextColor = "black"
)

// TextColors lists every text color in display order.
var TextColors = []TextColor{TextWhite, TextBlack}

// ButtonShape controls the corner radius of link buttons.
type ButtonShape string

const (
	ShapePill    ButtonShape = "pill"
	ShapeRounded ButtonShape = "rounded"
	ShapeSharp   ButtonShape = "sharp"
)

// ButtonShapes lists every button shape in display order.
var ButtonShapes = []ButtonShape{ShapePill, ShapeRounded, ShapeSharp}

// ButtonStyle controls the fill treatment of link buttons.
type ButtonStyle string

const (
	StyleGlass   ButtonStyle = "glass"
	StyleSolid   ButtonStyle = "solid"
	StyleOutline ButtonStyle = "outline"
	StyleSoft    ButtonStyle = "soft"
)

// ButtonStyles lists every button style in display order.
var ButtonStyles = []ButtonStyle{StyleGlass, StyleSolid, StyleOutline, StyleSoft}

// FontFamily selects the typeface used across the profile page.
type FontFamily string

const (
	FontInter   FontFamily = "inter"
	FontDMSerif FontFamily = "dm-serif"
	FontMono    FontFamily = "mono"
)

// FontFamilies lists every font family in display order.
var FontFamilies = []FontFamily{FontInter, FontDMSerif, FontMono}

// CardBackgroundType selects how the share card background is produced.
// The empty value behaves like CardMatch.
type CardBackgroundType string

const (
	CardMatch CardBackgroundType = "match"
	CardColor CardBackgroundType = "color"
	CardImage CardBackgroundType = "image"
)

// CardBackgroundTypes lists every card background type in display order.
var CardBackgroundTypes = []CardBackgroundType{CardMatch, CardColor, CardImage}

// Label returns the human facing name of the font family.
func (f FontFamily) Label() string {
	switch f {
	case FontDMSerif:
		return "Editorial Serif"
	case FontMono:
		return "Developer Mono"
	default:
		return "Modern Sans"
	}
}

// ParseEnum matches value against allowed, reporting a ValidationError for
// field when nothing matches.
func ParseEnum[T ~string](field, value string, allowed []T) (T, error) {
	names := make([]string, len(allowed))
	for i, candidate := range allowed {
		names[i] = string(candidate)
	}
	list := strings.Join(names, " ")
	if err := validatorInstance().Var(value, "required,oneof="+list); err != nil {
		var zero T
		return zero, lferrors.NewValidationError(field, fmt.Sprintf("%q is not one of [%s]", value, list), err)
	}
	return T(value), nil
}

// ParseHexColor accepts a CSS hex color (#rgb or #rrggbb) and returns it
// as lowercase #rrggbb. Forms with an alpha channel are rejected.
func ParseHexColor(field, value string) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if err := validatorInstance().Var(value, "required,hexcolor"); err != nil {
		return "", lferrors.NewValidationError(field, fmt.Sprintf("%q is not a hex color like #0f172a", value), err)
	}

	switch len(value) {
	case 4:
		return "#" + strings.Repeat(value[1:2], 2) + strings.Repeat(value[2:3], 2) + strings.Repeat(value[3:4], 2), nil
	case 7:
		return value, nil
	default:
		return "", lferrors.NewValidationError(field, fmt.Sprintf("%q has an alpha channel; use #rgb or #rrggbb", value), nil)
	}
}
