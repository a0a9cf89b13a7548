package style

import "github.com/alexisbeaulieu97/linkforce/internal/profile"

const (
	shadowMD = "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -2px rgba(0, 0, 0, 0.1)"
	shadowLG = "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -4px rgba(0, 0, 0, 0.1)"
)

// Button is the resolved link button treatment.
type Button struct {
	Shape       profile.ButtonShape
	Style       profile.ButtonStyle
	Radius      string
	Background  Color
	Foreground  Color
	Border      Color
	BorderWidth string
	Blur        string
	Shadow      string
	Hover       Hover
}

// Hover is the pointer-over treatment. Invert swaps in the listed colors;
// otherwise only Brightness applies.
type Hover struct {
	Invert     bool
	Background Color
	Foreground Color
	Border     Color
	Brightness string
}

// ResolveButton maps shape and style onto a treatment. tone is the already
// resolved page text tone; it picks the light or dark variant.
func ResolveButton(shape profile.ButtonShape, style profile.ButtonStyle, tone Tone) Button {
	btn := treatment(style, tone)
	btn.Shape = shapeOrDefault(shape)
	btn.Radius = radius(btn.Shape)
	btn.Hover = hover(btn.Style, tone)
	return btn
}

func shapeOrDefault(shape profile.ButtonShape) profile.ButtonShape {
	switch shape {
	case profile.ShapePill, profile.ShapeRounded, profile.ShapeSharp:
		return shape
	default:
		return profile.ShapePill
	}
}

func radius(shape profile.ButtonShape) string {
	switch shape {
	case profile.ShapeRounded:
		return "0.75rem"
	case profile.ShapeSharp:
		return "0"
	default:
		return "9999px"
	}
}

func treatment(style profile.ButtonStyle, tone Tone) Button {
	dark := tone == DarkText
	switch style {
	case profile.StyleSolid:
		if dark {
			return Button{Style: style, Background: Solid("#0f172a"), Foreground: Solid("#ffffff"), Border: Transparent, BorderWidth: "1px", Shadow: shadowMD}
		}
		return Button{Style: style, Background: Solid("#ffffff"), Foreground: Solid("#0f172a"), Border: Transparent, BorderWidth: "1px", Shadow: shadowMD}
	case profile.StyleOutline:
		if dark {
			return Button{Style: style, Background: Transparent, Foreground: Solid("#0f172a"), Border: Solid("#0f172a"), BorderWidth: "2px"}
		}
		return Button{Style: style, Background: Transparent, Foreground: Solid("#ffffff"), Border: Solid("#ffffff"), BorderWidth: "2px"}
	case profile.StyleSoft:
		if dark {
			return Button{Style: style, Background: Solid("#e2e8f0"), Foreground: Solid("#0f172a"), Border: Transparent, BorderWidth: "1px"}
		}
		return Button{Style: style, Background: Tint("#ffffff", 0.1), Foreground: Solid("#ffffff"), Border: Transparent, BorderWidth: "1px", Blur: "4px"}
	default:
		if dark {
			return Button{Style: profile.StyleGlass, Background: Tint("#0f172a", 0.05), Foreground: Solid("#0f172a"), Border: Tint("#0f172a", 0.1), BorderWidth: "1px", Blur: "12px"}
		}
		return Button{Style: profile.StyleGlass, Background: Tint("#ffffff", 0.1), Foreground: Solid("#ffffff"), Border: Tint("#ffffff", 0.2), BorderWidth: "1px", Blur: "12px", Shadow: shadowLG}
	}
}

func hover(style profile.ButtonStyle, tone Tone) Hover {
	if style != profile.StyleOutline {
		return Hover{Brightness: "110%"}
	}
	if tone == DarkText {
		return Hover{Invert: true, Background: Solid("#1e293b"), Foreground: Solid("#ffffff"), Border: Solid("#1e293b")}
	}
	return Hover{Invert: true, Background: Solid("#ffffff"), Foreground: Solid("#0f172a"), Border: Solid("#ffffff")}
}
