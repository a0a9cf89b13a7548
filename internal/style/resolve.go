package style

import "github.com/alexisbeaulieu97/linkforce/internal/profile"

// Presentation is the fully resolved look of the profile page.
type Presentation struct {
	PresetID    string
	Background  Background
	Tone        Tone
	Text        Color
	Description Color
	Button      Button
	Font        Font
}

// Resolve resolves p against the built-in catalog.
func Resolve(p profile.UserProfile) Presentation {
	return DefaultCatalog().Resolve(p)
}

// ResolveCard resolves the share card of p against the built-in catalog.
func ResolveCard(p profile.UserProfile) CardPresentation {
	return DefaultCatalog().ResolveCard(p)
}

// Resolve maps the main presentation fields of p onto a Presentation.
func (c Catalog) Resolve(p profile.UserProfile) Presentation {
	preset := c.Lookup(p.ThemeID)
	out := Presentation{
		PresetID:   preset.ID,
		Background: c.background(p),
	}

	switch p.BackgroundType {
	case profile.BackgroundColor, profile.BackgroundImage:
		out.Tone, out.Text, out.Description = customText(p.CustomTextColor)
	default:
		out.Tone, out.Text, out.Description = preset.Tone, preset.Text, preset.Description
	}

	out.Button = ResolveButton(p.ButtonShape, p.ButtonStyle, out.Tone)
	out.Font = ResolveFont(p.FontFamily)
	return out
}

// background applies the main background rules; the card reuses them for
// the match mode.
func (c Catalog) background(p profile.UserProfile) Background {
	switch p.BackgroundType {
	case profile.BackgroundColor:
		return Flat(p.CustomBackgroundColor)
	case profile.BackgroundImage:
		return Image(p.CustomBackgroundImage, true)
	default:
		return c.Lookup(p.ThemeID).Background
	}
}

func customText(color profile.TextColor) (Tone, Color, Color) {
	if color == profile.TextBlack {
		return DarkText, Solid("#0f172a"), Solid("#475569")
	}
	return LightText, Solid("#ffffff"), Tint("#ffffff", 0.7)
}
