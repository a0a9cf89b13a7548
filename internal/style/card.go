package style

import "github.com/alexisbeaulieu97/linkforce/internal/profile"

// Panel is a tinted surface on the card.
type Panel struct {
	Background Color
	Border     Color
	Foreground Color
}

// Glass is the heavy-blur translucent layer that carries the card content.
type Glass struct {
	Panel
	Shadow   string
	Blur     string
	Saturate string
}

// CardPresentation is the fully resolved look of the share card.
type CardPresentation struct {
	Kind        profile.CardBackgroundType
	Background  Background
	BaseOverlay Color
	Tone        Tone
	TextColor   profile.TextColor
	Text        Color
	SubText     Color
	Glass       Glass
	Chip        Panel
	Handle      Panel
	Footer      Panel
	URLBox      Panel
	QR          Panel
	Glow        Color
}

var cardBaseOverlay = Tint("#000000", 0.1)

// ResolveCard maps the card fields of p onto a CardPresentation. The match
// mode re-derives the background from the main profile fields and pins the
// text to white. A matched image gets only the base overlay, not the
// preview's legibility overlay.
func (c Catalog) ResolveCard(p profile.UserProfile) CardPresentation {
	out := CardPresentation{BaseOverlay: cardBaseOverlay}

	switch p.CardBackgroundType {
	case profile.CardColor:
		out.Kind = profile.CardColor
		out.Background = Flat(p.CardBackgroundColor)
		out.TextColor = textOrWhite(p.CardTextColor)
	case profile.CardImage:
		out.Kind = profile.CardImage
		out.Background = Image(p.CardBackgroundImage, false)
		out.TextColor = textOrWhite(p.CardTextColor)
	default:
		out.Kind = profile.CardMatch
		out.Background = c.background(p)
		if p.BackgroundType == profile.BackgroundImage {
			out.Background = Image(p.CustomBackgroundImage, false)
		}
		out.TextColor = profile.TextWhite
	}

	out.Tone = LightText
	if out.TextColor == profile.TextBlack {
		out.Tone = DarkText
	}
	applyCardTone(&out)
	return out
}

func textOrWhite(color profile.TextColor) profile.TextColor {
	if color == profile.TextBlack {
		return profile.TextBlack
	}
	return profile.TextWhite
}

func applyCardTone(out *CardPresentation) {
	if out.Tone == DarkText {
		out.Text = Solid("#0f172a")
		out.SubText = Solid("#1e293b")
		out.Glass = Glass{
			Panel:  Panel{Background: Tint("#ffffff", 0.6), Border: Tint("#ffffff", 0.5)},
			Shadow: "0 8px 32px 0 rgba(255, 255, 255, 0.2)",
		}
		out.Chip = Panel{Background: Tint("#ffffff", 0.4), Border: Tint("#0f172a", 0.1)}
		out.Handle = Panel{Background: Tint("#0f172a", 0.1), Border: Tint("#0f172a", 0.1), Foreground: Solid("#334155")}
		out.Footer = Panel{Background: Tint("#ffffff", 0.4), Border: Tint("#ffffff", 0.5)}
		out.URLBox = Panel{Background: Tint("#ffffff", 0.6), Border: Solid("#e2e8f0"), Foreground: Solid("#1e293b")}
		out.QR = Panel{Background: Solid("#0f172a"), Foreground: Solid("#ffffff")}
		out.Glow = Tint("#94a3b8", 0.6)
	} else {
		out.Text = Solid("#ffffff")
		out.SubText = Tint("#ffffff", 0.9)
		out.Glass = Glass{
			Panel:  Panel{Background: Tint("#000000", 0.5), Border: Tint("#ffffff", 0.1)},
			Shadow: "0 8px 32px 0 rgba(0, 0, 0, 0.5)",
		}
		out.Chip = Panel{Background: Tint("#000000", 0.3), Border: Tint("#ffffff", 0.1)}
		out.Handle = Panel{Background: Tint("#ffffff", 0.1), Border: Tint("#ffffff", 0.1), Foreground: Tint("#ffffff", 0.8)}
		out.Footer = Panel{Background: Tint("#000000", 0.3), Border: Tint("#ffffff", 0.1)}
		out.URLBox = Panel{Background: Tint("#ffffff", 0.05), Border: Tint("#ffffff", 0.1), Foreground: Solid("#ffffff")}
		out.QR = Panel{Background: Solid("#ffffff"), Foreground: Solid("#000000")}
		out.Glow = Tint("#ffffff", 0.4)
	}
	out.Glass.Foreground = out.Text
	out.Glass.Blur = "24px"
	out.Glass.Saturate = "180%"
}
