package profile

import "github.com/alexisbeaulieu97/linkforce/internal/contrast"

// CardSwatches are the quick colors offered for the share card background.
var CardSwatches = []string{
	"#000000",
	"#ffffff",
	"#3b82f6",
	"#8b5cf6",
	"#ec4899",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#6366f1",
}

// MatchCard makes the card reuse the profile background. The card text is
// reset to white regardless of the profile background.
func MatchCard(p UserProfile) UserProfile {
	p.CardBackgroundType = CardMatch
	p.CardTextColor = TextWhite
	return p
}

// PickCardSwatch sets a solid card color and picks a readable text color
// for it.
func PickCardSwatch(p UserProfile, hex string) UserProfile {
	p.CardBackgroundType = CardColor
	p.CardBackgroundColor = hex
	p.CardTextColor = CardTextFor(hex)
	return p
}

// SetCardBackgroundImage stores a card image, switches the card to image
// mode and resets the card text to white.
func SetCardBackgroundImage(p UserProfile, image string) UserProfile {
	p.CardBackgroundImage = image
	p.CardBackgroundType = CardImage
	p.CardTextColor = TextWhite
	return p
}

// ToggleCardText flips the card text between white and black.
func ToggleCardText(p UserProfile) UserProfile {
	if p.CardTextColor == TextWhite {
		p.CardTextColor = TextBlack
	} else {
		p.CardTextColor = TextWhite
	}
	return p
}

// CardTextFor maps the contrast recommendation for hex onto a TextColor.
func CardTextFor(hex string) TextColor {
	if contrast.Evaluate(hex) == contrast.ForegroundDark {
		return TextBlack
	}
	return TextWhite
}
