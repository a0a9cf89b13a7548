package server

import (
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

type buttonResponse struct {
	Shape      string `json:"shape"`
	Style      string `json:"style"`
	Radius     string `json:"radius"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Border     string `json:"border"`
}

type cardResponse struct {
	Kind       string `json:"kind"`
	Tone       string `json:"tone"`
	Background string `json:"background"`
	Overlay    string `json:"overlay,omitempty"`
	Text       string `json:"text"`
	SubText    string `json:"subText"`
	Handle     string `json:"handle"`
	ShareURL   string `json:"shareUrl"`
}

type presentationResponse struct {
	PresetID    string         `json:"presetId"`
	Tone        string         `json:"tone"`
	Background  string         `json:"background"`
	Overlay     string         `json:"overlay,omitempty"`
	Text        string         `json:"text"`
	Description string         `json:"description"`
	Font        string         `json:"font"`
	Button      buttonResponse `json:"button"`
	Card        cardResponse   `json:"card"`
}

func newPresentationResponse(catalog style.Catalog, p profile.UserProfile) presentationResponse {
	pres := catalog.Resolve(p)
	card := catalog.ResolveCard(p)

	return presentationResponse{
		PresetID:    pres.PresetID,
		Tone:        pres.Tone.String(),
		Background:  pres.Background.CSS(),
		Overlay:     pres.Background.OverlayCSS(),
		Text:        pres.Text.CSS(),
		Description: pres.Description.CSS(),
		Font:        pres.Font.Label,
		Button: buttonResponse{
			Shape:      string(pres.Button.Shape),
			Style:      string(pres.Button.Style),
			Radius:     pres.Button.Radius,
			Background: pres.Button.Background.CSS(),
			Foreground: pres.Button.Foreground.CSS(),
			Border:     pres.Button.Border.CSS(),
		},
		Card: cardResponse{
			Kind:       string(card.Kind),
			Tone:       card.Tone.String(),
			Background: card.Background.CSS(),
			Overlay:    card.Background.OverlayCSS(),
			Text:       card.Text.CSS(),
			SubText:    card.SubText.CSS(),
			Handle:     "@" + profile.Handle(p.Name),
			ShareURL:   profile.ShareURL(p.Name),
		},
	}
}
