package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

const (
	// NamePlaceholder stands in for an empty display name.
	NamePlaceholder = "@username"
	// BioPlaceholder stands in for an empty bio on the preview.
	BioPlaceholder = "Add a bio to tell people who you are."
	// CardBioPlaceholder stands in for an empty bio on the card.
	CardBioPlaceholder = "Digital Creator"
	// EmptyLinksMessage is shown when no link is active.
	EmptyLinksMessage = "Links will appear here"
	// Brand is the footer wordmark.
	Brand = "LINKFORCE"
)

// Card dimensions in CSS pixels; the card keeps a 9:16 aspect.
const (
	CardWidth  = 340
	CardHeight = 604
)

// LinkView is one rendered link button.
type LinkView struct {
	Title string
	URL   string
}

// PreviewView feeds the preview template.
type PreviewView struct {
	Name        string
	Bio         string
	AvatarURL   template.URL
	Links       []LinkView
	Empty       bool
	Brand       string
	FontLabel   string
	PresetID    string
	Page        template.CSS
	Background  template.CSS
	Overlay     template.CSS
	Text        template.CSS
	Description template.CSS
	Button      template.CSS
	ButtonHover template.CSS
}

// CardView feeds the card template.
type CardView struct {
	Name       string
	Handle     string
	Bio        string
	ShareURL   string
	AvatarURL  template.URL
	Brand      string
	Width      int
	Height     int
	Background template.CSS
	Overlay    template.CSS
	BaseLayer  template.CSS
	Glass      template.CSS
	Text       template.CSS
	SubText    template.CSS
	Chip       template.CSS
	HandleChip template.CSS
	Footer     template.CSS
	URLBox     template.CSS
	QR         template.CSS
	Glow       template.CSS
}

// NewPreviewView resolves p against catalog and builds the template data.
func NewPreviewView(catalog style.Catalog, p profile.UserProfile) PreviewView {
	pres := catalog.Resolve(p)

	view := PreviewView{
		Name:        fallback(p.Name, NamePlaceholder),
		Bio:         fallback(p.Bio, BioPlaceholder),
		AvatarURL:   safeImageURL(p.AvatarURL),
		Brand:       Brand,
		FontLabel:   pres.Font.Label,
		PresetID:    pres.PresetID,
		Page:        template.CSS(fmt.Sprintf("font-family: %s; letter-spacing: %s;", pres.Font.Stack, pres.Font.Tracking)),
		Background:  template.CSS(pres.Background.CSS()),
		Overlay:     template.CSS(pres.Background.OverlayCSS()),
		Text:        colorDecl(pres.Text),
		Description: colorDecl(pres.Description),
		Button:      template.CSS(buttonCSS(pres.Button)),
		ButtonHover: template.CSS(hoverCSS(pres.Button.Hover)),
	}
	for _, link := range p.ActiveLinks() {
		view.Links = append(view.Links, LinkView{Title: link.Title, URL: link.URL})
	}
	view.Empty = len(view.Links) == 0
	return view
}

// NewCardView resolves the card of p against catalog and builds the
// template data.
func NewCardView(catalog style.Catalog, p profile.UserProfile) CardView {
	card := catalog.ResolveCard(p)

	return CardView{
		Name:       p.Name,
		Handle:     profile.Handle(p.Name),
		Bio:        fallback(p.Bio, CardBioPlaceholder),
		ShareURL:   profile.ShareURL(p.Name),
		AvatarURL:  safeImageURL(p.AvatarURL),
		Brand:      Brand,
		Width:      CardWidth,
		Height:     CardHeight,
		Background: template.CSS(card.Background.CSS()),
		Overlay:    template.CSS(card.Background.OverlayCSS()),
		BaseLayer:  template.CSS("background-color: " + card.BaseOverlay.CSS() + ";"),
		Glass: template.CSS(fmt.Sprintf(
			"%s box-shadow: %s; backdrop-filter: blur(%s) saturate(%s); -webkit-backdrop-filter: blur(%s) saturate(%s);",
			panelCSS(card.Glass.Panel), card.Glass.Shadow, card.Glass.Blur, card.Glass.Saturate, card.Glass.Blur, card.Glass.Saturate,
		)),
		Text:       colorDecl(card.Text),
		SubText:    colorDecl(card.SubText),
		Chip:       template.CSS(panelCSS(card.Chip)),
		HandleChip: template.CSS(panelCSS(card.Handle)),
		Footer:     template.CSS(panelCSS(card.Footer)),
		URLBox:     template.CSS(panelCSS(card.URLBox)),
		QR:         template.CSS(panelCSS(card.QR)),
		Glow:       template.CSS("background-color: " + card.Glow.CSS() + ";"),
	}
}

func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// safeImageURL trusts http(s) and inline image data; anything else falls
// back to the placeholder avatar.
func safeImageURL(raw string) template.URL {
	switch {
	case strings.HasPrefix(raw, "data:image/"), strings.HasPrefix(raw, "https://"), strings.HasPrefix(raw, "http://"):
		return template.URL(raw)
	default:
		return template.URL(profile.DefaultAvatarURL)
	}
}

func colorDecl(c style.Color) template.CSS {
	return template.CSS("color: " + c.CSS() + ";")
}

func panelCSS(p style.Panel) string {
	var b strings.Builder
	if !p.Background.IsZero() {
		b.WriteString("background-color: " + p.Background.CSS() + ";")
	}
	if !p.Border.IsZero() {
		b.WriteString(" border: 1px solid " + p.Border.CSS() + ";")
	}
	if !p.Foreground.IsZero() {
		b.WriteString(" color: " + p.Foreground.CSS() + ";")
	}
	return strings.TrimSpace(b.String())
}

func buttonCSS(btn style.Button) string {
	var b strings.Builder
	fmt.Fprintf(&b, "border-radius: %s; background-color: %s; color: %s; border: %s solid %s;",
		btn.Radius, btn.Background.CSS(), btn.Foreground.CSS(), btn.BorderWidth, btn.Border.CSS())
	if btn.Blur != "" {
		fmt.Fprintf(&b, " backdrop-filter: blur(%s); -webkit-backdrop-filter: blur(%s);", btn.Blur, btn.Blur)
	}
	if btn.Shadow != "" {
		fmt.Fprintf(&b, " box-shadow: %s;", btn.Shadow)
	}
	return b.String()
}

func hoverCSS(h style.Hover) string {
	if h.Invert {
		return fmt.Sprintf("background-color: %s; color: %s; border-color: %s;", h.Background.CSS(), h.Foreground.CSS(), h.Border.CSS())
	}
	return fmt.Sprintf("filter: brightness(%s);", h.Brightness)
}
