package editor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindChoice
	kindAction
	kindLink
)

type fieldID int

const (
	fieldName fieldID = iota
	fieldBio
	fieldAvatar
	fieldKeywords
	fieldTone
	fieldGenerate
	fieldAddLink
	fieldLink
	fieldPreset
	fieldBackgroundType
	fieldBackgroundColor
	fieldBackgroundImage
	fieldTextColor
	fieldButtonShape
	fieldButtonStyle
	fieldFont
	fieldCardMode
	fieldCardSwatch
	fieldCardColor
	fieldCardImage
	fieldCardText
	fieldExport
)

// field is one selectable row of a tab.
type field struct {
	id     fieldID
	label  string
	kind   fieldKind
	linkID string
}

var (
	contentFields = []field{
		{id: fieldName, label: "Display name", kind: kindText},
		{id: fieldBio, label: "Bio", kind: kindText},
		{id: fieldAvatar, label: "Avatar", kind: kindText},
		{id: fieldKeywords, label: "AI keywords", kind: kindText},
		{id: fieldTone, label: "AI tone", kind: kindChoice},
		{id: fieldGenerate, label: "Magic write", kind: kindAction},
		{id: fieldAddLink, label: "Add link", kind: kindAction},
	}

	designFields = []field{
		{id: fieldPreset, label: "Preset", kind: kindChoice},
		{id: fieldBackgroundType, label: "Background", kind: kindChoice},
		{id: fieldBackgroundColor, label: "Custom color", kind: kindText},
		{id: fieldBackgroundImage, label: "Custom image", kind: kindText},
		{id: fieldTextColor, label: "Custom text", kind: kindChoice},
		{id: fieldButtonShape, label: "Button shape", kind: kindChoice},
		{id: fieldButtonStyle, label: "Button style", kind: kindChoice},
		{id: fieldFont, label: "Typography", kind: kindChoice},
	}

	cardFields = []field{
		{id: fieldCardMode, label: "Card background", kind: kindChoice},
		{id: fieldCardSwatch, label: "Swatch", kind: kindChoice},
		{id: fieldCardColor, label: "Card color", kind: kindText},
		{id: fieldCardImage, label: "Card image", kind: kindText},
		{id: fieldCardText, label: "Card text", kind: kindChoice},
		{id: fieldExport, label: "Download card", kind: kindAction},
	}
)

// fields lists the rows of the current tab. The content tab ends with one
// row per link.
func (m Model) fields() []field {
	switch m.tab {
	case TabDesign:
		return designFields
	case TabCard:
		return cardFields
	default:
		out := make([]field, 0, len(contentFields)+len(m.profile.Links))
		out = append(out, contentFields...)
		for _, link := range m.profile.Links {
			out = append(out, field{id: fieldLink, label: "Link", kind: kindLink, linkID: link.ID})
		}
		return out
	}
}

// value renders the current value of f for display.
func (m Model) value(f field) string {
	p := m.profile
	switch f.id {
	case fieldName:
		return p.Name
	case fieldBio:
		return p.Bio
	case fieldAvatar:
		return imageLabel(p.AvatarURL)
	case fieldKeywords:
		return m.keywords
	case fieldTone:
		return string(m.tone)
	case fieldGenerate:
		if m.generating {
			return "Generating…"
		}
		return "press enter"
	case fieldAddLink:
		return "press enter or a"
	case fieldLink:
		link, ok := p.FindLink(f.linkID)
		if !ok {
			return ""
		}
		state := "off"
		if link.IsActive {
			state = "on "
		}
		return fmt.Sprintf("[%s] %s  %s", state, fallback(link.Title, "(untitled)"), link.URL)
	case fieldPreset:
		preset := m.catalog.Lookup(p.ThemeID)
		return preset.Name
	case fieldBackgroundType:
		return string(p.BackgroundType)
	case fieldBackgroundColor:
		return p.CustomBackgroundColor
	case fieldBackgroundImage:
		return imageLabel(p.CustomBackgroundImage)
	case fieldTextColor:
		return string(p.CustomTextColor)
	case fieldButtonShape:
		return string(p.ButtonShape)
	case fieldButtonStyle:
		return string(p.ButtonStyle)
	case fieldFont:
		return p.FontFamily.Label()
	case fieldCardMode:
		return string(p.CardBackgroundType)
	case fieldCardSwatch:
		return p.CardBackgroundColor
	case fieldCardColor:
		return p.CardBackgroundColor
	case fieldCardImage:
		return imageLabel(p.CardBackgroundImage)
	case fieldCardText:
		return string(p.CardTextColor)
	case fieldExport:
		if m.exporting {
			return "Exporting…"
		}
		return "press enter"
	}
	return ""
}

// rawValue is what the text input starts with when f is edited.
func (m Model) rawValue(f field, editURL bool) string {
	p := m.profile
	switch f.id {
	case fieldName:
		return p.Name
	case fieldBio:
		return p.Bio
	case fieldKeywords:
		return m.keywords
	case fieldBackgroundColor:
		return p.CustomBackgroundColor
	case fieldCardColor:
		return p.CardBackgroundColor
	case fieldAvatar:
		if profile.IsDataURL(p.AvatarURL) {
			return ""
		}
		return p.AvatarURL
	case fieldLink:
		link, _ := p.FindLink(f.linkID)
		if editURL {
			return link.URL
		}
		return link.Title
	}
	return ""
}

// cycle returns the edit that moves a choice field dir steps through its
// values. Tone is local to the editor and handled by the caller.
func (m Model) cycle(f field, dir int) profile.Edit {
	p := m.profile
	switch f.id {
	case fieldPreset:
		ids := make([]string, len(m.catalog))
		for i, preset := range m.catalog {
			ids[i] = preset.ID
		}
		if len(ids) == 0 {
			return nil
		}
		return profile.Bind(profile.SelectPreset, cycleValue(ids, p.ThemeID, dir))
	case fieldBackgroundType:
		return profile.Bind(profile.SetBackgroundType, cycleValue(profile.BackgroundTypes, p.BackgroundType, dir))
	case fieldTextColor:
		return profile.Bind(profile.SetTextColor, cycleValue(profile.TextColors, p.CustomTextColor, dir))
	case fieldButtonShape:
		return profile.Bind(profile.SetButtonShape, cycleValue(profile.ButtonShapes, p.ButtonShape, dir))
	case fieldButtonStyle:
		return profile.Bind(profile.SetButtonStyle, cycleValue(profile.ButtonStyles, p.ButtonStyle, dir))
	case fieldFont:
		return profile.Bind(profile.SetFontFamily, cycleValue(profile.FontFamilies, p.FontFamily, dir))
	case fieldCardMode:
		switch cycleValue(profile.CardBackgroundTypes, p.CardBackgroundType, dir) {
		case profile.CardColor:
			return profile.Bind(profile.PickCardSwatch, p.CardBackgroundColor)
		case profile.CardImage:
			return profile.Bind(profile.SetCardBackgroundType, profile.CardImage)
		default:
			return profile.MatchCard
		}
	case fieldCardSwatch:
		return profile.Bind(profile.PickCardSwatch, cycleValue(profile.CardSwatches, p.CardBackgroundColor, dir))
	case fieldCardText:
		return profile.ToggleCardText
	}
	return nil
}

// commit turns the submitted text for f into an edit. Keywords are local
// to the editor and return a nil edit.
func (m Model) commit(f field, editURL bool, text string) (profile.Edit, error) {
	switch f.id {
	case fieldName:
		return profile.Bind(profile.SetName, text), nil
	case fieldBio:
		return profile.Bind(profile.SetBio, text), nil
	case fieldAvatar:
		image, err := profile.ResolveImage(text)
		if err != nil {
			return nil, err
		}
		if image == "" {
			image = profile.DefaultAvatarURL
		}
		return profile.Bind(profile.SetAvatar, image), nil
	case fieldBackgroundColor:
		hex, err := profile.ParseHexColor("customBackgroundColor", text)
		if err != nil {
			return nil, err
		}
		return func(p profile.UserProfile) profile.UserProfile {
			return profile.SetBackgroundType(profile.SetBackgroundColor(p, hex), profile.BackgroundColor)
		}, nil
	case fieldBackgroundImage:
		image, err := profile.ResolveRequiredImage("customBackgroundImage", text)
		if err != nil {
			return nil, err
		}
		return profile.Bind(profile.SetBackgroundImage, image), nil
	case fieldCardColor:
		hex, err := profile.ParseHexColor("cardBackgroundColor", text)
		if err != nil {
			return nil, err
		}
		return profile.Bind(profile.PickCardSwatch, hex), nil
	case fieldCardImage:
		image, err := profile.ResolveRequiredImage("cardBackgroundImage", text)
		if err != nil {
			return nil, err
		}
		return profile.Bind(profile.SetCardBackgroundImage, image), nil
	case fieldLink:
		patch := profile.LinkPatch{Title: &text}
		if editURL {
			patch = profile.LinkPatch{URL: &text}
		}
		id := f.linkID
		return func(p profile.UserProfile) profile.UserProfile {
			return profile.UpdateLink(p, id, patch)
		}, nil
	}
	return nil, nil
}

func cycleValue[T comparable](values []T, current T, dir int) T {
	idx := -1
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	if idx < 0 && dir < 0 {
		idx = 0
	}
	n := len(values)
	return values[((idx+dir)%n+n)%n]
}

func cycleTone(current assist.Tone, dir int) assist.Tone {
	return cycleValue(assist.Tones, current, dir)
}

func imageLabel(value string) string {
	switch {
	case value == "":
		return "(none)"
	case profile.IsDataURL(value):
		return fmt.Sprintf("inline image, %d KB", len(value)/1024)
	default:
		return value
	}
}

func bioCount(bio string) string {
	return fmt.Sprintf("%d/%d", utf8.RuneCountInString(bio), assist.MaxBioLength)
}

func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
