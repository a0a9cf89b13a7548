// Package profile holds the profile aggregate, its defaults, the saved-data
// merge rules and the pure reducers every editor surface uses to change it.
package profile

// LinkItem is one entry of the link list.
type LinkItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	IsActive bool   `json:"isActive"`
	Icon     string `json:"icon,omitempty"`
}

// UserProfile is the single aggregate edited by the user. It is always fully
// defined; a new one starts from Default.
type UserProfile struct {
	Name      string     `json:"name"`
	Bio       string     `json:"bio"`
	AvatarURL string     `json:"avatarUrl"`
	Links     []LinkItem `json:"links"`

	ThemeID               string         `json:"themeId"`
	BackgroundType        BackgroundType `json:"backgroundType" validate:"oneof=preset color image"`
	CustomBackgroundColor string         `json:"customBackgroundColor"`
	CustomBackgroundImage string         `json:"customBackgroundImage"`
	CustomTextColor       TextColor      `json:"customTextColor" validate:"oneof=white black"`

	ButtonShape ButtonShape `json:"buttonShape" validate:"oneof=pill rounded sharp"`
	ButtonStyle ButtonStyle `json:"buttonStyle" validate:"oneof=solid outline soft glass"`
	FontFamily  FontFamily  `json:"fontFamily" validate:"oneof=inter dm-serif mono"`

	CardBackgroundType  CardBackgroundType `json:"cardBackgroundType" validate:"oneof=match color image"`
	CardBackgroundColor string             `json:"cardBackgroundColor"`
	CardBackgroundImage string             `json:"cardBackgroundImage"`
	CardTextColor       TextColor          `json:"cardTextColor" validate:"oneof=white black"`
}

// DefaultAvatarURL is the placeholder avatar of a fresh profile.
const DefaultAvatarURL = "https://picsum.photos/200"

// DefaultThemeID is the preset selected for a fresh profile.
const DefaultThemeID = "dark-mode"

// Default returns the profile used when nothing has been saved yet.
func Default() UserProfile {
	return UserProfile{
		Name:      "Ahmed Ali",
		Bio:       "Digital Creator | Tech Enthusiast | Building cool things",
		AvatarURL: DefaultAvatarURL,
		Links: []LinkItem{
			{ID: "1", Title: "My Portfolio", URL: "https://example.com", IsActive: true},
			{ID: "2", Title: "Twitter / X", URL: "https://twitter.com", IsActive: true},
			{ID: "3", Title: "Instagram", URL: "https://instagram.com", IsActive: true},
		},
		ThemeID:               DefaultThemeID,
		BackgroundType:        BackgroundPreset,
		CustomBackgroundColor: "#0f172a",
		CustomBackgroundImage: "",
		CustomTextColor:       TextWhite,
		ButtonShape:           ShapePill,
		ButtonStyle:           StyleGlass,
		FontFamily:            FontInter,
		CardBackgroundType:    CardMatch,
		CardBackgroundColor:   "#000000",
		CardBackgroundImage:   "",
		CardTextColor:         TextWhite,
	}
}

// Clone returns a deep copy so the caller can hand out snapshots without
// sharing the link slice.
func (p UserProfile) Clone() UserProfile {
	if p.Links != nil {
		links := make([]LinkItem, len(p.Links))
		copy(links, p.Links)
		p.Links = links
	}
	return p
}

// ActiveLinks returns the links that should be rendered, in list order.
func (p UserProfile) ActiveLinks() []LinkItem {
	active := make([]LinkItem, 0, len(p.Links))
	for _, link := range p.Links {
		if link.IsActive {
			active = append(active, link)
		}
	}
	return active
}

// FindLink looks up a link by id.
func (p UserProfile) FindLink(id string) (LinkItem, bool) {
	for _, link := range p.Links {
		if link.ID == id {
			return link, true
		}
	}
	return LinkItem{}, false
}
