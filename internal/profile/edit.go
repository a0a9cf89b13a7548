package profile

import "github.com/google/uuid"

// Edit is a pure transformation of a profile snapshot.
type Edit func(UserProfile) UserProfile

// Bind turns a reducer taking one argument into an Edit.
func Bind[T any](reducer func(UserProfile, T) UserProfile, arg T) Edit {
	return func(p UserProfile) UserProfile {
		return reducer(p, arg)
	}
}

// LinkPatch carries the link fields to change; nil fields are left alone.
type LinkPatch struct {
	Title *string
	URL   *string
	Icon  *string
}

var newLinkID = uuid.NewString

func uniqueLinkID(taken map[string]struct{}) string {
	for {
		id := newLinkID()
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}

// AddLink prepends an empty active link and returns its id.
func AddLink(p UserProfile) (UserProfile, string) {
	taken := make(map[string]struct{}, len(p.Links))
	for _, link := range p.Links {
		taken[link.ID] = struct{}{}
	}
	id := uniqueLinkID(taken)

	links := make([]LinkItem, 0, len(p.Links)+1)
	links = append(links, LinkItem{ID: id, IsActive: true})
	links = append(links, p.Links...)
	p.Links = links
	return p, id
}

// UpdateLink applies patch to the link with the given id. Unknown ids leave
// the profile unchanged.
func UpdateLink(p UserProfile, id string, patch LinkPatch) UserProfile {
	return mapLink(p, id, func(link LinkItem) LinkItem {
		if patch.Title != nil {
			link.Title = *patch.Title
		}
		if patch.URL != nil {
			link.URL = *patch.URL
		}
		if patch.Icon != nil {
			link.Icon = *patch.Icon
		}
		return link
	})
}

// ToggleLink flips the active flag of the link with the given id.
func ToggleLink(p UserProfile, id string) UserProfile {
	return mapLink(p, id, func(link LinkItem) LinkItem {
		link.IsActive = !link.IsActive
		return link
	})
}

// DeleteLink removes the link with the given id.
func DeleteLink(p UserProfile, id string) UserProfile {
	links := make([]LinkItem, 0, len(p.Links))
	for _, link := range p.Links {
		if link.ID != id {
			links = append(links, link)
		}
	}
	p.Links = links
	return p
}

func mapLink(p UserProfile, id string, fn func(LinkItem) LinkItem) UserProfile {
	if _, ok := p.FindLink(id); !ok {
		return p
	}
	links := make([]LinkItem, len(p.Links))
	for i, link := range p.Links {
		if link.ID == id {
			link = fn(link)
		}
		links[i] = link
	}
	p.Links = links
	return p
}

func SetName(p UserProfile, name string) UserProfile {
	p.Name = name
	return p
}

func SetBio(p UserProfile, bio string) UserProfile {
	p.Bio = bio
	return p
}

func SetAvatar(p UserProfile, url string) UserProfile {
	p.AvatarURL = url
	return p
}

// SelectPreset picks a theme preset and switches the background to preset
// mode.
func SelectPreset(p UserProfile, themeID string) UserProfile {
	p.ThemeID = themeID
	p.BackgroundType = BackgroundPreset
	return p
}

func SetBackgroundType(p UserProfile, kind BackgroundType) UserProfile {
	p.BackgroundType = kind
	return p
}

func SetBackgroundColor(p UserProfile, hex string) UserProfile {
	p.CustomBackgroundColor = hex
	return p
}

// SetBackgroundImage stores an image and switches the background to image
// mode.
func SetBackgroundImage(p UserProfile, image string) UserProfile {
	p.CustomBackgroundImage = image
	p.BackgroundType = BackgroundImage
	return p
}

func SetTextColor(p UserProfile, color TextColor) UserProfile {
	p.CustomTextColor = color
	return p
}

func SetButtonShape(p UserProfile, shape ButtonShape) UserProfile {
	p.ButtonShape = shape
	return p
}

func SetButtonStyle(p UserProfile, style ButtonStyle) UserProfile {
	p.ButtonStyle = style
	return p
}

func SetFontFamily(p UserProfile, font FontFamily) UserProfile {
	p.FontFamily = font
	return p
}

func SetCardBackgroundType(p UserProfile, kind CardBackgroundType) UserProfile {
	p.CardBackgroundType = kind
	return p
}

func SetCardBackgroundColor(p UserProfile, hex string) UserProfile {
	p.CardBackgroundColor = hex
	return p
}

func SetCardTextColor(p UserProfile, color TextColor) UserProfile {
	p.CardTextColor = color
	return p
}
