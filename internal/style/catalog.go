package style

// Tone says whether a surface carries light or dark text.
type Tone int

const (
	// LightText is white-ish text on a dark surface.
	LightText Tone = iota
	// DarkText is slate text on a light surface.
	DarkText
)

func (t Tone) String() string {
	if t == DarkText {
		return "dark"
	}
	return "light"
}

// Preset is an immutable catalog entry.
type Preset struct {
	ID          string
	Name        string
	Background  Background
	Text        Color
	Description Color
	Tone        Tone
}

// Catalog is an ordered, fixed list of presets. Entry 0 is the fallback.
type Catalog []Preset

// Lookup returns the preset with the given id, or entry 0 when the id is
// unknown.
func (c Catalog) Lookup(id string) Preset {
	for _, preset := range c {
		if preset.ID == id {
			return preset
		}
	}
	if len(c) == 0 {
		return Preset{}
	}
	return c[0]
}

// Contains reports whether id names a preset.
func (c Catalog) Contains(id string) bool {
	for _, preset := range c {
		if preset.ID == id {
			return true
		}
	}
	return false
}

// DefaultCatalog returns the built-in presets.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:          "minimal",
			Name:        "Clean White",
			Background:  Flat("#f8fafc"),
			Text:        Solid("#0f172a"),
			Description: Solid("#64748b"),
			Tone:        DarkText,
		},
		{
			ID:          "dark-mode",
			Name:        "Midnight",
			Background:  Flat("#020617"),
			Text:        Solid("#ffffff"),
			Description: Solid("#94a3b8"),
			Tone:        LightText,
		},
		{
			ID:   "sunset",
			Name: "Sunset",
			Background: Background{Kind: BackgroundGradient, Gradient: Gradient{
				Kind:     GradientLinear,
				Position: "to bottom right",
				Stops:    []Color{Solid("#fb923c"), Solid("#ec4899"), Solid("#9333ea")},
			}},
			Text:        Solid("#ffffff"),
			Description: Solid("#ffedd5"),
			Tone:        LightText,
		},
		{
			ID:   "ocean",
			Name: "Abyss",
			Background: Background{Kind: BackgroundGradient, Gradient: Gradient{
				Kind:     GradientConic,
				Position: "at top right",
				Stops:    []Color{Solid("#1e40af"), Solid("#0f172a"), Solid("#000000")},
			}},
			Text:        Solid("#eff6ff"),
			Description: Solid("#bfdbfe"),
			Tone:        LightText,
		},
		{
			ID:   "forest",
			Name: "Aurora",
			Background: Background{Kind: BackgroundGradient, Gradient: Gradient{
				Kind:     GradientLinear,
				Position: "to top right",
				Stops:    []Color{Solid("#064e3b"), Solid("#134e4a"), Solid("#0f172a")},
			}},
			Text:        Solid("#ecfdf5"),
			Description: Solid("#a7f3d0"),
			Tone:        LightText,
		},
		{
			ID:          "neon",
			Name:        "Cyberpunk",
			Background:  Flat("#000000"),
			Text:        Solid("#ec4899"),
			Description: Solid("#f9a8d4"),
			Tone:        LightText,
		},
	}
}
