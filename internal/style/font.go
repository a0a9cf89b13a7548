package style

import "github.com/alexisbeaulieu97/linkforce/internal/profile"

// Font is the resolved typeface.
type Font struct {
	Family   profile.FontFamily
	Label    string
	Stack    string
	Tracking string
}

// ResolveFont maps a font family onto its CSS stack. Unknown values fall
// back to inter.
func ResolveFont(family profile.FontFamily) Font {
	switch family {
	case profile.FontDMSerif:
		return Font{Family: family, Label: family.Label(), Stack: `"DM Serif Display", ui-serif, Georgia, serif`, Tracking: "normal"}
	case profile.FontMono:
		return Font{Family: family, Label: family.Label(), Stack: `"JetBrains Mono", ui-monospace, SFMono-Regular, Menlo, monospace`, Tracking: "-0.025em"}
	default:
		return Font{Family: profile.FontInter, Label: profile.FontInter.Label(), Stack: `"Inter", ui-sans-serif, system-ui, sans-serif`, Tracking: "normal"}
	}
}
