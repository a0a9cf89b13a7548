package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

func TestResolvePresetUsesCatalogText(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	for _, preset := range catalog {
		t.Run(preset.ID, func(t *testing.T) {
			p := profile.SelectPreset(profile.Default(), preset.ID)
			got := catalog.Resolve(p)

			assert.Equal(t, preset.ID, got.PresetID)
			assert.Equal(t, preset.Text, got.Text)
			assert.Equal(t, preset.Description, got.Description)
			assert.Equal(t, preset.Tone, got.Tone)
			assert.False(t, got.Background.HasOverlay())
		})
	}
}

func TestResolveUnknownPresetFallsBackToFirstEntry(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	unknown := profile.SelectPreset(profile.Default(), "vaporwave")
	first := profile.SelectPreset(profile.Default(), catalog[0].ID)

	if diff := cmp.Diff(catalog.Resolve(first), catalog.Resolve(unknown)); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveCustomColorIgnoresPreset(t *testing.T) {
	t.Parallel()

	p := profile.Default()
	p = profile.SelectPreset(p, "minimal")
	p = profile.SetBackgroundType(p, profile.BackgroundColor)
	p = profile.SetBackgroundColor(p, "#000000")
	p = profile.SetTextColor(p, profile.TextBlack)

	got := Resolve(p)
	assert.Equal(t, BackgroundFlat, got.Background.Kind)
	assert.Equal(t, "#000000", got.Background.Fill.Hex)
	assert.Equal(t, DarkText, got.Tone, "explicit text choice wins over computed contrast")
	assert.Equal(t, Solid("#0f172a"), got.Text)
	assert.Equal(t, Solid("#475569"), got.Description)
	assert.False(t, got.Background.HasOverlay())
}

func TestResolveCustomWhiteText(t *testing.T) {
	t.Parallel()

	p := profile.SetBackgroundType(profile.Default(), profile.BackgroundColor)
	got := Resolve(p)

	assert.Equal(t, LightText, got.Tone)
	assert.Equal(t, Solid("#ffffff"), got.Text)
	assert.Equal(t, Tint("#ffffff", 0.7), got.Description)
}

func TestResolveImageAddsOverlay(t *testing.T) {
	t.Parallel()

	p := profile.SetBackgroundImage(profile.Default(), "data:image/png;base64,AAAA")
	got := Resolve(p)

	assert.Equal(t, BackgroundImage, got.Background.Kind)
	assert.Equal(t, "data:image/png;base64,AAAA", got.Background.Image)
	require.True(t, got.Background.HasOverlay())
	assert.Equal(t, "background-color: rgba(0, 0, 0, 0.2);", got.Background.OverlayCSS())
	assert.Contains(t, got.Background.CSS(), "background-size: cover")
	assert.Contains(t, got.Background.CSS(), "background-position: center")
}

func TestResolveButtonFollowsResolvedTone(t *testing.T) {
	t.Parallel()

	light := Resolve(profile.SelectPreset(profile.Default(), "dark-mode"))
	dark := Resolve(profile.SelectPreset(profile.Default(), "minimal"))

	assert.Equal(t, ResolveButton(profile.ShapePill, profile.StyleGlass, LightText), light.Button)
	assert.Equal(t, ResolveButton(profile.ShapePill, profile.StyleGlass, DarkText), dark.Button)
	assert.NotEqual(t, light.Button.Foreground, dark.Button.Foreground)
}

func TestResolveButtonVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style profile.ButtonStyle
		tone  Tone
		bg    Color
		fg    Color
	}{
		{profile.StyleSolid, DarkText, Solid("#0f172a"), Solid("#ffffff")},
		{profile.StyleSolid, LightText, Solid("#ffffff"), Solid("#0f172a")},
		{profile.StyleOutline, DarkText, Transparent, Solid("#0f172a")},
		{profile.StyleOutline, LightText, Transparent, Solid("#ffffff")},
		{profile.StyleSoft, DarkText, Solid("#e2e8f0"), Solid("#0f172a")},
		{profile.StyleSoft, LightText, Tint("#ffffff", 0.1), Solid("#ffffff")},
		{profile.StyleGlass, DarkText, Tint("#0f172a", 0.05), Solid("#0f172a")},
		{profile.StyleGlass, LightText, Tint("#ffffff", 0.1), Solid("#ffffff")},
	}

	for _, tt := range tests {
		t.Run(string(tt.style)+"/"+tt.tone.String(), func(t *testing.T) {
			btn := ResolveButton(profile.ShapeRounded, tt.style, tt.tone)
			assert.Equal(t, tt.style, btn.Style)
			assert.Equal(t, tt.bg, btn.Background)
			assert.Equal(t, tt.fg, btn.Foreground)
			assert.Equal(t, "0.75rem", btn.Radius)
		})
	}
}

func TestResolveButtonHover(t *testing.T) {
	t.Parallel()

	outline := ResolveButton(profile.ShapePill, profile.StyleOutline, DarkText)
	assert.True(t, outline.Hover.Invert)
	assert.Equal(t, Solid("#1e293b"), outline.Hover.Background)
	assert.Equal(t, Solid("#ffffff"), outline.Hover.Foreground)

	outline = ResolveButton(profile.ShapePill, profile.StyleOutline, LightText)
	assert.Equal(t, Solid("#0f172a"), outline.Hover.Foreground)

	for _, style := range []profile.ButtonStyle{profile.StyleSolid, profile.StyleSoft, profile.StyleGlass} {
		btn := ResolveButton(profile.ShapePill, style, LightText)
		assert.False(t, btn.Hover.Invert, style)
		assert.Equal(t, "110%", btn.Hover.Brightness, style)
	}
}

func TestResolveButtonDefaults(t *testing.T) {
	t.Parallel()

	btn := ResolveButton("", "", LightText)
	assert.Equal(t, profile.ShapePill, btn.Shape)
	assert.Equal(t, "9999px", btn.Radius)
	assert.Equal(t, profile.StyleGlass, btn.Style)

	assert.Equal(t, "0", ResolveButton(profile.ShapeSharp, profile.StyleSolid, LightText).Radius)
}

func TestResolveFont(t *testing.T) {
	t.Parallel()

	assert.Contains(t, ResolveFont(profile.FontInter).Stack, "Inter")
	assert.Contains(t, ResolveFont(profile.FontDMSerif).Stack, "serif")
	mono := ResolveFont(profile.FontMono)
	assert.Contains(t, mono.Stack, "monospace")
	assert.Equal(t, "-0.025em", mono.Tracking)
	assert.Equal(t, profile.FontInter, ResolveFont("comic-sans").Family)
}
