package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"opaque", Solid("#0f172a"), "#0f172a"},
		{"translucent", Tint("#ffffff", 0.7), "rgba(255, 255, 255, 0.7)"},
		{"transparent keyword", Transparent, "transparent"},
		{"malformed passes through", Tint("tomato", 0.5), "tomato"},
		{"zero", Color{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.color.CSS())
		})
	}
}

func TestColorTerminalBlends(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#0f172a", Solid("#0f172a").Terminal("#ffffff"))
	assert.Equal(t, "#808080", Tint("#ffffff", 0.5).Terminal("#000000"))
	assert.Equal(t, "#020617", Transparent.Terminal("#020617"))
}

func TestGradientCSS(t *testing.T) {
	t.Parallel()

	sunset := DefaultCatalog().Lookup("sunset")
	assert.Equal(t, "background-image: linear-gradient(to bottom right, #fb923c, #ec4899, #9333ea);", sunset.Background.CSS())

	ocean := DefaultCatalog().Lookup("ocean")
	assert.Equal(t, "background-image: conic-gradient(at top right, #1e40af, #0f172a, #000000);", ocean.Background.CSS())
	assert.Equal(t, "#0f172a", ocean.Background.Base())
}

func TestImageCSSQuotesURL(t *testing.T) {
	t.Parallel()

	bg := Image(`https://example.com/a"b.png`, false)
	assert.Equal(t, `background-image: url("https://example.com/a\"b.png"); background-size: cover; background-position: center;`, bg.CSS())
}

func TestCatalogLookup(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	assert.Len(t, catalog, 6)
	assert.Equal(t, "Midnight", catalog.Lookup("dark-mode").Name)
	assert.Equal(t, "minimal", catalog.Lookup("nope").ID)
	assert.True(t, catalog.Contains("neon"))
	assert.False(t, catalog.Contains("nope"))
	assert.Equal(t, Preset{}, Catalog{}.Lookup("anything"))
}
