package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAndShareURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		handle string
	}{
		{"Ahmed Ali", "ahmedali"},
		{"  Mixed\tCase  Name ", "mixedcasename"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.handle, Handle(tt.name))
			assert.Equal(t, "https://linkforce.app/"+tt.handle, ShareURL(tt.name))
		})
	}
}

func TestExportFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "AhmedAli-card.png", ExportFilename("Ahmed Ali"))
	assert.Equal(t, "profile-card.png", ExportFilename("   "))
	assert.Equal(t, "a-b-card.png", ExportFilename("a/b"))
}

func TestReadImageProducesDataURL(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, png, 0o600))

	url, err := ReadImage(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	assert.True(t, IsDataURL(url))
}

func TestReadImageAcceptsLargePayload(t *testing.T) {
	t.Parallel()

	header := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	data := append(header, make([]byte, 8<<20)...)
	path := filepath.Join(t.TempDir(), "huge.png")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	url, err := ReadImage(path)
	require.NoError(t, err)
	assert.Greater(t, len(url), len(data), "no size limit is applied")
}

func TestReadImageDoesNotCheckType(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o600))

	got, err := ReadImage(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:text/plain"), got)

	_, err = ReadImage(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestResolveImage(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"https://cdn.example/a.png", "http://example.com/b.jpg", "data:image/gif;base64,R0lGOD"} {
		got, err := ResolveImage(value)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	}

	got, err := ResolveImage("   ")
	require.NoError(t, err)
	assert.Empty(t, got)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	path := filepath.Join(t.TempDir(), "bg.png")
	require.NoError(t, os.WriteFile(path, png, 0o600))

	got, err = ResolveImage(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

	_, err = ResolveImage(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}

func TestResolveRequiredImageRejectsEmpty(t *testing.T) {
	t.Parallel()

	_, err := ResolveRequiredImage("background-image", " ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "background-image")

	got, err := ResolveRequiredImage("background-image", "https://cdn.example/a.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/a.png", got)
}
