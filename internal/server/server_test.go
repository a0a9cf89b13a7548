package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/linkforce/internal/busy"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
	"github.com/alexisbeaulieu97/linkforce/internal/store"
	"github.com/alexisbeaulieu97/linkforce/internal/style"
)

type staticSource struct {
	p profile.UserProfile
}

func (s staticSource) Load(context.Context) profile.UserProfile {
	return s.p.Clone()
}

type fakeExporter struct {
	png []byte
	err error
}

func (f fakeExporter) Snapshot(ctx context.Context, p profile.UserProfile) ([]byte, error) {
	return f.png, f.err
}

func newTestServer(t *testing.T, p profile.UserProfile, exporter CardExporter) *Server {
	t.Helper()
	return New(staticSource{p: p}, style.DefaultCatalog(), exporter, nil)
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestPreviewPage(t *testing.T) {
	t.Parallel()

	p := profile.ToggleLink(profile.Default(), "3")
	srv := newTestServer(t, p, nil)

	resp, body := get(t, srv.App(), "/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, body, "Ahmed Ali")
	assert.Contains(t, body, "My Portfolio")
	assert.NotContains(t, body, "Instagram")
	assert.Contains(t, body, `data-preset="dark-mode"`)
}

func TestPreviewEscapesUserText(t *testing.T) {
	t.Parallel()

	p := profile.SetName(profile.Default(), "<script>alert(1)</script>")
	srv := newTestServer(t, p, nil)

	_, body := get(t, srv.App(), "/")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestCardPage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, profile.Default(), nil)

	resp, body := get(t, srv.App(), "/card")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="card"`)
	assert.Contains(t, body, "@ahmedali")
	assert.Contains(t, body, "linkforce.app/ahmedali")
}

func TestCardPNG(t *testing.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\nfake")
	cases := []struct {
		name       string
		exporter   CardExporter
		wantStatus int
	}{
		{name: "snapshot is served", exporter: fakeExporter{png: png}, wantStatus: fiber.StatusOK},
		{name: "busy exporter conflicts", exporter: fakeExporter{err: busy.ErrBusy}, wantStatus: fiber.StatusConflict},
		{name: "failed export is a bad gateway", exporter: fakeExporter{err: errors.New("browser crashed")}, wantStatus: fiber.StatusBadGateway},
		{name: "missing exporter is unavailable", exporter: nil, wantStatus: fiber.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(t, profile.Default(), tc.exporter)
			resp, body := get(t, srv.App(), "/card.png")
			require.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantStatus == fiber.StatusOK {
				assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
				assert.Equal(t, string(png), body)
				return
			}
			assert.Contains(t, body, `"error"`)
		})
	}
}

func TestProfileAPI(t *testing.T) {
	t.Parallel()

	p := profile.Default()
	p.Links = nil
	srv := newTestServer(t, p, nil)

	resp, body := get(t, srv.App(), "/api/profile")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "application/json")
	assert.Contains(t, body, `"links":[]`)

	decoded, err := profile.Decode([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, p.Name, decoded.Name)
	assert.Empty(t, decoded.Links)
}

func TestServerPicksUpEditsFromOtherStores(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	served, err := store.NewFileSlot(dir, "shared")
	require.NoError(t, err)
	other, err := store.NewFileSlot(dir, "shared")
	require.NoError(t, err)

	srvStore := store.New(served, nil)
	srvStore.Load(context.Background())
	srv := New(srvStore, style.DefaultCatalog(), nil, nil)

	_, body := get(t, srv.App(), "/api/profile")
	assert.Contains(t, body, `"name":"Ahmed Ali"`)

	editor := store.New(other, nil)
	editor.Load(context.Background())
	editor.Apply(context.Background(), profile.Bind(profile.SetName, "Changed Elsewhere"))

	_, body = get(t, srv.App(), "/api/profile")
	assert.Contains(t, body, `"name":"Changed Elsewhere"`)

	_, body = get(t, srv.App(), "/")
	assert.Contains(t, body, "Changed Elsewhere")
}

func TestPresentationAPI(t *testing.T) {
	t.Parallel()

	p := profile.PickCardSwatch(profile.SelectPreset(profile.Default(), "minimal"), "#ffffff")
	srv := newTestServer(t, p, nil)

	resp, body := get(t, srv.App(), "/api/presentation")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got presentationResponse
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	assert.Equal(t, "minimal", got.PresetID)
	assert.Equal(t, "dark", got.Tone)
	assert.Equal(t, "#0f172a", got.Text)
	assert.Equal(t, "pill", got.Button.Shape)
	assert.Equal(t, "9999px", got.Button.Radius)
	assert.Equal(t, "color", got.Card.Kind)
	assert.Equal(t, "dark", got.Card.Tone)
	assert.Equal(t, "@ahmedali", got.Card.Handle)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, profile.Default(), nil)
	resp, body := get(t, srv.App(), "/missing")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"error"`)
}
