package main

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/linkforce/internal/assist"
	"github.com/alexisbeaulieu97/linkforce/internal/export"
	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

const testKeyEnv = "LINKFORCE_TEST_API_KEY"

type testEnv struct {
	configPath string
	dataDir    string
	outputDir  string
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	root := t.TempDir()
	env := testEnv{
		configPath: filepath.Join(root, "linkforce.yaml"),
		dataDir:    filepath.Join(root, "data"),
		outputDir:  filepath.Join(root, "out"),
	}

	config := "store:\n" +
		"  backend: file\n" +
		"  dir: " + env.dataDir + "\n" +
		"  key: test_profile\n" +
		"assist:\n" +
		"  api_key_env: " + testKeyEnv + "\n" +
		"export:\n" +
		"  output_dir: " + env.outputDir + "\n" +
		"log:\n" +
		"  level: error\n"
	require.NoError(t, os.WriteFile(env.configPath, []byte(config), 0o644))

	t.Setenv(testKeyEnv, "")
	return env
}

func (e testEnv) execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", e.configPath}, args...))

	err := root.Execute()
	return stdout.String(), err
}

func (e testEnv) profile(t *testing.T) profile.UserProfile {
	t.Helper()

	out, err := e.execute(t, "show", "--json")
	require.NoError(t, err)
	p, err := profile.Decode([]byte(out))
	require.NoError(t, err)
	return p
}

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

func useGenerator(t *testing.T, gen assist.Generator) {
	t.Helper()
	original := newGenerator
	t.Cleanup(func() { newGenerator = original })
	newGenerator = func(context.Context, string, string) (assist.Generator, error) {
		return gen, nil
	}
}

type fakeRasterizer struct {
	data []byte
	err  error
}

func (f fakeRasterizer) Rasterize(ctx context.Context, html []byte, selector string, opts export.Options) ([]byte, error) {
	return f.data, f.err
}

func useRasterizer(t *testing.T, raster export.Rasterizer) {
	t.Helper()
	original := newRasterizer
	t.Cleanup(func() { newRasterizer = original })
	newRasterizer = func(export.Engine) (export.Rasterizer, error) {
		return raster, nil
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}
