package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/linkforce/internal/profile"
)

func TestBioGenerateSavesSuggestion(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv(testKeyEnv, "test-key")
	gen := &fakeGenerator{text: "  Coffee-fuelled builder ☕  "}
	useGenerator(t, gen)

	out, err := env.execute(t, "bio", "generate", "--keywords", "coffee, code", "--tone", "funny")
	require.NoError(t, err)
	assert.Equal(t, "Coffee-fuelled builder ☕\n", out)
	assert.Contains(t, gen.prompt, "coffee, code")
	assert.Contains(t, gen.prompt, "Funny")

	assert.Equal(t, "Coffee-fuelled builder ☕", env.profile(t).Bio)
}

func TestBioGenerateDryRunKeepsBio(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv(testKeyEnv, "test-key")
	useGenerator(t, &fakeGenerator{text: "New bio"})

	out, err := env.execute(t, "bio", "generate", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, "New bio\n", out)
	assert.Equal(t, profile.Default().Bio, env.profile(t).Bio)
}

func TestBioGenerateFailures(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		env := setupTestEnv(t)

		_, err := env.execute(t, "bio", "generate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Set "+testKeyEnv)
	})

	t.Run("model error", func(t *testing.T) {
		env := setupTestEnv(t)
		t.Setenv(testKeyEnv, "test-key")
		useGenerator(t, &fakeGenerator{err: errors.New("quota exceeded")})

		_, err := env.execute(t, "bio", "generate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "quota exceeded")
		assert.Equal(t, profile.Default().Bio, env.profile(t).Bio)
	})

	t.Run("unknown tone", func(t *testing.T) {
		env := setupTestEnv(t)

		_, err := env.execute(t, "bio", "generate", "--tone", "grumpy")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tone")
	})
}

func TestBioGenerateDiffMarksChanges(t *testing.T) {
	env := setupTestEnv(t)
	t.Setenv(testKeyEnv, "test-key")
	useGenerator(t, &fakeGenerator{text: "Digital Artist | Tech Enthusiast | Building cool things"})

	out, err := env.execute(t, "bio", "generate", "--diff", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "[-")
	assert.Contains(t, out, "{+")
	assert.Contains(t, out, "| Building cool things")
}
