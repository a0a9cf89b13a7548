package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	lferrors "github.com/alexisbeaulieu97/linkforce/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `store:
  backend: redis
  key: cards
  redis:
    addr: "localhost:6380"
    db: 2
assist:
  timeout: 10s
export:
  engine: rod
  pixel_ratio: 2
log:
  level: debug
  human_readable: false
`

	invalidYAML := `store:
  backend: [file, redis]
`

	badEngine := `export:
  engine: webkit
`

	redisWithoutAddr := `store:
  backend: redis
  redis:
    addr: ""
`

	badKey := `store:
  key: "has spaces/and slashes"
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed over defaults",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				require.Equal(t, "redis", cfg.Store.Backend)
				require.Equal(t, "cards", cfg.Store.Key)
				require.Equal(t, "localhost:6380", cfg.Store.Redis.Addr)
				require.Equal(t, 2, cfg.Store.Redis.DB)
				require.Equal(t, 10*time.Second, cfg.Assist.Timeout)
				require.Equal(t, "API_KEY", cfg.Assist.APIKeyEnv)
				require.Equal(t, "rod", cfg.Export.Engine)
				require.InDelta(t, 2.0, cfg.Export.PixelRatio, 0.001)
				require.Equal(t, 340, cfg.Export.Width)
				require.Equal(t, "debug", cfg.Log.Level)
				require.False(t, cfg.Log.HumanReadable)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *lferrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown engine returns validation error",
			contents: badEngine,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *lferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "export.engine", validationErr.Field)
				require.Contains(t, validationErr.Message, "oneof")
			},
		},
		{
			name:     "redis backend requires an address",
			contents: redisWithoutAddr,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *lferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "store.redis.addr", validationErr.Field)
			},
		},
		{
			name:     "slot key must be a safe name",
			contents: badKey,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *lferrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "store.key", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.contents)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ValidateConfig(&cfg))
	require.Error(t, ValidateConfig(nil))
}

func TestDataDirPrefersConfiguredDir(t *testing.T) {
	t.Parallel()

	dir, err := StoreConfig{Dir: "/tmp/lf"}.DataDir()
	require.NoError(t, err)
	require.Equal(t, "/tmp/lf", dir)
}

func TestAPIKeyReadsConfiguredVariable(t *testing.T) {
	t.Setenv("LINKFORCE_TEST_KEY", "secret")

	require.Equal(t, "secret", AssistConfig{APIKeyEnv: "LINKFORCE_TEST_KEY"}.APIKey())
	require.Empty(t, AssistConfig{APIKeyEnv: "LINKFORCE_TEST_UNSET"}.APIKey())
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 7, extractLine(errors.New("yaml: line 7: did not find expected key")))
	require.Equal(t, 0, extractLine(errors.New("no position")))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
