package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDotEnv(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestBuild_Layers(t *testing.T) {
	tests := []struct {
		name   string
		layers []*StructuredConfig
		check  func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "later layer wins per field",
			layers: []*StructuredConfig{
				{App: App{TokenSignKey: "env-key", TokenIssuer: "env-issuer"}},
				{App: App{TokenSignKey: "flag-key"}},
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
				assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
			},
		},
		{
			name: "fields of different sections combine",
			layers: []*StructuredConfig{
				{App: App{TokenSignKey: "key", Version: "1.0.0"}},
				{Storage: Storage{DB: DB{DSN: "postgres://localhost/todos"}}},
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "1.0.0", cfg.App.Version)
				assert.Equal(t, "postgres://localhost/todos", cfg.Storage.DB.DSN)
			},
		},
		{
			name:   "defaults fill the rest",
			layers: []*StructuredConfig{{App: App{TokenSignKey: "key"}}},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, defaultTokenIssuer, cfg.App.TokenIssuer)
				assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
				assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
				assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
				assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
				assert.False(t, cfg.App.IsProduction())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.layers = tt.layers

			cfg, err := b.build()

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestMerge_NoLayers(t *testing.T) {
	cfg, err := newConfigBuilder().merge()
	require.NoError(t, err)

	want := &StructuredConfig{}
	want.applyDefaults()
	assert.Equal(t, want, cfg)
}

func TestBuild_RequiresSignKey(t *testing.T) {
	cfg, err := newConfigBuilder().build()

	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.Nil(t, cfg)
}

func TestBuild_ReportsCollectedErrors(t *testing.T) {
	b := newConfigBuilder().
		withFlags([]string{"-no-such-flag"}).
		push("json", nil, assert.AnError)

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "flags: ")
	assert.ErrorContains(t, err, "json: ")
}

func TestWithDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
		assert.NoError(t, b.err)
		assert.Empty(t, b.layers)
	})

	t.Run("fills only unset variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("APP_TOKEN_ISSUER", "from-env")
		path := writeDotEnv(t, "APP_JWT_KEY=from-file\nAPP_TOKEN_ISSUER=from-file\n")

		b := newConfigBuilder().withDotEnv(path).withEnv()

		require.NoError(t, b.err)
		require.Len(t, b.layers, 1)
		assert.Equal(t, "from-file", b.layers[0].App.TokenSignKey)
		assert.Equal(t, "from-env", b.layers[0].App.TokenIssuer)
	})
}

func TestWithFlags(t *testing.T) {
	t.Run("empty command line adds a layer", func(t *testing.T) {
		b := newConfigBuilder().withFlags(nil)
		assert.NoError(t, b.err)
		assert.Len(t, b.layers, 1)
	})

	t.Run("unknown flag fails the build", func(t *testing.T) {
		b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
		assert.Error(t, b.err)
		assert.Empty(t, b.layers)
	})
}

func TestWithJSON(t *testing.T) {
	t.Run("no path is a no-op", func(t *testing.T) {
		b := newConfigBuilder()
		b.layers = append(b.layers, &StructuredConfig{})

		b.withJSON()

		assert.NoError(t, b.err)
		assert.Len(t, b.layers, 1)
	})

	t.Run("last path wins", func(t *testing.T) {
		first := writeConfigFile(t, `{"app": {"version": "first"}}`)
		last := writeConfigFile(t, `{"app": {"version": "last"}}`)
		b := newConfigBuilder()
		b.layers = append(b.layers, &StructuredConfig{JSONFilePath: first}, &StructuredConfig{}, &StructuredConfig{JSONFilePath: last})

		b.withJSON()

		require.NoError(t, b.err)
		require.Len(t, b.layers, 4)
		assert.Equal(t, "last", b.layers[3].App.Version)
	})

	t.Run("bad file is reported", func(t *testing.T) {
		b := newConfigBuilder()
		b.layers = append(b.layers, &StructuredConfig{JSONFilePath: writeConfigFile(t, "{not valid json")})

		b.withJSON()

		assert.ErrorContains(t, b.err, "json: error decoding json configs")
		assert.Len(t, b.layers, 1)
	})
}

func TestBuilder_SourcePrecedence(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_JWT_KEY", "env-key")
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("SERVER_ADDRESS", "localhost:9000")
	dotenv := writeDotEnv(t, "APP_TOKEN_ISSUER=dotenv-issuer\nAPP_VERSION=dotenv-version\n")
	t.Cleanup(func() { _ = os.Unsetenv("APP_TOKEN_ISSUER") })
	jsonPath := writeConfigFile(t, `{"server": {"request_timeout": "7s"}, "app": {"version": "json-version"}}`)

	cfg, err := newConfigBuilder().
		withDotEnv(dotenv).
		withEnv().
		withFlags([]string{"-a", "localhost:9100", "-c", jsonPath}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "dotenv-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, "localhost:9100", cfg.Server.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, jsonPath, cfg.JSONFilePath)
}
