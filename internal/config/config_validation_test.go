package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	valid := func() StructuredConfig {
		return StructuredConfig{
			App: App{
				TokenSignKey:  "secret",
				TokenIssuer:   "todo-keeper",
				TokenDuration: time.Hour,
			},
			Server: Server{
				HTTPAddress:    ":8080",
				RequestTimeout: time.Second,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{name: "no sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no issuer", mutate: func(cfg *StructuredConfig) { cfg.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "negative duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = -time.Second }, wantErr: ErrInvalidAppConfigs},
		{name: "no address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no request timeout", mutate: func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr bool
	}{
		{name: "valid", cfg: ClientConfig{BaseURL: "http://localhost:8080", RequestTimeout: time.Second}},
		{name: "no scheme", cfg: ClientConfig{BaseURL: "localhost:8080", RequestTimeout: time.Second}, wantErr: true},
		{name: "no host", cfg: ClientConfig{BaseURL: "http://", RequestTimeout: time.Second}, wantErr: true},
		{name: "no timeout", cfg: ClientConfig{BaseURL: "http://localhost:8080"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClientConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("CLIENT_BASE_URL", "http://127.0.0.1:9000")
	t.Setenv("CLIENT_TOKEN", "abc")

	cfg, err := GetClientConfig()
	if assert.NoError(t, err) {
		assert.Equal(t, "http://127.0.0.1:9000", cfg.BaseURL)
		assert.Equal(t, "abc", cfg.Token)
		assert.Equal(t, defaultClientReqTimeout, cfg.RequestTimeout)
	}
}
