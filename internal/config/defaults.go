package config

import "time"

const (
	// EnvironmentProduction is the App.Environment value that disables
	// diagnostic output in error responses.
	EnvironmentProduction = "production"

	defaultDotEnvFile       = ".env"
	defaultHTTPAddress      = ":8080"
	defaultTokenIssuer      = "todo-keeper"
	defaultTokenDuration    = 24 * time.Hour
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 10 * time.Second
	defaultEnvironment      = "development"
	defaultClientBaseURL    = "http://localhost:8080"
	defaultClientReqTimeout = 15 * time.Second
)

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = defaultEnvironment
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Client.BaseURL == "" {
		cfg.Client.BaseURL = defaultClientBaseURL
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = defaultClientReqTimeout
	}
}
