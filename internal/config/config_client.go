package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line API client,
// assembled from the .env file and the environment only. Command-line
// flags belong to the client's subcommands.
type ClientConfig struct {
	// BaseURL is the address of the server the client talks to.
	BaseURL string
	// Token is the bearer credential attached to authenticated calls.
	Token string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// GetClientConfig builds and validates a client-specific config view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Client.BaseURL,
		Token:          cfg.Client.Token,
		RequestTimeout: cfg.Client.RequestTimeout,
	}

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}
