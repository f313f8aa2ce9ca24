package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"jwt_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Environment   string   `json:"env"`
		LogLevel      string   `json:"log_level"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Client struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	decoder := json.NewDecoder(jsonFile)
	// a misspelled key would otherwise silently leave a setting empty
	decoder.DisallowUnknownFields()
	if err = decoder.Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return jsonCfg.structured(), nil
}

func (c *StructuredJSONConfig) structured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  c.App.TokenSignKey,
			TokenIssuer:   c.App.TokenIssuer,
			TokenDuration: time.Duration(c.App.TokenDuration),
			Environment:   c.App.Environment,
			LogLevel:      c.App.LogLevel,
			Version:       c.App.Version,
		},
		Storage: Storage{DB: DB{DSN: c.Storage.DB.DSN}},
		Server: Server{
			HTTPAddress:     c.Server.HTTPAddress,
			RequestTimeout:  time.Duration(c.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(c.Server.ShutdownTimeout),
		},
		Client: Client{
			BaseURL:        c.Client.BaseURL,
			RequestTimeout: time.Duration(c.Client.RequestTimeout),
		},
	}
}

// Duration accepts either a Go duration string ("1h", "30s") or a plain
// number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case float64:
		*d = Duration(v)
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %s", b)
	}
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
