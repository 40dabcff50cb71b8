package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can use human-readable
// values like "1h" or "30s".
type Duration time.Duration

// UnmarshalJSON accepts either a duration string ("15s") or nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := time.ParseDuration(asString)
		if err != nil {
			return fmt.Errorf("parse duration %q: %w", asString, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var asInt int64
	if err := json.Unmarshal(data, &asInt); err != nil {
		return fmt.Errorf("duration must be a string or integer: %w", err)
	}
	*d = Duration(asInt)
	return nil
}

// serverJSONConfig mirrors [ServerConfig] with JSON tags.
type serverJSONConfig struct {
	App struct {
		HashKey       string   `json:"hash_key"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Server struct {
		Address string `json:"address"`
	} `json:"server,omitempty"`
}

// clientJSONConfig mirrors [ClientConfig] with JSON tags.
type clientJSONConfig struct {
	Adapter struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Path string `json:"path"`
	} `json:"storage,omitempty"`

	LogPath string `json:"log_path,omitempty"`
}

func parseServerJSON(path string) (*ServerConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json config: %w", err)
	}

	var jsonCfg serverJSONConfig
	if err = json.Unmarshal(raw, &jsonCfg); err != nil {
		return nil, fmt.Errorf("decode json config: %w", err)
	}

	return &ServerConfig{
		App: AppConfig{
			HashKey:       jsonCfg.App.HashKey,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Storage: StorageConfig{DSN: jsonCfg.Storage.DSN},
		Server:  HTTPServerConfig{Address: jsonCfg.Server.Address},
	}, nil
}

func parseClientJSON(path string) (*ClientConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json config: %w", err)
	}

	var jsonCfg clientJSONConfig
	if err = json.Unmarshal(raw, &jsonCfg); err != nil {
		return nil, fmt.Errorf("decode json config: %w", err)
	}

	return &ClientConfig{
		Adapter: AdapterConfig{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: ClientStorageConfig{Path: jsonCfg.Storage.Path},
		LogPath: jsonCfg.LogPath,
	}, nil
}
