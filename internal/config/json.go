package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type structuredJSONConfig struct {
	App struct {
		TokenSignKey    string `json:"token_sign_key"`
		TokenTTLSeconds int64  `json:"token_ttl_seconds"`
		Version         string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string `json:"http_address"`
		RequestTimeout string `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg structuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var requestTimeout time.Duration
	if jsonCfg.Server.RequestTimeout != "" {
		requestTimeout, err = time.ParseDuration(jsonCfg.Server.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("error parsing request timeout from json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenTTLSeconds: jsonCfg.App.TokenTTLSeconds,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: requestTimeout,
		},
	}, nil
}
