package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	ValueService struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"value_service,omitempty"`

	Defaults struct {
		FilePath   string `json:"file"`
		SQLitePath string `json:"sqlite"`
	} `json:"defaults,omitempty"`

	Layers struct {
		Files      []string `json:"files"`
		EnvPrefix  string   `json:"env_prefix"`
		Properties []string `json:"properties"`
	} `json:"layers,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Metrics struct {
		FilePath string `json:"file"`
	} `json:"metrics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		ValueService: ValueService{
			BaseURL:        jsonCfg.ValueService.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.ValueService.RequestTimeout),
		},
		Defaults: Defaults{
			FilePath:   jsonCfg.Defaults.FilePath,
			SQLitePath: jsonCfg.Defaults.SQLitePath,
		},
		Layers: Layers{
			Files:      jsonCfg.Layers.Files,
			EnvPrefix:  jsonCfg.Layers.EnvPrefix,
			Properties: jsonCfg.Layers.Properties,
		},
		Log:          Log{Level: jsonCfg.Log.Level},
		Metrics:      Metrics{FilePath: jsonCfg.Metrics.FilePath},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
