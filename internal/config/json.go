package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Env              string `json:"env"`
		Actor            string `json:"actor"`
		HashKey          string `json:"hash_key"`
		StrictEncryption bool   `json:"strict_encryption"`
		Concurrency      int    `json:"concurrency"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GraphQLPath    string   `json:"graphql_path"`
		RequestTimeout Duration `json:"request_timeout"`
		Token          string   `json:"token"`
	} `json:"adapter,omitempty"`

	Keys struct {
		PrivateKey string `json:"private_key"`
		PublicKey  string `json:"public_key"`
		File       string `json:"file"`
		Passphrase string `json:"passphrase"`
		KMSURL     string `json:"kms_url"`
	} `json:"keys,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`
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
		App: App{
			Env:              jsonCfg.App.Env,
			Actor:            jsonCfg.App.Actor,
			HashKey:          jsonCfg.App.HashKey,
			StrictEncryption: jsonCfg.App.StrictEncryption,
			Concurrency:      jsonCfg.App.Concurrency,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			GraphQLPath:    jsonCfg.Adapter.GraphQLPath,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Token:          jsonCfg.Adapter.Token,
		},
		Keys: Keys{
			PrivateKey: jsonCfg.Keys.PrivateKey,
			PublicKey:  jsonCfg.Keys.PublicKey,
			File:       jsonCfg.Keys.File,
			Passphrase: jsonCfg.Keys.Passphrase,
			KMSURL:     jsonCfg.Keys.KMSURL,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
