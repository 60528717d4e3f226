package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for JSON decoding. Durations
// accept Go duration strings ("30s") or nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version          string `json:"version"`
		HashKey          string `json:"hash_key"`
		MasterPassphrase string `json:"master_passphrase"`
		LogLevel         string `json:"log_level"`
	} `json:"app,omitempty"`

	Gate struct {
		Credential   string   `json:"credential"`
		TokenSignKey string   `json:"token_sign_key"`
		TokenIssuer  string   `json:"token_issuer"`
		ProofTTL     Duration `json:"proof_ttl"`
	} `json:"gate,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PurgeInterval Duration `json:"purge_interval"`
	} `json:"workers,omitempty"`
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
			Version:          jsonCfg.App.Version,
			HashKey:          jsonCfg.App.HashKey,
			MasterPassphrase: jsonCfg.App.MasterPassphrase,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Gate: Gate{
			Credential:   jsonCfg.Gate.Credential,
			TokenSignKey: jsonCfg.Gate.TokenSignKey,
			TokenIssuer:  jsonCfg.Gate.TokenIssuer,
			ProofTTL:     time.Duration(jsonCfg.Gate.ProofTTL),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PurgeInterval: time.Duration(jsonCfg.Workers.PurgeInterval),
		},
	}

	return cfg, nil
}

// Duration is a time.Duration decodable from a JSON string or number.
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
