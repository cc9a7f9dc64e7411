package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string   `json:"token_sign_key"`
		TokenIssuer        string   `json:"token_issuer"`
		TokenDuration      Duration `json:"token_duration"`
		ResetTokenDuration Duration `json:"reset_token_duration"`
		TimeZone           string   `json:"time_zone"`
		Language           string   `json:"language"`
		Version            string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		DB      struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		SQLite struct {
			Path string `json:"path"`
		} `json:"sqlite,omitempty"`
		Memory struct {
			SnapshotPath string `json:"snapshot_path"`
		} `json:"memory,omitempty"`
		Firestore struct {
			ProjectID       string `json:"project_id"`
			CredentialsFile string `json:"credentials_file"`
		} `json:"firestore,omitempty"`
		Blobs struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseSSL    bool   `json:"use_ssl"`
			PublicURL string `json:"public_url"`
		} `json:"blobs,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
		SessionTTL           Duration `json:"session_ttl"`
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
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			TokenDuration:      time.Duration(jsonCfg.App.TokenDuration),
			ResetTokenDuration: time.Duration(jsonCfg.App.ResetTokenDuration),
			TimeZone:           jsonCfg.App.TimeZone,
			Language:           jsonCfg.App.Language,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			SQLite:  SQLite{Path: jsonCfg.Storage.SQLite.Path},
			Memory:  Memory{SnapshotPath: jsonCfg.Storage.Memory.SnapshotPath},
			Firestore: Firestore{
				ProjectID:       jsonCfg.Storage.Firestore.ProjectID,
				CredentialsFile: jsonCfg.Storage.Firestore.CredentialsFile,
			},
			Blobs: Blobs{
				Endpoint:  jsonCfg.Storage.Blobs.Endpoint,
				AccessKey: jsonCfg.Storage.Blobs.AccessKey,
				SecretKey: jsonCfg.Storage.Blobs.SecretKey,
				Bucket:    jsonCfg.Storage.Blobs.Bucket,
				UseSSL:    jsonCfg.Storage.Blobs.UseSSL,
				PublicURL: jsonCfg.Storage.Blobs.PublicURL,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
			SessionTTL:           time.Duration(jsonCfg.Workers.SessionTTL),
		},
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
