package config

import "time"

// Backend names accepted by Storage.Backend.
const (
	BackendMemory    = "memory"
	BackendSQLite    = "sqlite"
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        "go-time-diary",
			TokenDuration:      24 * time.Hour,
			ResetTokenDuration: 15 * time.Minute,
			TimeZone:           "UTC",
			Language:           "en",
			Version:            "dev",
		},
		Storage: Storage{
			Backend: BackendMemory,
			SQLite:  SQLite{Path: "diary.db"},
			Blobs:   Blobs{Bucket: "diary-images"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			SessionSweepInterval: time.Minute,
			SessionTTL:           30 * time.Minute,
		},
		EnvFilePath: ".env",
	}
}
