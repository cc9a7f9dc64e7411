// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-time-diary server and client. It is populated by merging values from a
// .env file, environment variables, command-line flags, an optional JSON file
// and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the diary time zone, the message language
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage selects the document store backend and holds its connection
	// settings, plus the optional blob storage for diary images.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the terminal client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before environment variables are
	// parsed. Defaults to ".env"; a missing file is not an error.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ResetTokenDuration specifies how long a password reset token remains
	// valid.
	// Env: APP_RESET_TOKEN_DURATION
	ResetTokenDuration time.Duration `env:"RESET_TOKEN_DURATION"`

	// TimeZone is the IANA zone used to decide whether the latest diary page
	// belongs to "today" (e.g. "Europe/Moscow").
	// Env: APP_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`

	// Language selects the message table used for validation errors
	// ("en" or "ru").
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the document store and blob storage.
type Storage struct {
	// Backend is one of "memory", "sqlite", "postgres" or "firestore".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	DB        DB        `envPrefix:"DB_"`
	SQLite    SQLite    `envPrefix:"SQLITE_"`
	Memory    Memory    `envPrefix:"MEMORY_"`
	Firestore Firestore `envPrefix:"FIRESTORE_"`
	Blobs     Blobs     `envPrefix:"BLOBS_"`
}

// DB holds connection settings for the PostgreSQL backend.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// SQLite holds settings for the SQLite backend.
type SQLite struct {
	// Path is the database file. It is created when missing.
	// Env: STORAGE_SQLITE_PATH
	Path string `env:"PATH"`
}

// Memory holds settings for the in-memory backend.
type Memory struct {
	// SnapshotPath, when set, makes the in-memory store persist every write
	// to a JSON file and reload it on start.
	// Env: STORAGE_MEMORY_SNAPSHOT_PATH
	SnapshotPath string `env:"SNAPSHOT_PATH"`
}

// Firestore holds settings for the Cloud Firestore backend.
type Firestore struct {
	// ProjectID is the Google Cloud project hosting the database.
	// Env: STORAGE_FIRESTORE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// CredentialsFile is an optional service account key file. Application
	// default credentials are used when empty.
	// Env: STORAGE_FIRESTORE_CREDENTIALS_FILE
	CredentialsFile string `env:"CREDENTIALS_FILE"`
}

// Blobs holds MinIO settings for diary image uploads. Uploads are disabled
// when Endpoint is empty.
type Blobs struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET"`
	UseSSL    bool   `env:"USE_SSL"`

	// PublicURL is the base URL clients use to download objects
	// (e.g. "http://localhost:9000"). Derived from Endpoint when empty.
	PublicURL string `env:"PUBLIC_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the server address the client connects to.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often idle screen sessions are evicted.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`

	// SessionTTL is how long a screen session may stay untouched.
	// Env: WORKERS_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// For every field the first source that sets it wins:
//  1. Environment variables (including those loaded from the .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadMerged()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadMerged() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
