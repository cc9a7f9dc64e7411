// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks that the merged [StructuredConfig] can start a server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.ResetTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}
	if _, err := time.LoadLocation(cfg.App.TimeZone); err != nil {
		return fmt.Errorf("%w: time zone %q: %w", ErrInvalidAppConfigs, cfg.App.TimeZone, err)
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.SessionSweepInterval <= 0 || cfg.Workers.SessionTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Backend {
	case BackendMemory:
	case BackendSQLite:
		if s.SQLite.Path == "" {
			return fmt.Errorf("%w: sqlite path is required", ErrInvalidStorageConfigs)
		}
	case BackendPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
		}
	case BackendFirestore:
		if s.Firestore.ProjectID == "" {
			return fmt.Errorf("%w: firestore project id is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, s.Backend)
	}

	if s.Blobs.Endpoint != "" && s.Blobs.Bucket == "" {
		return fmt.Errorf("%w: blob bucket is required", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
