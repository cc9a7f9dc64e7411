// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// defaultDotEnv is read when ENV_FILE does not name another file.
const defaultDotEnv = ".env"

// loadDotEnv copies variables from the dotenv file into the process
// environment without overriding ones already set. A missing file is fine.
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = defaultDotEnv
	}

	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// parseEnv fills cfg from the `env` and `envPrefix` tags of
// [StructuredConfig].
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading environment: %w", err)
	}
	return nil
}
