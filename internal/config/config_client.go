package config

import "fmt"

// ClientAdapter is the part of [Adapter] the client transport needs.
type ClientAdapter = Adapter

// ClientConfig is what the terminal client reads out of the merged
// configuration. Server, storage and worker groups are ignored, so a client
// starts without a token key or database settings.
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig merges the same sources as [GetStructuredConfig] but
// validates only the adapter group.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadMerged()
	if err != nil {
		return nil, fmt.Errorf("error loading client config: %w", err)
	}

	clientCfg := &ClientConfig{Adapter: cfg.Adapter}
	return clientCfg, clientCfg.validate()
}
