package config

import (
	"fmt"
	"strings"

	"github.com/jorge-barreto/cex/internal/cex"
)

const (
	defaultTimeout   = 30
	defaultUserAgent = "cex/1"
	defaultMaxBytes  = 50 << 20
	defaultAddr      = ":8090"
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	dm := &cfg.DataModels
	if dm.Label == "" {
		dm.Label = cex.DataModelsLabel
	}
	if dm.ModelColumn == "" {
		dm.ModelColumn = cex.DefaultModelColumn
	}
	if dm.CollectionColumn == "" {
		dm.CollectionColumn = cex.DefaultCollectionColumn
	}
	if strings.HasPrefix(dm.Label, "#!") {
		return fmt.Errorf("config: datamodels: label %q must not include the #! marker", dm.Label)
	}
	if dm.ModelColumn == dm.CollectionColumn {
		return fmt.Errorf("config: datamodels: model-column and collection-column are both %q", dm.ModelColumn)
	}
	for _, col := range []string{dm.ModelColumn, dm.CollectionColumn} {
		if strings.Contains(col, "|") {
			return fmt.Errorf("config: datamodels: column name %q contains the | separator", col)
		}
	}

	f := &cfg.Fetch
	if f.Timeout < 0 {
		return fmt.Errorf("config: fetch: timeout must be positive, got %d", f.Timeout)
	}
	if f.Timeout == 0 {
		f.Timeout = defaultTimeout
	}
	if f.MaxBytes < 0 {
		return fmt.Errorf("config: fetch: max-bytes must be positive, got %d", f.MaxBytes)
	}
	if f.MaxBytes == 0 {
		f.MaxBytes = defaultMaxBytes
	}
	if f.UserAgent == "" {
		f.UserAgent = defaultUserAgent
	}

	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = defaultAddr
	}
	if !strings.Contains(cfg.Serve.Addr, ":") {
		return fmt.Errorf("config: serve: addr %q must be host:port or :port", cfg.Serve.Addr)
	}

	return nil
}
