package server

import (
	"context"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	defaultListen       = ":8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultMaxBodyBytes = 1 << 20
)

func (cfg *Config) fillDefaults() {
	if cfg.Listen == "" {
		cfg.Listen = defaultListen
	}

	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}

	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}

	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
}

// LoadConfig reads a YAML config from any URL afs can download. An empty url yields the
// defaults.
func LoadConfig(ctx context.Context, url string) (*Config, error) {
	cfg := &Config{}

	if url != "" {
		d, err := afs.New().DownloadWithURL(ctx, url)
		if err != nil {
			return nil, err
		}

		if err = yaml.Unmarshal(d, cfg); err != nil {
			return nil, err
		}
	}

	cfg.fillDefaults()

	return cfg, nil
}
