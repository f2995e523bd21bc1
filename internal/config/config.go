package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	// Upstream API bases. The relay exists so these never reach the browser.
	PlayerInfoAPIBase string `env:"PLAYER_INFO_API_BASE" envDefault:"https://ariiflexlabs-playerinfo-icxc.onrender.com"`
	ImageAPIBase      string `env:"IMAGE_API_BASE" envDefault:"https://system.ffgarena.cloud/api/iconsff"`

	// Item catalog resource, loaded once at startup.
	CatalogPath string `env:"CATALOG_PATH" envDefault:"./data/app.json"`

	// Static assets for the lookup page.
	StaticDir string `env:"STATIC_DIR" envDefault:"./web/static"`

	// Pre-filled lookup used for the startup warm-up and the page defaults.
	DefaultUID    string `env:"DEFAULT_UID" envDefault:""`
	DefaultRegion string `env:"DEFAULT_REGION" envDefault:"ind"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
