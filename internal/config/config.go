package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Storage backends for the reading list.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

type Config struct {
	// Corpus is a path to an externally supplied corpus JSON file.
	// Empty means the embedded library.
	Corpus string `yaml:"corpus,omitempty"`
	// Signals is a path to an engagement-table YAML export. Empty means
	// the embedded table.
	Signals string `yaml:"signals,omitempty"`
	// Storage selects the reading-list backend: file or sqlite.
	Storage string `yaml:"storage"`
	// SiteBase is the public site root used when opening articles in a
	// browser.
	SiteBase string `yaml:"site_base"`

	TrendingSize int `yaml:"trending_size,omitempty"`
	RelatedSize  int `yaml:"related_size,omitempty"`
}

// GetTrendingSize returns the trending list size, defaulting to 6.
func (c *Config) GetTrendingSize() int {
	if c.TrendingSize <= 0 {
		return 6
	}
	return c.TrendingSize
}

// GetRelatedSize returns the related-articles count, defaulting to 3.
func (c *Config) GetRelatedSize() int {
	if c.RelatedSize <= 0 {
		return 3
	}
	return c.RelatedSize
}

// ArticleURL joins the site base with an article path for browser
// hand-off.
func (c *Config) ArticleURL(path string) string {
	base := c.SiteBase
	if base == "" {
		base = "https://promptdeck.io"
	}
	if len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + path
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "promptdeck", "config.yaml")
}

// ReadingListPath is the JSON file used by the file storage backend.
func ReadingListPath() string {
	return filepath.Join(xdg.DataHome, "promptdeck", "reading_list.json")
}

// DatabasePath is the sqlite file used by the sqlite storage backend.
func DatabasePath() string {
	return filepath.Join(xdg.DataHome, "promptdeck", "promptdeck.db")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	switch cfg.Storage {
	case "", StorageFile, StorageSQLite:
	default:
		return fmt.Errorf("storage: unknown backend %q (valid: %s, %s)", cfg.Storage, StorageFile, StorageSQLite)
	}
	if cfg.SiteBase != "" {
		u, err := url.Parse(cfg.SiteBase)
		if err != nil {
			return fmt.Errorf("site_base: invalid url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("site_base: url scheme must be http or https, got %q", u.Scheme)
		}
	}
	return nil
}
