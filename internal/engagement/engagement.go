package engagement

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_signals.yaml
var defaultFS embed.FS

// Stats holds the engagement signals for one article.
type Stats struct {
	Views          int     `yaml:"views"`
	Shares         int     `yaml:"shares"`
	EngagementRate float64 `yaml:"engagement_rate"`
}

// Source supplies engagement signals keyed by article id. Unknown ids
// must yield zero-value Stats, never an error.
type Source interface {
	Stats(articleID string) Stats
}

// Table is a static Source backed by a lookup map. In production the
// same contract is expected to front a live analytics feed.
type Table map[string]Stats

func (t Table) Stats(articleID string) Stats {
	return t[articleID]
}

// Default returns the embedded signal table shipped with the library.
func Default() (Table, error) {
	data, err := defaultFS.ReadFile("default_signals.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded signals: %w", err)
	}
	return parseTable(data)
}

// LoadTable reads a signal table from a YAML file, typically an
// analytics export. An empty path falls back to the embedded table.
func LoadTable(path string) (Table, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading signals: %w", err)
	}
	return parseTable(data)
}

func parseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing signals: %w", err)
	}
	for id, s := range t {
		if s.EngagementRate < 0 || s.EngagementRate > 1 {
			return nil, fmt.Errorf("signals for %q: engagement_rate must be in [0,1], got %v", id, s.EngagementRate)
		}
	}
	return t, nil
}
