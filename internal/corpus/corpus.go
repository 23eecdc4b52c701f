package corpus

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed library.json
var libraryFS embed.FS

// Corpus is the fixed article library the engines operate over. It is
// loaded once per session and read-only afterwards.
type Corpus struct {
	Articles   []Article  `json:"articles"`
	Categories []Category `json:"categories"`
}

// Default returns the embedded content library.
func Default() (*Corpus, error) {
	data, err := libraryFS.ReadFile("library.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded library: %w", err)
	}
	return parse(data)
}

// Load reads a corpus from an externally supplied JSON file. An empty
// path falls back to the embedded library.
func Load(path string) (*Corpus, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Corpus, error) {
	var c Corpus
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing corpus: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the corpus invariants: article ids are unique and
// every article references an existing category.
func (c *Corpus) Validate() error {
	cats := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		if cat.ID == "" {
			return fmt.Errorf("category %q: id is required", cat.Name)
		}
		cats[cat.ID] = true
	}

	seen := make(map[string]bool, len(c.Articles))
	for i, a := range c.Articles {
		if a.ID == "" {
			return fmt.Errorf("article %d: id is required", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("article %q: duplicate id", a.ID)
		}
		seen[a.ID] = true
		if !cats[a.Category] {
			return fmt.Errorf("article %q: unknown category %q", a.ID, a.Category)
		}
	}
	return nil
}

// ByID looks up an article by id.
func (c *Corpus) ByID(id string) (Article, bool) {
	for _, a := range c.Articles {
		if a.ID == id {
			return a, true
		}
	}
	return Article{}, false
}

// CategoryName resolves a category id to its display name, falling back
// to the id itself for unknown references.
func (c *Corpus) CategoryName(id string) string {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat.Name
		}
	}
	return id
}
