package bookmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Persistence stores the reading list wholesale. Implementations are
// swapped via config; tests use Memory.
type Persistence interface {
	Load() ([]Record, error)
	Save([]Record) error
}

// Memory is an in-memory Persistence for tests and ephemeral sessions.
type Memory struct {
	records []Record
}

func (m *Memory) Load() ([]Record, error) {
	return append([]Record(nil), m.records...), nil
}

func (m *Memory) Save(records []Record) error {
	m.records = append([]Record(nil), records...)
	return nil
}

// File persists the reading list as a single JSON array on disk.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Load() ([]Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", f.path, err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	return records, nil
}

func (f *File) Save(records []Record) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if records == nil {
		// Keep the file a JSON array, never null.
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
