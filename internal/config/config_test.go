package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "storage: sqlite\nsite_base: https://example.com\ntrending_size: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Storage != StorageSQLite {
		t.Errorf("Storage = %q, want sqlite", cfg.Storage)
	}
	if cfg.SiteBase != "https://example.com" {
		t.Errorf("SiteBase = %q", cfg.SiteBase)
	}
	if cfg.GetTrendingSize() != 10 {
		t.Errorf("GetTrendingSize() = %d, want 10", cfg.GetTrendingSize())
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load returned nil config")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults not written to %s: %v", path, err)
	}
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: redis\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected an error for unknown storage backend")
	}
	if !strings.Contains(err.Error(), "redis") {
		t.Errorf("error %q does not name the bad backend", err)
	}
}

func TestLoadRejectsBadSiteBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("site_base: ftp://example.com\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a non-http site_base")
	}
}

func TestSizeDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetTrendingSize(); got != 6 {
		t.Errorf("GetTrendingSize() = %d, want 6", got)
	}
	if got := cfg.GetRelatedSize(); got != 3 {
		t.Errorf("GetRelatedSize() = %d, want 3", got)
	}
}

func TestArticleURL(t *testing.T) {
	cases := []struct {
		base string
		path string
		want string
	}{
		{"", "/articles/x", "https://promptdeck.io/articles/x"},
		{"https://example.com", "/articles/x", "https://example.com/articles/x"},
		{"https://example.com/", "/articles/x", "https://example.com/articles/x"},
	}
	for _, tc := range cases {
		cfg := &Config{SiteBase: tc.base}
		if got := cfg.ArticleURL(tc.path); got != tc.want {
			t.Errorf("ArticleURL(%q, %q) = %q, want %q", tc.base, tc.path, got, tc.want)
		}
	}
}
