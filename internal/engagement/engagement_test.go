package engagement

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTableUnknownIDIsZero(t *testing.T) {
	tbl := Table{"known": {Views: 10}}

	got := tbl.Stats("unknown")
	if got.Views != 0 || got.Shares != 0 || got.EngagementRate != 0 {
		t.Errorf("unknown id: got %+v, want zero stats", got)
	}
}

func TestDefaultTableLoads(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if len(tbl) == 0 {
		t.Fatal("embedded signal table is empty")
	}
}

func TestLoadTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.yaml")
	data := "art-1:\n  views: 500\n  shares: 42\n  engagement_rate: 0.8\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable error: %v", err)
	}
	got := tbl.Stats("art-1")
	if got.Views != 500 || got.Shares != 42 || got.EngagementRate != 0.8 {
		t.Errorf("art-1 stats = %+v", got)
	}
}

func TestLoadTableEmptyPathFallsBack(t *testing.T) {
	tbl, err := LoadTable("")
	if err != nil {
		t.Fatalf("LoadTable(\"\") error: %v", err)
	}
	if len(tbl) == 0 {
		t.Fatal("fallback table is empty")
	}
}

func TestEngagementRateValidation(t *testing.T) {
	for _, rate := range []string{"1.5", "-0.2"} {
		path := filepath.Join(t.TempDir(), "signals.yaml")
		data := "bad:\n  views: 1\n  engagement_rate: " + rate + "\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := LoadTable(path)
		if err == nil {
			t.Fatalf("rate %s: expected an error", rate)
		}
		if !strings.Contains(err.Error(), "engagement_rate") {
			t.Errorf("rate %s: error %q does not mention engagement_rate", rate, err)
		}
	}
}
