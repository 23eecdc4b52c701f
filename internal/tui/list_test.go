package tui

import (
	"strings"
	"testing"

	"github.com/promptdeck/promptdeck/internal/search"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("日本語テスト", 5)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestRenderEmphasisRemovesMarkers(t *testing.T) {
	in := "Learn " + search.Marker + "prompt" + search.Marker + " design"
	got := renderEmphasis(in)

	if strings.Contains(got, search.Marker) {
		t.Errorf("markers survived rendering: %q", got)
	}
	for _, word := range []string{"Learn", "prompt", "design"} {
		if !strings.Contains(got, word) {
			t.Errorf("rendered output lost %q: %q", word, got)
		}
	}
}

func TestRenderEmphasisPlainText(t *testing.T) {
	in := "no markers here"
	if got := renderEmphasis(in); got != in {
		t.Errorf("renderEmphasis(%q) = %q, want unchanged", in, got)
	}
}

func TestCenterTextNarrowWidth(t *testing.T) {
	got := centerText("wide message", 4, 3)
	if !strings.Contains(got, "wide message") {
		t.Errorf("message dropped: %q", got)
	}
}
