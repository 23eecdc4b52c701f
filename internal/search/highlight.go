package search

import (
	"strings"
	"unicode"
)

// Marker wraps matched query terms in highlighted excerpts. The TUI
// re-styles it; plain-text consumers see markdown emphasis.
const Marker = "**"

// highlightExcerpt picks the excerpt sentence containing the most
// distinct query terms, wraps every term occurrence in Marker, and
// appends an ellipsis when the sentence is not the whole excerpt.
func highlightExcerpt(excerpt string, terms []string) string {
	if excerpt == "" {
		return ""
	}

	sentences := strings.Split(excerpt, ". ")
	best := sentences[0]
	bestHits := 0
	for _, s := range sentences {
		lower := strings.ToLower(s)
		hits := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				hits++
			}
		}
		if hits > bestHits {
			best = s
			bestHits = hits
		}
	}

	out := best
	for _, term := range terms {
		out = emphasize(out, term)
	}

	if best != excerpt {
		out += "..."
	}
	return out
}

// emphasize wraps every case-insensitive occurrence of term in Marker,
// preserving the original casing of the matched text. Matching is done
// rune by rune so case folds that change byte length never split a
// rune in the output.
func emphasize(s, term string) string {
	if term == "" {
		return s
	}
	runes := []rune(s)
	tr := []rune(term)

	var b strings.Builder
	i := 0
	for i < len(runes) {
		if i+len(tr) <= len(runes) && foldEqual(runes[i:i+len(tr)], tr) {
			b.WriteString(Marker)
			b.WriteString(string(runes[i : i+len(tr)]))
			b.WriteString(Marker)
			i += len(tr)
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}

func foldEqual(a, b []rune) bool {
	for i := range b {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}
