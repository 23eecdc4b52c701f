package search

import "strings"

// Suggest returns up to five autocomplete candidates for a partial
// query: title words starting with it, tags containing it, and author
// names with a name token starting with it. Candidates keep their
// original casing and are deduplicated as typed.
func (e *Engine) Suggest(query string) []string {
	if len([]rune(query)) < 2 {
		return nil
	}
	q := strings.ToLower(query)

	var out []string
	seen := make(map[string]bool)
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, d := range e.docs {
		for _, word := range strings.Fields(d.article.Title) {
			if len(word) > 2 && strings.HasPrefix(strings.ToLower(word), q) {
				add(word)
			}
		}
		for i, tag := range d.tags {
			if strings.Contains(tag, q) {
				add(d.article.Tags[i])
			}
		}
		for _, token := range strings.Fields(d.authorName) {
			if strings.HasPrefix(token, q) {
				add(d.article.Author.Name)
				break
			}
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
