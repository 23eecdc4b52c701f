package discover

import (
	"strings"

	"github.com/promptdeck/promptdeck/internal/corpus"
)

const collectionSize = 3

// Collection is a curated thematic grouping of articles.
type Collection struct {
	ID          string
	Title       string
	Description string
	Articles    []corpus.Article
}

var collectionDefs = []struct {
	id          string
	title       string
	description string
	match       func(corpus.Article) bool
}{
	{
		id:          "getting-started",
		title:       "Getting Started",
		description: "First steps for readers new to prompt engineering.",
		match: func(a corpus.Article) bool {
			return a.Difficulty == corpus.Beginner
		},
	},
	{
		id:          "production-ready",
		title:       "Production-Ready",
		description: "Prompts and workflows hardened for real deployments.",
		match: func(a corpus.Article) bool {
			return hasTagContaining(a, "production", "workflow")
		},
	},
	{
		id:          "safety-ethics",
		title:       "Safety & Ethics",
		description: "Guardrails, disclosure, and responsible use.",
		match: func(a corpus.Article) bool {
			return hasTagContaining(a, "safety", "ethics")
		},
	},
	{
		id:          "advanced-techniques",
		title:       "Advanced Techniques",
		description: "Deep dives for experienced prompt engineers.",
		match: func(a corpus.Article) bool {
			return a.Difficulty == corpus.Advanced
		},
	},
}

// Collections assembles the curated groupings, up to three articles
// each. Collections with no matching articles are omitted.
func (e *Engine) Collections() []Collection {
	var out []Collection
	for _, def := range collectionDefs {
		var matched []corpus.Article
		for _, a := range e.articles {
			if def.match(a) {
				matched = append(matched, a)
				if len(matched) == collectionSize {
					break
				}
			}
		}
		if len(matched) == 0 {
			continue
		}
		out = append(out, Collection{
			ID:          def.id,
			Title:       def.title,
			Description: def.description,
			Articles:    matched,
		})
	}
	return out
}

func hasTagContaining(a corpus.Article, substrings ...string) bool {
	for _, tag := range a.Tags {
		lt := strings.ToLower(tag)
		for _, sub := range substrings {
			if strings.Contains(lt, sub) {
				return true
			}
		}
	}
	return false
}
