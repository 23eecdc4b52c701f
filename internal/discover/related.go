package discover

import (
	"fmt"
	"sort"
	"strings"

	"github.com/promptdeck/promptdeck/internal/corpus"
)

// Factor points for related-content ranking.
const (
	pointsSameCategory   = 30
	pointsSameAuthor     = 20
	pointsSameDifficulty = 15
	pointsPerSharedTag   = 10
	pointsPerTitleWord   = 8
	pointsBothCode       = 5
	pointsBothDownloads  = 5

	// Trending score feeds in as a continuous popularity boost on top
	// of the discrete factors.
	trendingBoost = 10

	defaultRelatedLimit = 3
	titleWordMinLen     = 3
	maxReasonFactors    = 2
)

// Recommendation pairs a related article with its similarity score and
// a short human-readable reason.
type Recommendation struct {
	Article corpus.Article
	Score   float64
	Reason  string
}

type factor struct {
	points float64
	label  string
}

// Related scores every other article against ref, keeps those scoring
// above zero, and returns the top limit (default 3) with reasons built
// from the two strongest factors.
func (e *Engine) Related(ref corpus.Article, limit int) []Recommendation {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}

	maxViews, maxShares := e.maxSignals()
	refWords := titleWords(ref.Title)

	var recs []Recommendation
	for _, a := range e.articles {
		if a.ID == ref.ID {
			continue
		}

		var score float64
		var factors []factor
		add := func(points float64, label string) {
			score += points
			factors = append(factors, factor{points, label})
		}

		if a.Category == ref.Category {
			add(pointsSameCategory, "Same category")
		}
		if a.Difficulty == ref.Difficulty {
			add(pointsSameDifficulty, "Same difficulty level")
		}
		if n := sharedTags(ref.Tags, a.Tags); n > 0 {
			add(float64(n*pointsPerSharedTag), sharedTagLabel(n))
		}
		if a.Author.Name == ref.Author.Name {
			add(pointsSameAuthor, "Same author")
		}
		if ref.HasCodeExamples && a.HasCodeExamples {
			add(pointsBothCode, "Both include code examples")
		}
		if ref.HasDownloads && a.HasDownloads {
			add(pointsBothDownloads, "Both include downloads")
		}
		if n := sharedTitleWords(refWords, a.Title); n > 0 {
			add(float64(n*pointsPerTitleWord), "Similar title")
		}

		score += e.score(a, e.signals.Stats(a.ID), maxViews, maxShares) * trendingBoost

		if score <= 0 {
			continue
		}
		recs = append(recs, Recommendation{
			Article: a,
			Score:   score,
			Reason:  buildReason(factors),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// sharedTags counts candidate tags that fuzzy-match a reference tag: a
// case-insensitive substring in either direction.
func sharedTags(refTags, tags []string) int {
	n := 0
	for _, t := range tags {
		lt := strings.ToLower(t)
		for _, rt := range refTags {
			lrt := strings.ToLower(rt)
			if strings.Contains(lt, lrt) || strings.Contains(lrt, lt) {
				n++
				break
			}
		}
	}
	return n
}

func sharedTagLabel(n int) string {
	if n == 1 {
		return "1 shared topic"
	}
	return fmt.Sprintf("%d shared topics", n)
}

func titleWords(title string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if len(w) > titleWordMinLen {
			words[w] = true
		}
	}
	return words
}

// sharedTitleWords counts distinct words (longer than 3 characters)
// the candidate title shares verbatim with the reference title.
func sharedTitleWords(refWords map[string]bool, title string) int {
	n := 0
	seen := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if refWords[w] && !seen[w] {
			seen[w] = true
			n++
		}
	}
	return n
}

// buildReason joins the two strongest factors. The fallback fires only
// when the trending boost alone carried the score above zero.
func buildReason(factors []factor) string {
	if len(factors) == 0 {
		return "Related content"
	}
	sort.SliceStable(factors, func(i, j int) bool {
		return factors[i].points > factors[j].points
	})
	if len(factors) > maxReasonFactors {
		factors = factors[:maxReasonFactors]
	}
	labels := make([]string, len(factors))
	for i, f := range factors {
		labels[i] = f.label
	}
	return strings.Join(labels, ", ")
}
