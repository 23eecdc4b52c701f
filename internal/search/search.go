package search

import (
	"sort"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/internal/corpus"
)

// Filters narrows the corpus before any relevance scoring happens.
// Zero values (and "all") mean no restriction. HasCodeExamples and
// HasDownloads are tri-state: nil leaves the predicate unset.
type Filters struct {
	Category        string
	Difficulty      string
	HasCodeExamples *bool
	HasDownloads    *bool
	Author          string
	Tags            []string
	// DateRange is accepted for interface parity with the site's filter
	// panel but is not enforced. See DESIGN.md.
	DateRange string
}

// Result is one ranked search hit.
type Result struct {
	Article       corpus.Article
	Score         int
	MatchedFields []string
	Excerpt       string
}

// Response is the full outcome of one search call.
type Response struct {
	Query       string
	Filters     Filters
	Results     []Result
	Total       int
	Elapsed     time.Duration
	Suggestions []string
}

// Field weights for term matches. Content is only checked against a
// bounded prefix to keep long-form articles cheap to scan.
const (
	weightTitle    = 10
	weightTags     = 8
	weightExcerpt  = 6
	weightAuthor   = 5
	weightCategory = 4
	weightContent  = 3

	contentScanLimit = 1000

	phraseBonusTitle   = 15
	phraseBonusExcerpt = 10

	maxSuggestions = 5
)

// doc holds the pre-lowered fields of one article so repeated searches
// do not re-normalize the corpus.
type doc struct {
	article    corpus.Article
	title      string
	tags       []string
	excerpt    string
	content    string
	authorName string
	authorRole string
	category   string
}

// Engine ranks articles against free-text queries. It is a pure
// function of (corpus, query, filters); concurrent calls share no
// mutable state.
type Engine struct {
	docs []doc
}

func New(c *corpus.Corpus) *Engine {
	docs := make([]doc, 0, len(c.Articles))
	for _, a := range c.Articles {
		d := doc{
			article:    a,
			title:      strings.ToLower(a.Title),
			excerpt:    strings.ToLower(a.Excerpt),
			content:    lowerPrefix(a.Content, contentScanLimit),
			authorName: strings.ToLower(a.Author.Name),
			authorRole: strings.ToLower(a.Author.Role),
			category:   strings.ToLower(a.Category),
		}
		for _, t := range a.Tags {
			d.tags = append(d.tags, strings.ToLower(t))
		}
		docs = append(docs, d)
	}
	return &Engine{docs: docs}
}

func lowerPrefix(s string, n int) string {
	runes := []rune(strings.ToLower(s))
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}

// Search filters the corpus, scores it against the query, and returns
// ranked results. An empty (or all-whitespace) query skips scoring and
// returns every filtered article with a zero score in corpus order.
func (e *Engine) Search(query string, f Filters) Response {
	start := time.Now()

	trimmed := strings.TrimSpace(query)
	terms := strings.Fields(strings.ToLower(trimmed))

	var results []Result
	for _, d := range e.docs {
		if !matchesFilters(d, f) {
			continue
		}
		if len(terms) == 0 {
			results = append(results, Result{
				Article: d.article,
				Excerpt: d.article.Excerpt,
			})
			continue
		}

		score, fields := scoreDoc(d, terms)
		score += phraseBonus(d, strings.ToLower(trimmed))
		if score <= 0 {
			continue
		}
		results = append(results, Result{
			Article:       d.article,
			Score:         score,
			MatchedFields: fields,
			Excerpt:       highlightExcerpt(d.article.Excerpt, terms),
		})
	}

	if len(terms) > 0 {
		// Stable sort so corpus order breaks ties.
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Score > results[j].Score
		})
	}

	return Response{
		Query:       query,
		Filters:     f,
		Results:     results,
		Total:       len(results),
		Elapsed:     time.Since(start),
		Suggestions: e.Suggest(trimmed),
	}
}

func matchesFilters(d doc, f Filters) bool {
	if f.Category != "" && f.Category != "all" && f.Category != d.article.Category {
		return false
	}
	if f.Difficulty != "" && f.Difficulty != "all" && f.Difficulty != string(d.article.Difficulty) {
		return false
	}
	if f.HasCodeExamples != nil && *f.HasCodeExamples != d.article.HasCodeExamples {
		return false
	}
	if f.HasDownloads != nil && *f.HasDownloads != d.article.HasDownloads {
		return false
	}
	if f.Author != "" && !strings.Contains(d.authorName, strings.ToLower(f.Author)) {
		return false
	}
	if len(f.Tags) > 0 && !matchesAnyTag(d.tags, f.Tags) {
		return false
	}
	// DateRange intentionally not applied.
	return true
}

// matchesAnyTag reports whether any filter tag is a substring of an
// article tag or vice versa, case-insensitively.
func matchesAnyTag(docTags []string, filterTags []string) bool {
	for _, ft := range filterTags {
		lft := strings.ToLower(ft)
		for _, dt := range docTags {
			if strings.Contains(dt, lft) || strings.Contains(lft, dt) {
				return true
			}
		}
	}
	return false
}

// scoreDoc sums field weights for every term match and records each
// matched field once, in order of first match.
func scoreDoc(d doc, terms []string) (int, []string) {
	score := 0
	var fields []string
	seen := make(map[string]bool, 6)

	hit := func(name string, weight int) {
		score += weight
		if !seen[name] {
			seen[name] = true
			fields = append(fields, name)
		}
	}

	for _, term := range terms {
		if strings.Contains(d.title, term) {
			hit("title", weightTitle)
		}
		if tagContains(d.tags, term) {
			hit("tags", weightTags)
		}
		if strings.Contains(d.excerpt, term) {
			hit("excerpt", weightExcerpt)
		}
		if strings.Contains(d.content, term) {
			hit("content", weightContent)
		}
		if strings.Contains(d.authorName, term) || strings.Contains(d.authorRole, term) {
			hit("author", weightAuthor)
		}
		if strings.Contains(d.category, term) {
			hit("category", weightCategory)
		}
	}
	return score, fields
}

func tagContains(tags []string, term string) bool {
	for _, t := range tags {
		if strings.Contains(t, term) {
			return true
		}
	}
	return false
}

func phraseBonus(d doc, phrase string) int {
	bonus := 0
	if strings.Contains(d.title, phrase) {
		bonus += phraseBonusTitle
	}
	if strings.Contains(d.excerpt, phrase) {
		bonus += phraseBonusExcerpt
	}
	return bonus
}
