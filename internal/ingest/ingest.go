package ingest

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"unicode"

	"github.com/mmcdole/gofeed"

	"github.com/promptdeck/promptdeck/internal/corpus"
)

// Options control how feed items are mapped onto corpus articles.
type Options struct {
	// Category assigned to every ingested article. Must exist in the
	// target corpus.
	Category string
	// Difficulty assigned to every ingested article.
	Difficulty corpus.Difficulty
	// MaxItems bounds the number of items taken from the feed; 0 means
	// all of them.
	MaxItems int
}

// Fetcher converts a syndication feed into corpus articles. It exists
// so the content team can bootstrap a corpus file from the site's blog
// feed instead of hand-writing JSON.
type Fetcher struct {
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

// Fetch downloads the feed and maps its items to articles. The result
// still needs corpus validation before use.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, opts Options) ([]corpus.Article, error) {
	feed, err := f.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", feedURL, err)
	}

	items := feed.Items
	if opts.MaxItems > 0 && len(items) > opts.MaxItems {
		items = items[:opts.MaxItems]
	}

	articles := make([]corpus.Article, 0, len(items))
	for _, item := range items {
		content := stripHTML(item.Content)
		if content == "" {
			content = stripHTML(item.Description)
		}

		a := corpus.Article{
			ID:         articleID(item.Link),
			Title:      item.Title,
			Excerpt:    truncate(stripHTML(item.Description), 300),
			Content:    content,
			Category:   opts.Category,
			Tags:       append([]string(nil), item.Categories...),
			Difficulty: opts.Difficulty,
			ReadTime:   estimateReadTime(content),
			Path:       "/blog/" + slugify(item.Title),
		}
		if item.Author != nil {
			a.Author = corpus.Author{Name: item.Author.Name}
		}
		if item.PublishedParsed != nil {
			a.Date = item.PublishedParsed.Format("2006-01-02")
		} else if item.UpdatedParsed != nil {
			a.Date = item.UpdatedParsed.Format("2006-01-02")
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func articleID(link string) string {
	h := sha256.Sum256([]byte(link))
	return fmt.Sprintf("%x", h[:16])
}

func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func estimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
