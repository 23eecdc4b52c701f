package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/promptdeck/promptdeck/internal/discover"
	"github.com/promptdeck/promptdeck/internal/search"
)

func renderPreview(r search.Result, related []discover.Recommendation, bookmarked bool, width int) string {
	var b strings.Builder

	title := r.Article.Title
	if bookmarked {
		title = bookmarkMarkStyle.Render("* ") + title
	}
	b.WriteString(previewTitleStyle.Width(width).Render(title))
	b.WriteString("\n")

	author := r.Article.Author.Name
	if r.Article.Author.Role != "" {
		author += " · " + r.Article.Author.Role
	}
	b.WriteString(previewAuthorStyle.Render(author))
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %s · %s · %s",
		r.Article.Category, r.Article.Difficulty, r.Article.ReadTime, r.Article.Date)
	b.WriteString(itemMetaStyle.Render(meta))
	b.WriteString("\n\n")

	b.WriteString(previewBodyStyle.Width(width).Render(renderEmphasis(r.Excerpt)))
	b.WriteString("\n")

	if len(r.MatchedFields) > 0 {
		b.WriteString(previewLabelStyle.Render(
			fmt.Sprintf("matched: %s · score %d", strings.Join(r.MatchedFields, ", "), r.Score)))
		b.WriteString("\n")
	}

	if len(related) > 0 {
		b.WriteString(previewLabelStyle.Render("related"))
		b.WriteString("\n")
		for _, rec := range related {
			line := "  " + itemTitleStyle.Render(truncateStr(rec.Article.Title, width-4))
			b.WriteString(line + "\n")
			b.WriteString("    " + itemMetaStyle.Render(rec.Reason) + "\n")
		}
	}

	return b.String()
}

// renderEmphasis restyles the search engine's highlight markers for
// the terminal. Marker pairs alternate plain and highlighted segments.
func renderEmphasis(s string) string {
	parts := strings.Split(s, search.Marker)
	var b strings.Builder
	for i, p := range parts {
		if i%2 == 1 {
			b.WriteString(previewHighlightStyle.Render(p))
		} else {
			b.WriteString(p)
		}
	}
	return b.String()
}

func renderTrending(trending []discover.TrendingArticle, cursor, height, width int) string {
	if len(trending) == 0 {
		return centerText("No trending data", width, height)
	}

	var b strings.Builder
	for i, t := range trending {
		prefix := "  "
		style := itemTitleStyle
		if i == cursor {
			prefix = "> "
			style = itemSelectedStyle
		}
		b.WriteString(prefix + style.Render(truncateStr(t.Title, width-14)))
		b.WriteString(" " + trendingScoreStyle.Render(fmt.Sprintf("%.2f", t.TrendingScore)))
		b.WriteString("\n")
		b.WriteString("    " + itemMetaStyle.Render(fmt.Sprintf(
			"%d views · %d shares · %.0f%% engagement", t.ViewCount, t.ShareCount, t.EngagementRate*100)))
		b.WriteString("\n\n")
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}
