package tui

import (
	"fmt"
	"strings"

	"github.com/promptdeck/promptdeck/internal/search"
)

func renderListItem(r search.Result, selected, bookmarked bool, width int) string {
	if width < 10 {
		width = 30
	}

	mark := "  "
	if bookmarked {
		mark = bookmarkMarkStyle.Render("* ")
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(r.Article.Title, width-6))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(r.Article.Title, width-6))
	}

	meta := "  " + itemCategoryStyle.Render(r.Article.Category) +
		" " + itemMetaStyle.Render("· "+string(r.Article.Difficulty)+" · "+r.Article.ReadTime)
	if r.Score > 0 {
		meta += " " + itemMetaStyle.Render(fmt.Sprintf("· score %d", r.Score))
	}

	return mark + title + "\n  " + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(results []search.Result, isBookmarked func(string) bool, cursor, height, width int) string {
	if len(results) == 0 {
		return centerText("No matching articles", width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(results) {
		end = len(results)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(results[i], i == cursor, isBookmarked(results[i].Article.ID), width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func centerText(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
