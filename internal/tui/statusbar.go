package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(resultCount, bookmarkCount int, elapsed string, width int, searching bool) string {
	left := fmt.Sprintf(" %d articles", resultCount)
	if elapsed != "" {
		left += " · " + elapsed
	}
	if bookmarkCount > 0 {
		left += fmt.Sprintf(" · %d saved", bookmarkCount)
	}

	right := " / search  b save  t trending  o open  q quit "
	if searching {
		right = " esc cancel  enter search "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right
	return statusBarStyle.Width(width).Render(bar)
}
