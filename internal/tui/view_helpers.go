package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var uiDivider = strings.Repeat("─", 54)

// renderPage frames data between dividers under title. Each screen passes
// its own hot keys; the quit hint is always shown last.
func renderPage(title, data, hotKeys string) string {
	body := "-"
	if strings.TrimSpace(data) != "" {
		body = data
	}

	footer := []string{}
	if strings.TrimSpace(hotKeys) != "" {
		footer = append(footer, helpStyle.Render(hotKeys))
	}
	footer = append(footer, helpStyle.Render("ctrl+c: выход"))

	indented := lipgloss.NewStyle().PaddingLeft(2)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		indented.Render(uiDivider),
		"",
		indented.Render(body),
		"",
		indented.Render(uiDivider),
		indented.Render(strings.Join(footer, "\n")),
	)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText truncates v to limit terminal cells.
func fitText(v string, limit int) string {
	switch {
	case limit <= 0 || runewidth.StringWidth(v) <= limit:
		return v
	case limit <= 3:
		return runewidth.Truncate(v, limit, "")
	}
	return runewidth.Truncate(v, limit, "...")
}
