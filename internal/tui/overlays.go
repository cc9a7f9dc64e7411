package tui

import "strings"

// confirmModel asks before deleting the named item.
type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	return renderOverlay("Удалить «"+m.message+"»?", "", "y да    n нет")
}

// errorOverlayModel blocks the screen until the error is acknowledged.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return renderOverlay("Ошибка", m.message, "enter / esc закрыть")
}

func renderOverlay(title, body, hint string) string {
	parts := []string{title}
	if body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, helpStyle.Render(hint))
	return overlayBoxStyle.Render(strings.Join(parts, "\n\n"))
}
