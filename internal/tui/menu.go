package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
)

type menuItem struct {
	title string
	hint  string
	// page is empty for the anonymous entry, which signs in directly.
	page string
}

var menuItems = []menuItem{
	{title: "Войти", hint: "e-mail и пароль", page: pageLogin},
	{title: "Зарегистрироваться", hint: "новый аккаунт", page: pageRegister},
	{title: "Анонимный вход", hint: "без регистрации"},
}

// MenuModel is the first screen of the sign-in flow.
type MenuModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	cursor     int
	submitting bool
	errMsg     string
}

func NewMenuModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *MenuModel {
	return &MenuModel{ctx: ctx, adapter: serverAdapter}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, keys.down):
			m.cursor = min(m.cursor+1, len(menuItems)-1)
		case key.Matches(msg, keys.enter):
			return m, m.choose()
		}
	}
	return m, nil
}

func (m *MenuModel) choose() tea.Cmd {
	m.errMsg = ""
	if page := menuItems[m.cursor].page; page != "" {
		return func() tea.Msg { return NavigateTo{Page: page} }
	}

	m.submitting = true
	ctx, serverAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		user, err := serverAdapter.SignInAnonymously(ctx)
		return LoginResult{User: user, Err: err}
	}
}

func (m *MenuModel) View() string {
	titleWidth := 0
	for _, item := range menuItems {
		titleWidth = max(titleWidth, runewidth.StringWidth(item.title))
	}

	lines := make([]string, 0, len(menuItems)+2)
	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		lines = append(lines, cursor+runewidth.FillRight(item.title, titleWidth)+"  "+helpStyle.Render(item.hint))
	}

	if m.submitting {
		lines = append(lines, "", "Вход...")
	}
	if m.errMsg != "" {
		lines = append(lines, "", errorStyle.Render("Ошибка: "+m.errMsg))
	}

	return renderPage("ДНЕВНИК", strings.Join(lines, "\n"), "enter: выбрать │ ↑/↓: навигация │ v: версия")
}
