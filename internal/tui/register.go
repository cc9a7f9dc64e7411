package tui

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
	"github.com/MKhiriev/go-time-diary/models"
)

const (
	registerEmail = iota
	registerUsername
	registerName
	registerPassword
	registerRepeat
)

const minPasswordLength = 8

// RegisterModel creates an account and signs it in on success.
type RegisterModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	form       formFields
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *RegisterModel {
	return &RegisterModel{
		ctx:     ctx,
		adapter: serverAdapter,
		form: newFormFields(
			[]string{"E-mail", "Логин", "Имя", "Пароль", "Повтор пароля"},
			newInput("email", 254, false),
			newInput("username", 64, false),
			newInput("name", 128, false),
			newInput("password", 256, true),
			newInput("repeat password", 256, true),
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			m.form.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			req, errMsg := m.request()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(req)
		}
	}

	return m, m.form.update(msg)
}

// request validates the form locally; the server validates it again.
func (m *RegisterModel) request() (models.RegisterRequest, string) {
	req := models.RegisterRequest{
		Email:    m.form.value(registerEmail),
		Username: m.form.value(registerUsername),
		Name:     m.form.value(registerName),
		Password: m.form.rawValue(registerPassword),
	}

	switch {
	case req.Email == "" || req.Username == "" || req.Password == "":
		return req, "E-mail, логин и пароль обязательны"
	case utf8.RuneCountInString(req.Password) < minPasswordLength:
		return req, "Пароль должен быть не короче 8 символов"
	case req.Password != m.form.rawValue(registerRepeat):
		return req, "Пароли не совпадают"
	}
	return req, ""
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdRegister(req models.RegisterRequest) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		user, err := serverAdapter.Register(ctx, req)
		return LoginResult{User: user, Err: err}
	}
}
