// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
	"github.com/MKhiriev/go-time-diary/models"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the e-mail and password sign-in screen. It can also ask the
// server to send a password reset mail for the entered e-mail.
type LoginModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	form       formFields
	submitting bool
	errMsg     string
	status     string
}

func NewLoginModel(ctx context.Context, serverAdapter adapter.ServerAdapter) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		adapter: serverAdapter,
		form: newFormFields(
			[]string{"E-mail", "Пароль"},
			newInput("email", 254, false),
			newInput("password", 256, true),
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if errors.Is(msg.Err, adapter.ErrUnauthorized) {
			m.errMsg = "Неверный e-mail или пароль"
		} else if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	case resetRequestedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Письмо для сброса пароля отправлено на " + msg.email
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg, m.status = "", ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.resetPass):
			if m.submitting {
				return m, nil
			}
			email := m.form.value(loginEmail)
			if email == "" {
				m.errMsg = "Введите e-mail для сброса пароля"
				return m, nil
			}
			m.errMsg, m.status = "", ""
			m.submitting = true
			return m, m.cmdRequestReset(email)
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := m.form.value(loginEmail)
			pass := m.form.rawValue(loginPassword)
			if email == "" || pass == "" {
				m.errMsg = "E-mail и пароль обязательны"
				return m, nil
			}

			m.errMsg, m.status = "", ""
			m.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"),
		"esc: назад │ tab: след. поле │ enter: подтвердить │ ctrl+r: сбросить пароль")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		user, err := serverAdapter.Login(ctx, models.LoginRequest{Email: email, Password: pass})
		return LoginResult{User: user, Err: err}
	}
}

func (m *LoginModel) cmdRequestReset(email string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter

	return func() tea.Msg {
		return resetRequestedMsg{email: email, err: serverAdapter.RequestPasswordReset(ctx, email)}
	}
}
