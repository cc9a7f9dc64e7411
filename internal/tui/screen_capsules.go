package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-diary/models"
)

const deadlineLayout = "02.01.2006 15:04"

var capsuleTabs = []models.CapsuleTab{
	models.CapsuleTabScheduled,
	models.CapsuleTabSent,
	models.CapsuleTabReceived,
}

var capsuleTabTitles = map[models.CapsuleTab]string{
	models.CapsuleTabScheduled: "Запланированные",
	models.CapsuleTabSent:      "Отправленные",
	models.CapsuleTabReceived:  "Полученные",
}

const (
	capsuleTitle = iota
	capsuleContent
	capsuleDeadline
	capsuleEmails
	capsulePhones
)

func (m mainLoopModel) openCapsules(tab models.CapsuleTab) (tea.Model, tea.Cmd) {
	m.screen = screenCapsules
	m.capsuleTab = tab
	m.capsuleIdx = 0
	m.loading = true
	return m, m.cmdLoadCapsules(tab)
}

func (m mainLoopModel) capsulesLoaded(msg capsulesLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	data, ok := msg.state.Data()
	if !ok {
		return m.fail(errors.New(msg.state.Err()))
	}
	if data.ActiveTab != m.capsuleTab {
		return m, nil
	}
	m.capsules = data
	m.capsuleIdx = min(m.capsuleIdx, max(len(data.Visible())-1, 0))
	return m, nil
}

func (m mainLoopModel) updateCapsules(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.capsules.Visible()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
		return m, nil
	case key.Matches(msg, keys.tab):
		return m.openCapsules(shiftTab(m.capsuleTab, 1))
	case key.Matches(msg, keys.backtab):
		return m.openCapsules(shiftTab(m.capsuleTab, -1))
	case key.Matches(msg, keys.up):
		if m.capsuleIdx > 0 {
			m.capsuleIdx--
		}
	case key.Matches(msg, keys.down):
		if m.capsuleIdx < len(visible)-1 {
			m.capsuleIdx++
		}
	case key.Matches(msg, keys.enter):
		if m.capsuleIdx >= len(visible) {
			return m, nil
		}
		return m, m.cmdOpenCapsule(visible[m.capsuleIdx].ID)
	case key.Matches(msg, keys.newItem):
		m.openCapsuleForm()
		return m, nil
	}
	return m, nil
}

func shiftTab(tab models.CapsuleTab, step int) models.CapsuleTab {
	for i, t := range capsuleTabs {
		if t == tab {
			n := len(capsuleTabs)
			return capsuleTabs[((i+step)%n+n)%n]
		}
	}
	return models.CapsuleTabScheduled
}

func (m mainLoopModel) viewCapsules() string {
	var b strings.Builder

	tabs := make([]string, 0, len(capsuleTabs))
	for _, t := range capsuleTabs {
		if t == m.capsuleTab {
			tabs = append(tabs, activeTabStyle.Render(capsuleTabTitles[t]))
		} else {
			tabs = append(tabs, capsuleTabTitles[t])
		}
	}
	b.WriteString(strings.Join(tabs, "  │  "))
	b.WriteString("\n\n")

	visible := m.capsules.Visible()
	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(visible) == 0:
		b.WriteString("Капсул нет")
	default:
		for i, c := range visible {
			cursor := "  "
			if i == m.capsuleIdx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(fitText(c.Title, 40))
			b.WriteString(" · ")
			b.WriteString(m.deadlineLabel(c))
			b.WriteString("\n")
		}
	}

	return renderPage("КАПСУЛЫ ВРЕМЕНИ", strings.TrimRight(b.String(), "\n"),
		"tab: вкладка │ ↑/↓: навигация │ enter: открыть │ n: новая │ esc: назад")
}

func (m mainLoopModel) deadlineLabel(c models.TimeCapsule) string {
	deadline := c.Deadline.Local().Format(deadlineLayout)
	if c.IsOpen(m.capsules.Now) {
		return "открыта " + deadline
	}
	return "откроется " + deadline
}

func (m mainLoopModel) viewCapsuleDetail() string {
	c := m.openedCapsule
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("создана %s · %s",
		c.CreatedAt.Local().Format(deadlineLayout), m.deadlineLabel(c))))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(m.measurer().Wrap(c.Content), "\n"))
	if len(c.ReceiverEmails) > 0 {
		b.WriteString("\n\nПолучатели: ")
		b.WriteString(strings.Join(c.ReceiverEmails, ", "))
	}
	return renderPage("КАПСУЛА", b.String(), "esc: назад")
}

func (m *mainLoopModel) openCapsuleForm() {
	deadline := newInput(deadlineLayout, 16, false)
	deadline.SetValue(time.Now().AddDate(1, 0, 0).Format(deadlineLayout))

	m.capsuleForm = newFormFields(
		[]string{"Название", "Текст", "Открыть", "E-mail получателей", "Телефоны"},
		newInput("title", 256, false),
		newInput("message to the future", 0, false),
		deadline,
		newInput("a@example.com, b@example.com", 0, false),
		newInput("+15551234567", 0, false),
	)
	m.formErr = ""
	m.screen = screenNewCapsule
}

func (m mainLoopModel) updateCapsuleForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenCapsules
		return m, nil
	case key.Matches(msg, keys.tab):
		m.capsuleForm.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.capsuleForm.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		req, err := capsuleRequest(&m.capsuleForm, time.Now())
		if err != "" {
			m.formErr = err
			return m, nil
		}
		m.formErr = ""
		m.saving = true
		return m, m.cmdCreateCapsule(req)
	}
	return m, m.capsuleForm.update(msg)
}

// capsuleRequest reads the capsule form. The deadline is entered in local
// time and must lie in the future.
func capsuleRequest(form *formFields, now time.Time) (models.CapsuleRequest, string) {
	req := models.CapsuleRequest{
		Title:          form.value(capsuleTitle),
		Content:        form.value(capsuleContent),
		ReceiverEmails: splitList(form.value(capsuleEmails)),
		ReceiverPhones: splitList(form.value(capsulePhones)),
	}
	if req.Title == "" || req.Content == "" {
		return req, "Нужны название и текст"
	}

	deadline, err := time.ParseInLocation(deadlineLayout, form.value(capsuleDeadline), time.Local)
	if err != nil {
		return req, "Дата открытия в формате ДД.ММ.ГГГГ ЧЧ:ММ"
	}
	if !deadline.After(now) {
		return req, "Дата открытия должна быть в будущем"
	}
	req.Deadline = deadline
	return req, ""
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (m mainLoopModel) capsuleCreated(msg capsuleCreatedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	model, cmd := m.openCapsules(models.CapsuleTabScheduled)
	next := model.(mainLoopModel)
	flash := next.flash("Капсула запечатана")
	return next, tea.Batch(cmd, flash)
}

func (m mainLoopModel) viewCapsuleForm() string {
	var b strings.Builder
	b.WriteString(m.capsuleForm.view())
	if m.saving {
		b.WriteString("\n[Запечатать...]\n")
	} else {
		b.WriteString("\n[Запечатать]\n")
	}
	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.formErr))
	}
	return renderPage("НОВАЯ КАПСУЛА", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: запечатать")
}
