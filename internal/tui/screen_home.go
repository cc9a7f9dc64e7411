package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) homeLoaded(msg homeLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	data, ok := msg.state.Data()
	if !ok {
		return m.fail(errors.New(msg.state.Err()))
	}
	m.home = data
	m.home.PagerPosition = m.position
	return m, nil
}

func (m mainLoopModel) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(msg, keys.left):
		m.position--
		m.home.PagerPosition = m.position
	case key.Matches(msg, keys.right):
		m.position++
		m.home.PagerPosition = m.position
	case key.Matches(msg, keys.enter):
		diary, ok := m.home.Current()
		if !ok {
			cmd := m.flash("Нет дневников")
			return m, cmd
		}
		return m.openDiary(diary.ID)
	case key.Matches(msg, keys.newItem):
		m.openDiaryForm()
		return m, nil
	case key.Matches(msg, keys.delete):
		diary, ok := m.home.Current()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{message: diary.Title}
	case key.Matches(msg, keys.capsules):
		return m.openCapsules(m.capsuleTab)
	}
	return m, nil
}

func (m mainLoopModel) viewHome() string {
	var b strings.Builder

	if m.user.Anonymous {
		b.WriteString(helpStyle.Render("Анонимный вход: привяжите e-mail, чтобы не потерять записи"))
		b.WriteString("\n\n")
	}

	diary, ok := m.home.Current()
	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case !ok:
		b.WriteString("Дневников пока нет. Нажмите n, чтобы создать первый.")
	default:
		idx := m.home.CurrentIndex()
		b.WriteString(fmt.Sprintf("◀  %d / %d  ▶\n\n", idx+1, len(m.home.Order)))

		var card strings.Builder
		card.WriteString(titleStyle.Render(fitText(diary.Title, m.paperWidth())))
		card.WriteString("\n")
		card.WriteString(fitText(valueOrDash(diary.Description), m.paperWidth()))
		card.WriteString("\n\n")
		card.WriteString(fmt.Sprintf("Страниц: %d", len(diary.PageIDs)))
		if cover, ok := m.home.CoverOf(diary.ID); ok {
			card.WriteString("\nОбложка: ")
			card.WriteString(fitText(cover.URL, m.paperWidth()-9))
		}
		b.WriteString(paperStyle.Render(card.String()))
	}

	title := "МОИ ДНЕВНИКИ"
	if name := m.user.Username; name != "" {
		title += " · " + name
	}
	return renderPage(title, b.String(),
		"←/→: листать │ enter: открыть │ n: новый │ d: удалить │ t: капсулы │ o: выйти из аккаунта │ q: выход")
}

func (m *mainLoopModel) openDiaryForm() {
	m.diaryForm = newFormFields(
		[]string{"Название", "Описание"},
		newInput("title", 256, false),
		newInput("description", 2048, false),
	)
	m.formErr = ""
	m.screen = screenNewDiary
}

func (m mainLoopModel) updateDiaryForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
		return m, nil
	case key.Matches(msg, keys.tab):
		m.diaryForm.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.diaryForm.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.saving {
			return m, nil
		}
		title := m.diaryForm.value(0)
		if title == "" {
			m.formErr = "Нужно название"
			return m, nil
		}
		m.formErr = ""
		m.saving = true
		return m, m.cmdCreateDiary(title, m.diaryForm.value(1))
	}
	return m, m.diaryForm.update(msg)
}

func (m mainLoopModel) diaryCreated(msg diaryCreatedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	m.screen = screenHome
	// The new diary is appended to the carousel.
	m.position = len(m.home.Order)
	m.loading = true
	flash := m.flash("Дневник \"" + msg.diary.Title + "\" создан")
	return m, tea.Batch(m.cmdLoadHome(), flash)
}

func (m mainLoopModel) viewDiaryForm() string {
	var b strings.Builder
	b.WriteString(m.diaryForm.view())
	if m.saving {
		b.WriteString("\n[Создать...]\n")
	} else {
		b.WriteString("\n[Создать]\n")
	}
	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.formErr))
	}
	return renderPage("НОВЫЙ ДНЕВНИК", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: создать")
}
