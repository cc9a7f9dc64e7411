package tui

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

// pagerLatest opens a diary on its latest page.
const pagerLatest = -1

func (m mainLoopModel) openDiary(diaryID string) (tea.Model, tea.Cmd) {
	m.screen = screenDiary
	m.diaryID = diaryID
	m.diary = viewstate.DiaryState{}
	m.pager = pagerLatest
	m.layout = layoutRun{}
	m.loading = true
	clear(m.laidOut)
	clear(m.bitmaps)
	return m, m.cmdLoadDiary()
}

func (m mainLoopModel) diaryLoaded(msg diaryLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	data, ok := msg.state.Data()
	if !ok {
		return m.fail(errors.New(msg.state.Err()))
	}
	if data.Diary.ID != m.diaryID {
		return m, nil
	}

	m.diary = data
	spreads := data.Spreads()
	if len(spreads) == 0 {
		m.pager = 0
		m.diary.PagerIndex = 0
		return m, nil
	}
	if m.pager == pagerLatest {
		m.pager = latestSpread(data, spreads)
	}
	m.pager = min(m.pager, len(spreads)-1)
	m.diary.PagerIndex = m.pager

	cmd := m.startLayout(spreads[m.pager].PageID)
	return m, tea.Batch(cmd, m.loadSpreadImages(spreads[m.pager]))
}

// loadSpreadImages fetches the bitmaps of the spread that were not fetched
// yet. It returns nil when there is nothing to fetch.
func (m mainLoopModel) loadSpreadImages(spread viewstate.Spread) tea.Cmd {
	var missing []models.DiaryImage
	for _, img := range m.diary.ImagesOf(spread.SubPageID) {
		if _, fetched := m.bitmaps[img.ID]; !fetched && img.URL != "" {
			missing = append(missing, img)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return m.cmdLoadImages(missing)
}

func (m mainLoopModel) imagesLoaded(msg imagesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.diaryID != m.diaryID {
		return m, nil
	}
	for _, img := range msg.images {
		m.bitmaps[img.ID] = img.Bitmap
	}
	return m, nil
}

// imageLabel describes an image by its decoded size. Until the download
// finishes only a placeholder is shown.
func imageLabel(img models.DiaryImage, bitmaps map[string]image.Image) string {
	bitmap, fetched := bitmaps[img.ID]
	switch {
	case !fetched:
		return "[img ...]"
	case bitmap == nil:
		return "[img не загружено]"
	}
	size := bitmap.Bounds().Size()
	return fmt.Sprintf("[img %d×%d]", size.X, size.Y)
}

// latestSpread returns the first spread of the latest page.
func latestSpread(state viewstate.DiaryState, spreads []viewstate.Spread) int {
	page, ok := state.LatestPage()
	if !ok {
		return 0
	}
	for i, s := range spreads {
		if s.PageID == page.ID {
			return i
		}
	}
	return 0
}

func (m *mainLoopModel) beginLayout(pageID string) {
	m.runs++
	m.layout = layoutRun{gen: m.runs, pageID: pageID, active: true}
}

// startLayout runs the layout loop of pageID unless it already ran for the
// current terminal size.
func (m *mainLoopModel) startLayout(pageID string) tea.Cmd {
	if m.width == 0 || m.laidOut[pageID] || m.layout.active {
		return nil
	}
	m.beginLayout(pageID)
	return m.cmdNextRender(pageID)
}

// rendered measures the text the server asked for and reports the overflow
// offset, until the page settles.
func (m mainLoopModel) rendered(msg renderMsg) (tea.Model, tea.Cmd) {
	if !m.layout.active || msg.gen != m.layout.gen {
		return m, nil
	}

	if msg.err != nil {
		if !errors.Is(msg.err, adapter.ErrConflict) {
			return m.fail(msg.err)
		}
		// The sub-page moved on since it was rendered; ask for the current one.
		m.layout.steps++
		if m.layout.steps > maxLayoutSteps {
			return m.fail(errLayoutDiverged)
		}
		return m, m.cmdNextRender(msg.pageID)
	}

	if msg.render.Settled {
		m.layout = layoutRun{}
		m.laidOut[msg.pageID] = true
		m.loading = true
		return m, m.cmdLoadDiary()
	}

	m.layout.steps++
	if m.layout.steps > maxLayoutSteps {
		return m.fail(errLayoutDiverged)
	}

	report := models.LayoutReport{
		SubPageID: msg.render.SubPageID,
		Iteration: msg.render.Iteration,
		Offset:    m.measurer().Measure(msg.render.Text),
	}
	return m, m.cmdReportLayout(msg.pageID, report)
}

func (m mainLoopModel) updateDiary(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	spreads := m.diary.Spreads()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.screen = screenHome
		m.layout = layoutRun{}
		m.loading = true
		return m, m.cmdLoadHome()
	case key.Matches(msg, keys.left):
		if m.pager > 0 {
			return m.turnTo(m.pager-1, spreads)
		}
	case key.Matches(msg, keys.right):
		if m.pager < len(spreads)-1 {
			return m.turnTo(m.pager+1, spreads)
		}
	case key.Matches(msg, keys.latestPage):
		if len(spreads) > 0 {
			return m.turnTo(latestSpread(m.diary, spreads), spreads)
		}
	case key.Matches(msg, keys.edit):
		spread, ok := m.diary.PagePosition()
		if !ok {
			return m, nil
		}
		m.openEditor(m.diary.Pages[spread.PageID])
		return m, textarea.Blink
	case key.Matches(msg, keys.copy):
		spread, ok := m.diary.PagePosition()
		if !ok || spread.Text == "" {
			cmd := m.flash("Нечего копировать")
			return m, cmd
		}
		return m, cmdCopy(spread.Text)
	case key.Matches(msg, keys.relayout):
		spread, ok := m.diary.PagePosition()
		if !ok || m.layout.active {
			return m, nil
		}
		delete(m.laidOut, spread.PageID)
		m.beginLayout(spread.PageID)
		return m, m.cmdResetLayout(spread.PageID, false)
	}
	return m, nil
}

func (m mainLoopModel) turnTo(pager int, spreads []viewstate.Spread) (tea.Model, tea.Cmd) {
	m.pager = pager
	m.diary.PagerIndex = pager
	cmd := m.startLayout(spreads[pager].PageID)
	return m, tea.Batch(cmd, m.loadSpreadImages(spreads[pager]))
}

func (m mainLoopModel) viewDiary() string {
	title := "ДНЕВНИК"
	if m.diary.Diary.Title != "" {
		title += " · " + fitText(m.diary.Diary.Title, 40)
	}

	var b strings.Builder
	spreads := m.diary.Spreads()
	spread, ok := m.diary.PagePosition()
	switch {
	case !ok && m.loading:
		b.WriteString("Загрузка...")
	case !ok:
		b.WriteString("В дневнике нет страниц")
	default:
		page := m.diary.Pages[spread.PageID]
		header := fmt.Sprintf("Страница %d · %d / %d", spread.PageNumber, m.pager+1, len(spreads))
		if !page.CreatedAt.IsZero() {
			header += " · " + page.CreatedAt.Local().Format("02.01.2006")
		}
		b.WriteString(header)
		b.WriteString("\n")

		measurer := m.measurer()
		lines := measurer.Wrap(spread.Text)
		for len(lines) < measurer.Height {
			lines = append(lines, "")
		}
		b.WriteString(paperStyle.Render(strings.Join(lines, "\n")))

		for _, img := range m.diary.ImagesOf(spread.SubPageID) {
			label := imageLabel(img, m.bitmaps)
			b.WriteString("\n" + label + " ")
			b.WriteString(fitText(img.URL, m.paperWidth()-runewidth.StringWidth(label)-1))
		}
	}

	if m.layout.active {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Разметка страницы..."))
	}

	return renderPage(title, b.String(),
		"←/→: листать │ G: последняя │ e: писать │ c: копировать │ r: переразметить │ esc: к дневникам")
}

func (m *mainLoopModel) openEditor(page models.DiaryPage) {
	m.editor = textarea.New()
	m.editor.Placeholder = "Что произошло сегодня?"
	m.editor.ShowLineNumbers = false
	m.editor.CharLimit = 0
	m.editor.SetWidth(m.paperWidth())
	m.editor.SetHeight(m.paperHeight())
	m.editor.SetValue(page.Content)
	m.editor.Focus()
	m.editPageID = page.ID
	m.screen = screenEditPage
}

func (m mainLoopModel) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenDiary
		return m, nil
	case key.Matches(msg, keys.save):
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, m.cmdUpdatePage(m.editPageID, m.editor.Value())
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m mainLoopModel) pageSaved(msg pageSavedMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		return m.fail(msg.err)
	}
	m.screen = screenDiary
	delete(m.laidOut, msg.page.ID)
	m.loading = true
	flash := m.flash("Сохранено")
	return m, tea.Batch(m.cmdLoadDiary(), flash)
}

func (m mainLoopModel) viewEditor() string {
	var b strings.Builder
	b.WriteString(m.editor.View())
	if m.saving {
		b.WriteString("\n\nСохранение...")
	}
	return renderPage("ЗАПИСЬ", b.String(), "ctrl+s: сохранить │ esc: отмена")
}
