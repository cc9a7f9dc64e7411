package tui

import (
	"context"
	"image"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/pagination"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

type screen int

const (
	screenHome screen = iota
	screenDiary
	screenEditPage
	screenCapsules
	screenCapsuleDetail
	screenNewDiary
	screenNewCapsule
)

const (
	// maxLayoutSteps bounds one layout run of a page.
	maxLayoutSteps = 256
	statusTTL      = 2 * time.Second

	minPaperWidth  = 20
	minPaperHeight = 5
)

type layoutRun struct {
	gen    int
	pageID string
	active bool
	steps  int
}

type mainLoopModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter
	user    models.User
	logger  *logger.Logger

	screen        screen
	width, height int
	loading       bool
	status        string
	overlay       *errorOverlayModel
	confirm       *confirmModel

	home     viewstate.DiaryListState
	position int

	diaryID string
	diary   viewstate.DiaryState
	pager   int
	layout  layoutRun
	runs    int
	laidOut map[string]bool
	// bitmaps holds one entry per image already fetched; nil marks a
	// failed download so it is not retried while the diary is open
	bitmaps map[string]image.Image

	editor     textarea.Model
	editPageID string
	saving     bool

	capsules      viewstate.CapsuleState
	capsuleTab    models.CapsuleTab
	capsuleIdx    int
	openedCapsule models.TimeCapsule

	diaryForm   formFields
	capsuleForm formFields
	formErr     string

	logout bool
}

func newMainLoopModel(ctx context.Context, serverAdapter adapter.ServerAdapter, user models.User, log *logger.Logger) mainLoopModel {
	return mainLoopModel{
		ctx:        ctx,
		adapter:    serverAdapter,
		user:       user,
		logger:     log,
		screen:     screenHome,
		loading:    true,
		laidOut:    make(map[string]bool),
		bitmaps:    make(map[string]image.Image),
		capsuleTab: models.CapsuleTabScheduled,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadHome()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg)
	case homeLoadedMsg:
		return m.homeLoaded(msg)
	case diaryLoadedMsg:
		return m.diaryLoaded(msg)
	case imagesLoadedMsg:
		return m.imagesLoaded(msg)
	case renderMsg:
		return m.rendered(msg)
	case pageSavedMsg:
		return m.pageSaved(msg)
	case diaryCreatedMsg:
		return m.diaryCreated(msg)
	case diaryDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.loading = true
		flash := m.flash("Дневник удалён")
		return m, tea.Batch(m.cmdLoadHome(), flash)
	case capsulesLoadedMsg:
		return m.capsulesLoaded(msg)
	case capsuleCreatedMsg:
		return m.capsuleCreated(msg)
	case capsuleOpenedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.openedCapsule = msg.capsule
		m.screen = screenCapsuleDetail
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		cmd := m.flash("Скопировано")
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToInputs(msg)
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			return m, m.cmdDeleteCurrentDiary()
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirm = nil
		}
		return m, nil
	}

	switch m.screen {
	case screenHome:
		return m.updateHome(msg)
	case screenDiary:
		return m.updateDiary(msg)
	case screenEditPage:
		return m.updateEditor(msg)
	case screenCapsules:
		return m.updateCapsules(msg)
	case screenCapsuleDetail:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
			m.screen = screenCapsules
		}
		return m, nil
	case screenNewDiary:
		return m.updateDiaryForm(msg)
	case screenNewCapsule:
		return m.updateCapsuleForm(msg)
	}

	return m, nil
}

// forwardToInputs delivers non-key messages such as cursor blinks to the
// widget of the active screen.
func (m mainLoopModel) forwardToInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenEditPage:
		m.editor, cmd = m.editor.Update(msg)
	case screenNewDiary:
		cmd = m.diaryForm.update(msg)
	case screenNewCapsule:
		cmd = m.capsuleForm.update(msg)
	}
	return m, cmd
}

func (m mainLoopModel) View() string {
	var body string
	switch m.screen {
	case screenHome:
		body = m.viewHome()
	case screenDiary:
		body = m.viewDiary()
	case screenEditPage:
		body = m.viewEditor()
	case screenCapsules:
		body = m.viewCapsules()
	case screenCapsuleDetail:
		body = m.viewCapsuleDetail()
	case screenNewDiary:
		body = m.viewDiaryForm()
	case screenNewCapsule:
		body = m.viewCapsuleForm()
	}

	if m.overlay != nil {
		body += "\n\n" + m.overlay.View()
	}
	if m.confirm != nil {
		body += "\n\n" + m.confirm.View()
	}
	if m.status != "" {
		body += "\n  " + statusStyle.Render(m.status)
	}
	return appStyle.Render(body)
}

// fail shows err in the error overlay and stops any layout run.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.loading = false
	m.saving = false
	m.layout = layoutRun{}
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
	m.logger.Debug().Err(err).Msg("tui operation failed")
	return m, nil
}

func (m *mainLoopModel) flash(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m mainLoopModel) resize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	changed := m.width != 0 && (m.width != msg.Width || m.height != msg.Height)
	m.width, m.height = msg.Width, msg.Height
	if m.screen == screenEditPage {
		m.editor.SetWidth(m.paperWidth())
		m.editor.SetHeight(m.paperHeight())
	}

	if m.screen != screenDiary || len(m.diary.Pages) == 0 {
		if changed {
			clear(m.laidOut)
		}
		return m, nil
	}

	spread, ok := m.diary.PagePosition()
	if !ok {
		return m, nil
	}
	if !changed {
		cmd := m.startLayout(spread.PageID)
		return m, cmd
	}

	// Every sub-page was measured for the old size.
	clear(m.laidOut)
	m.beginLayout(spread.PageID)
	return m, m.cmdResetLayout(spread.PageID, true)
}

func (m mainLoopModel) paperWidth() int {
	return max(m.width-8, minPaperWidth)
}

func (m mainLoopModel) paperHeight() int {
	return max(m.height-12, minPaperHeight)
}

// measurer lays text out exactly as the diary screen renders it.
func (m mainLoopModel) measurer() pagination.MonospaceMeasurer {
	return pagination.MonospaceMeasurer{Width: m.paperWidth(), Height: m.paperHeight()}
}
