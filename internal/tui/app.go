package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-diary/models"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// signInModel hosts the menu, login and register pages. It switches pages
// on [NavigateTo] and quits once a [LoginResult] carries a user.
type signInModel struct {
	pages  map[string]tea.Model
	active tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	user        models.User
	interrupted bool
}

func newSignInModel(pages map[string]tea.Model, start string, buildInfo models.AppBuildInfo) signInModel {
	return signInModel{
		pages:     pages,
		active:    pages[start],
		buildInfo: buildInfo,
	}
}

func (s signInModel) Init() tea.Cmd {
	if s.active == nil {
		return nil
	}
	return s.active.Init()
}

func (s signInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := s.handleKey(msg); handled {
			return s, cmd
		}
	case NavigateTo:
		return s.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			s.user = msg.User
			return s, tea.Quit
		}
	}

	if s.active == nil {
		return s, nil
	}
	var cmd tea.Cmd
	s.active, cmd = s.active.Update(msg)
	return s, cmd
}

// handleKey consumes keys that belong to the host rather than the page.
// The build info window swallows every key except the ones closing it.
func (s *signInModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.interrupt):
		s.interrupted = true
		return true, tea.Quit
	case s.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.buildInfo) {
			s.showBuildInfo = false
		}
		return true, nil
	case key.Matches(msg, keys.buildInfo) && s.onMenu():
		s.showBuildInfo = true
		return true, nil
	}
	return false, nil
}

func (s signInModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := s.pages[nav.Page]
	if !ok {
		return s, nil
	}
	s.active = next
	s.showBuildInfo = false

	if nav.Payload != nil {
		payload := nav.Payload
		return s, func() tea.Msg { return payload }
	}
	return s, s.active.Init()
}

func (s signInModel) View() string {
	switch {
	case s.showBuildInfo:
		return renderBuildInfoWindow(s.buildInfo)
	case s.active == nil:
		return renderPage("TimeDiary", "", "")
	}
	return s.active.View()
}

func (s signInModel) onMenu() bool {
	_, ok := s.active.(*MenuModel)
	return ok
}
