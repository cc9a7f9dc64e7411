package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

// NavigateTo switches the active page of [signInModel]. Payload, when set, is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the sign-in flow when Err is nil.
type LoginResult struct {
	User models.User
	Err  error
}

type resetRequestedMsg struct {
	email string
	err   error
}

type homeLoadedMsg struct {
	state viewstate.State[viewstate.DiaryListState]
	err   error
}

type diaryLoadedMsg struct {
	state viewstate.State[viewstate.DiaryState]
	err   error
}

type imagesLoadedMsg struct {
	diaryID string
	images  []models.DiaryImage
}

type capsulesLoadedMsg struct {
	state viewstate.State[viewstate.CapsuleState]
	err   error
}

// renderMsg carries the next step of the layout loop of pageID.
type renderMsg struct {
	gen    int
	pageID string
	render models.RenderRequest
	err    error
}

type pageSavedMsg struct {
	page models.DiaryPage
	err  error
}

type diaryCreatedMsg struct {
	diary models.Diary
	err   error
}

type diaryDeletedMsg struct {
	err error
}

type capsuleCreatedMsg struct {
	err error
}

type capsuleOpenedMsg struct {
	capsule models.TimeCapsule
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
