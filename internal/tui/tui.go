// Package tui is the terminal client: sign-in screens, the diary carousel,
// the diary reader and the time capsule screen, built on Bubble Tea.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/models"
)

type TUI struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if serverAdapter == nil {
		return nil, ErrNoAdapter
	}
	return &TUI{adapter: serverAdapter, buildInfo: buildInfo, logger: log}, nil
}

// LoginFlow runs the sign-in screens until the user is signed in or quits.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(ctx, t.adapter),
		pageLogin:    NewLoginModel(ctx, t.adapter),
		pageRegister: NewRegisterModel(ctx, t.adapter),
	}

	signIn := newSignInModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(signIn, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.User{}, err
	}

	result, ok := finalModel.(signInModel)
	if !ok {
		return models.User{}, errUnexpectedModel
	}
	if result.interrupted {
		return models.User{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.user.ID).Bool("anonymous", result.user.Anonymous).Msg("signed in")
	return result.user, nil
}

// MainLoop runs the diary screens for user. It reports whether the user
// asked to sign out.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.adapter, user, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, errUnexpectedModel
	}
	return result.logout, nil
}
