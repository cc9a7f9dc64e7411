package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/tui"
)

var ErrNoUI = errors.New("client ui is required")

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, log *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, tui.ErrNoAdapter
	}
	if ui == nil {
		return nil, ErrNoUI
	}
	return &App{adapter: serverAdapter, ui: ui, logger: log}, nil
}

// Run alternates between sign-in and the main screens until the user quits.
// Signing out drops the token and returns to sign-in.
func (a *App) Run(ctx context.Context) error {
	if version, err := a.adapter.ServerVersion(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("server version is unavailable")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to server")
	}

	for {
		user, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, user)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.adapter.SetToken("")
		a.logger.Info().Str("user_id", user.ID).Msg("signed out")
	}
}
