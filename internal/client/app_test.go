package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/mock"
	"github.com/MKhiriev/go-time-diary/internal/tui"
	"github.com/MKhiriev/go-time-diary/models"
)

// scriptedUI replays login results and main loop outcomes in order.
type scriptedUI struct {
	logins  []error
	logouts []bool
	loopErr error

	loginCalls int
	loopCalls  int
}

func (u *scriptedUI) LoginFlow(context.Context) (models.User, error) {
	err := u.logins[u.loginCalls]
	u.loginCalls++
	return models.User{ID: "u1"}, err
}

func (u *scriptedUI) MainLoop(context.Context, models.User) (bool, error) {
	if u.loopErr != nil {
		return false, u.loopErr
	}
	logout := u.logouts[u.loopCalls]
	u.loopCalls++
	return logout, nil
}

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := NewApp(nil, &scriptedUI{}, logger.Nop())
	assert.ErrorIs(t, err, tui.ErrNoAdapter)

	_, err = NewApp(mock.NewMockServerAdapter(ctrl), nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name           string
		ui             *scriptedUI
		versionErr     error
		wantErr        error
		wantLogins     int
		wantTokenReset int
	}{
		{
			name:       "quit at sign-in",
			ui:         &scriptedUI{logins: []error{tui.ErrUserQuit}},
			wantLogins: 1,
		},
		{
			name:       "quit from main loop",
			ui:         &scriptedUI{logins: []error{nil}, logouts: []bool{false}},
			wantLogins: 1,
		},
		{
			name:           "sign out then quit",
			ui:             &scriptedUI{logins: []error{nil, tui.ErrUserQuit}, logouts: []bool{true}},
			versionErr:     boom,
			wantLogins:     2,
			wantTokenReset: 1,
		},
		{
			name:       "login failure",
			ui:         &scriptedUI{logins: []error{boom}},
			wantErr:    boom,
			wantLogins: 1,
		},
		{
			name:       "main loop failure",
			ui:         &scriptedUI{logins: []error{nil}, loopErr: boom},
			wantErr:    boom,
			wantLogins: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serverAdapter := mock.NewMockServerAdapter(ctrl)
			serverAdapter.EXPECT().ServerVersion(gomock.Any()).Return("1.0.0", tt.versionErr)
			serverAdapter.EXPECT().SetToken("").Times(tt.wantTokenReset)

			app, err := NewApp(serverAdapter, tt.ui, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantLogins, tt.ui.loginCalls)
		})
	}
}
