package tui

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-diary/internal/adapter"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/mock"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyCtrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// exec runs cmd synchronously. Of a batch only the first command runs, the
// rest are status timers.
func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		require.NotEmpty(t, batch)
		return exec(t, batch[0])
	}
	return msg
}

func step(t *testing.T, m mainLoopModel, msg tea.Msg) (mainLoopModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(mainLoopModel)
	require.True(t, ok)
	return model, cmd
}

func newTestMainLoop(t *testing.T) (mainLoopModel, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	m := newMainLoopModel(context.Background(), serverAdapter, models.User{ID: "u1", Username: "ann"}, logger.Nop())
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	return m, serverAdapter
}

func singlePageDiary(content string) viewstate.DiaryState {
	return viewstate.DiaryState{
		Diary: models.Diary{ID: "d1", Title: "Travel", PageIDs: []string{"p1"}},
		Pages: map[string]models.DiaryPage{
			"p1": {ID: "p1", DiaryID: "d1", PageNumber: 1, Content: content},
		},
		SubPages: map[string]models.DiarySubPage{},
		Images:   map[string]models.DiaryImage{},
	}
}

// ─────────────────────────────────────────────
// sign-in screens
// ─────────────────────────────────────────────

func TestMenuModel_AnonymousSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().SignInAnonymously(gomock.Any()).Return(models.User{ID: "anon", Anonymous: true}, nil)

	menu := NewMenuModel(context.Background(), serverAdapter)
	menu.Update(keyDown)
	menu.Update(keyDown)
	_, cmd := menu.Update(keyEnter)

	msg := exec(t, cmd)
	result, ok := msg.(LoginResult)
	require.True(t, ok)
	require.NoError(t, result.Err)

	root := newSignInModel(map[string]tea.Model{pageMenu: menu}, pageMenu, models.AppBuildInfo{})
	final, _ := root.Update(result)
	assert.Equal(t, "anon", final.(signInModel).user.ID)
	assert.False(t, final.(signInModel).interrupted)
}

func TestSignInModel_NavigationAndBuildInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	ctx := context.Background()

	root := newSignInModel(map[string]tea.Model{
		pageMenu:  NewMenuModel(ctx, serverAdapter),
		pageLogin: NewLoginModel(ctx, serverAdapter),
	}, pageMenu, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc"))

	next, _ := root.Update(runeKey('v'))
	assert.Contains(t, next.View(), "1.2.3")

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	next, _ = next.Update(NavigateTo{Page: pageLogin})
	assert.Contains(t, next.View(), "ВХОД")

	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(signInModel).interrupted)
	assert.NotNil(t, cmd)
}

func TestLoginModel_Submit(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		loginErr  error
		wantCall  bool
		wantError string
	}{
		{name: "missing fields", email: "", password: "", wantError: "E-mail и пароль обязательны"},
		{name: "success", email: "ann@example.com", password: "secret123", wantCall: true},
		{name: "wrong password", email: "ann@example.com", password: "nope", loginErr: adapter.ErrUnauthorized, wantCall: true, wantError: "Неверный e-mail или пароль"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			serverAdapter := mock.NewMockServerAdapter(ctrl)
			if tt.wantCall {
				serverAdapter.EXPECT().
					Login(gomock.Any(), models.LoginRequest{Email: tt.email, Password: tt.password}).
					Return(models.User{ID: "u1"}, tt.loginErr)
			}

			m := NewLoginModel(context.Background(), serverAdapter)
			m.form.inputs[loginEmail].SetValue(tt.email)
			m.form.inputs[loginPassword].SetValue(tt.password)

			_, cmd := m.Update(keyEnter)
			if cmd != nil {
				m.Update(exec(t, cmd))
			}

			assert.False(t, m.submitting)
			assert.Equal(t, tt.wantError, m.errMsg)
		})
	}
}

func TestLoginModel_RequestPasswordReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	serverAdapter.EXPECT().RequestPasswordReset(gomock.Any(), "ann@example.com").Return(nil)

	m := NewLoginModel(context.Background(), serverAdapter)
	_, cmd := m.Update(keyCtrlR)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)

	m.form.inputs[loginEmail].SetValue("ann@example.com")
	_, cmd = m.Update(keyCtrlR)
	m.Update(exec(t, cmd))

	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.status, "ann@example.com")
}

func TestRegisterModel_Request(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		wantErr string
	}{
		{name: "valid", values: []string{"a@b.io", "ann", "Ann", "password1", "password1"}},
		{name: "missing username", values: []string{"a@b.io", "", "", "password1", "password1"}, wantErr: "E-mail, логин и пароль обязательны"},
		{name: "short password", values: []string{"a@b.io", "ann", "", "short", "short"}, wantErr: "Пароль должен быть не короче 8 символов"},
		{name: "mismatch", values: []string{"a@b.io", "ann", "", "password1", "password2"}, wantErr: "Пароли не совпадают"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRegisterModel(context.Background(), nil)
			for i, v := range tt.values {
				m.form.inputs[i].SetValue(v)
			}

			req, errMsg := m.request()
			assert.Equal(t, tt.wantErr, errMsg)
			if tt.wantErr == "" {
				assert.Equal(t, models.RegisterRequest{Email: "a@b.io", Username: "ann", Name: "Ann", Password: "password1"}, req)
			}
		})
	}
}

// ─────────────────────────────────────────────
// main loop
// ─────────────────────────────────────────────

func TestMainLoop_HomeCarouselWraps(t *testing.T) {
	m, serverAdapter := newTestMainLoop(t)

	user := models.User{ID: "u1", DiaryIDs: []string{"d1", "d2"}}
	diaries := []models.Diary{{ID: "d1", Title: "One"}, {ID: "d2", Title: "Two"}}
	serverAdapter.EXPECT().HomeScreen(gomock.Any(), 0).
		Return(viewstate.Success(viewstate.NewDiaryListState(user, diaries, nil, 0)), nil)

	m, _ = step(t, m, exec(t, m.Init()))
	require.False(t, m.loading)

	current, ok := m.home.Current()
	require.True(t, ok)
	assert.Equal(t, "d1", current.ID)

	m, _ = step(t, m, keyLeft)
	current, _ = m.home.Current()
	assert.Equal(t, "d2", current.ID)

	m, _ = step(t, m, keyRight)
	m, _ = step(t, m, keyRight)
	current, _ = m.home.Current()
	assert.Equal(t, "d2", current.ID)
	assert.Contains(t, m.View(), "Two")
}

func TestMainLoop_ScreenErrorShowsOverlay(t *testing.T) {
	m, serverAdapter := newTestMainLoop(t)
	serverAdapter.EXPECT().HomeScreen(gomock.Any(), 0).
		Return(viewstate.Failure[viewstate.DiaryListState](errors.New("store unavailable")), nil)

	m, _ = step(t, m, exec(t, m.Init()))
	require.NotNil(t, m.overlay)
	assert.Equal(t, "store unavailable", m.overlay.message)

	m, _ = step(t, m, keyEnter)
	assert.Nil(t, m.overlay)
}

func TestMainLoop_LayoutLoopSettlesPage(t *testing.T) {
	// Arrange
	m, serverAdapter := newTestMainLoop(t)
	diary := singlePageDiary("hello world")

	gomock.InOrder(
		serverAdapter.EXPECT().DiaryScreen(gomock.Any(), "d1", 0).Return(viewstate.Success(diary), nil),
		serverAdapter.EXPECT().NextRender(gomock.Any(), "p1").
			Return(models.RenderRequest{PageID: "p1", SubPageID: "s1", Iteration: 1, Text: "hello world"}, nil),
		serverAdapter.EXPECT().ReportLayout(gomock.Any(), "p1", models.LayoutReport{SubPageID: "s1", Iteration: 1, Offset: len("hello world")}).
			Return(models.RenderRequest{PageID: "p1", Settled: true}, nil),
		serverAdapter.EXPECT().DiaryScreen(gomock.Any(), "d1", 0).Return(viewstate.Success(diary), nil),
	)

	// Act
	next, cmd := m.openDiary("d1")
	m = next.(mainLoopModel)
	for i := 0; cmd != nil && i < 10; i++ {
		m, cmd = step(t, m, exec(t, cmd))
	}

	// Assert
	assert.Nil(t, cmd)
	assert.True(t, m.laidOut["p1"])
	assert.False(t, m.layout.active)
	assert.Contains(t, m.View(), "hello world")
}

func TestMainLoop_StaleRenderIsDropped(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.beginLayout("p1")

	m, cmd := step(t, m, renderMsg{gen: m.layout.gen - 1, pageID: "p1", render: models.RenderRequest{Text: "x"}})
	assert.Nil(t, cmd)
	assert.True(t, m.layout.active)
}

func TestMainLoop_ConflictAsksForCurrentRender(t *testing.T) {
	m, serverAdapter := newTestMainLoop(t)
	serverAdapter.EXPECT().NextRender(gomock.Any(), "p1").Return(models.RenderRequest{PageID: "p1", Settled: true}, nil)

	m.beginLayout("p1")
	m, cmd := step(t, m, renderMsg{gen: m.layout.gen, pageID: "p1", err: adapter.ErrConflict})
	require.NotNil(t, cmd)

	msg := exec(t, cmd).(renderMsg)
	assert.True(t, msg.render.Settled)
	assert.Equal(t, 1, m.layout.steps)
}

func TestMainLoop_ResizeResetsLayout(t *testing.T) {
	m, serverAdapter := newTestMainLoop(t)
	m.screen = screenDiary
	m.diaryID = "d1"
	m.diary = singlePageDiary("text")
	m.laidOut["p1"] = true

	serverAdapter.EXPECT().ResetLayout(gomock.Any(), "p1", true).
		Return(models.RenderRequest{PageID: "p1", SubPageID: "s1", Iteration: 2, Text: "text"}, nil)

	m, cmd := step(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})
	assert.Empty(t, m.laidOut)
	assert.True(t, m.layout.active)

	msg := exec(t, cmd).(renderMsg)
	assert.Equal(t, 2, msg.render.Iteration)
}

func TestMainLoop_LoadsImagesOfOpenSpread(t *testing.T) {
	m, serverAdapter := newTestMainLoop(t)
	diary := singlePageDiary("at the lake")
	page := diary.Pages["p1"]
	page.SubPageIDs = []string{"s1"}
	diary.Pages["p1"] = page
	diary.SubPages["s1"] = models.DiarySubPage{ID: "s1", PageID: "p1", ContentEndIndex: len(page.Content), ImageIDs: []string{"i1", "i2"}}
	diary.Images["i1"] = models.DiaryImage{ID: "i1", SubPageID: "s1", URL: "http://blobs/lake.png"}
	diary.Images["i2"] = models.DiaryImage{ID: "i2", SubPageID: "s1", URL: "http://blobs/broken.png"}

	m.screen = screenDiary
	m.diaryID = "d1"
	m.pager = pagerLatest
	m.laidOut["p1"] = true

	serverAdapter.EXPECT().LoadImages(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, images []models.DiaryImage) []models.DiaryImage {
			loaded := append([]models.DiaryImage(nil), images...)
			loaded[0].Bitmap = image.NewRGBA(image.Rect(0, 0, 4, 3))
			return loaded
		})

	next, cmd := m.diaryLoaded(diaryLoadedMsg{state: viewstate.Success(diary)})
	m = next.(mainLoopModel)
	assert.Contains(t, m.View(), "[img ...]")

	m, _ = step(t, m, exec(t, cmd))

	view := m.View()
	assert.Contains(t, view, "[img 4×3]")
	assert.Contains(t, view, "[img не загружено]")

	spread, ok := m.diary.PagePosition()
	require.True(t, ok)
	assert.Nil(t, m.loadSpreadImages(spread), "fetched images are not downloaded again")
}

func TestMainLoop_ImagesOfClosedDiaryAreDropped(t *testing.T) {
	m, _ := newTestMainLoop(t)
	m.diaryID = "d2"

	m, _ = step(t, m, imagesLoadedMsg{diaryID: "d1", images: []models.DiaryImage{{ID: "i1"}}})

	assert.Empty(t, m.bitmaps)
}

// ─────────────────────────────────────────────
// capsules
// ─────────────────────────────────────────────

func TestCapsuleRequest(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		deadline string
		title    string
		wantErr  string
	}{
		{name: "valid", title: "Hi", deadline: "01.01.2027 10:00"},
		{name: "missing title", title: "", deadline: "01.01.2027 10:00", wantErr: "Нужны название и текст"},
		{name: "bad format", title: "Hi", deadline: "2027-01-01", wantErr: "Дата открытия в формате ДД.ММ.ГГГГ ЧЧ:ММ"},
		{name: "past", title: "Hi", deadline: "01.01.2025 10:00", wantErr: "Дата открытия должна быть в будущем"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMainLoop(t)
			m.openCapsuleForm()
			m.capsuleForm.inputs[capsuleTitle].SetValue(tt.title)
			m.capsuleForm.inputs[capsuleContent].SetValue("to the future")
			m.capsuleForm.inputs[capsuleDeadline].SetValue(tt.deadline)
			m.capsuleForm.inputs[capsuleEmails].SetValue(" a@b.io, ,c@d.io ")

			req, errMsg := capsuleRequest(&m.capsuleForm, now)
			assert.Equal(t, tt.wantErr, errMsg)
			if tt.wantErr == "" {
				assert.Equal(t, []string{"a@b.io", "c@d.io"}, req.ReceiverEmails)
				assert.Nil(t, req.ReceiverPhones)
				assert.Equal(t, 2027, req.Deadline.Year())
			}
		})
	}
}

func TestShiftTabWraps(t *testing.T) {
	assert.Equal(t, models.CapsuleTabSent, shiftTab(models.CapsuleTabScheduled, 1))
	assert.Equal(t, models.CapsuleTabScheduled, shiftTab(models.CapsuleTabReceived, 1))
	assert.Equal(t, models.CapsuleTabReceived, shiftTab(models.CapsuleTabScheduled, -1))
}

func TestMainLoop_OpenMissingCapsule(t *testing.T) {
	m, serverAdapter := newTestMainLoop(t)
	serverAdapter.EXPECT().CapsuleScreen(gomock.Any(), models.CapsuleTabReceived).
		Return(viewstate.Success(viewstate.CapsuleState{
			Capsules: map[string]models.TimeCapsule{
				"c1": {ID: "c1", SenderID: "u2", ReceiverIDs: []string{"u1"}, Title: "Hello", Deadline: time.Now().Add(-time.Hour)},
			},
			CurrentUserID: "u1",
			ActiveTab:     models.CapsuleTabReceived,
			Now:           time.Now(),
		}), nil)
	serverAdapter.EXPECT().GetCapsule(gomock.Any(), "c1").Return(models.TimeCapsule{}, adapter.ErrNotFound)

	next, cmd := m.openCapsules(models.CapsuleTabReceived)
	m, _ = step(t, next.(mainLoopModel), exec(t, cmd))
	require.Len(t, m.capsules.Visible(), 1)
	assert.Contains(t, m.View(), "Hello")

	m, cmd = step(t, m, keyEnter)
	m, _ = step(t, m, exec(t, cmd))

	require.NotNil(t, m.overlay)
	assert.Equal(t, screenCapsules, m.screen)
}

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func TestHumanizeError(t *testing.T) {
	assert.Empty(t, humanizeError(nil))
	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", humanizeError(errors.New("dial tcp 127.0.0.1:8080: connection refused")))
	assert.Equal(t, "Сервис временно недоступен", humanizeError(adapter.ErrServiceUnavailable))
	assert.Equal(t, "boom", humanizeError(errors.New("boom")))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "日...", fitText("日本語", 5))
}
