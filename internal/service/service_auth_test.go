package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/mock"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
)

var testAppConfig = config.App{
	TokenSignKey:       "test-sign-key",
	TokenIssuer:        "go-time-diary",
	TokenDuration:      time.Hour,
	ResetTokenDuration: 15 * time.Minute,
}

// capturingNotifier remembers the reset tokens it was asked to deliver.
type capturingNotifier struct {
	emails []string
	tokens []models.Token
	err    error
}

func (n *capturingNotifier) NotifyPasswordReset(ctx context.Context, email string, token models.Token) error {
	n.emails = append(n.emails, email)
	n.tokens = append(n.tokens, token)
	return n.err
}

func newTestAuthService(t *testing.T) (*authService, *capturingNotifier, *store.Storages) {
	t.Helper()
	storages, _ := newTestStorages(t)
	notifier := &capturingNotifier{}
	svc := NewAuthService(storages.UserStorage, notifier, testAppConfig, logger.Nop()).(*authService)
	return svc, notifier, storages
}

var testRegistration = models.RegisterRequest{
	Email:    "anna@example.com",
	Password: "correct horse",
	Username: "anna",
	Name:     "Anna",
}

// ─────────────────────────────────────────────
// Register / Login
// ─────────────────────────────────────────────

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, storages := newTestAuthService(t)

	registered, err := svc.Register(ctx, testRegistration)
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.False(t, registered.Anonymous)

	creds, err := storages.UserStorage.GetCredentials(ctx, registered.ID)
	require.NoError(t, err)
	assert.NotEqual(t, testRegistration.Password, creds.PasswordHash)

	loggedIn, err := svc.Login(ctx, models.LoginRequest{Email: "ANNA@example.com", Password: testRegistration.Password})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
}

func TestAuthService_Login_Rejects(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)
	_, err := svc.Register(ctx, testRegistration)
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{"wrong password", models.LoginRequest{Email: testRegistration.Email, Password: "wrong password"}, ErrWrongPassword},
		{"unknown email", models.LoginRequest{Email: "nobody@example.com", Password: "whatever1"}, ErrWrongPassword},
		{"empty password", models.LoginRequest{Email: testRegistration.Email}, ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)
	_, err := svc.Register(ctx, testRegistration)
	require.NoError(t, err)

	again := testRegistration
	again.Username = "someone-else"
	_, err = svc.Register(ctx, again)

	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestAuthService_Register_CredentialsFailureRemovesUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserStorage(ctrl)
	svc := NewAuthService(users, &capturingNotifier{}, testAppConfig, logger.Nop())
	saveErr := errors.New("store is down")

	gomock.InOrder(
		users.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				u.ID = "user-1"
				return u, nil
			}),
		users.EXPECT().SaveCredentials(gomock.Any(), gomock.Any()).Return(saveErr),
		users.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(nil),
	)

	// Act
	_, err := svc.Register(context.Background(), testRegistration)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, saveErr)
}

// ─────────────────────────────────────────────
// Anonymous accounts
// ─────────────────────────────────────────────

func TestAuthService_AnonymousThenLink(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	anonymous, err := svc.SignInAnonymously(ctx)
	require.NoError(t, err)
	assert.True(t, anonymous.Anonymous)

	linked, err := svc.LinkAccount(ctx, anonymous.ID, models.LinkAccountRequest{
		Email:    "later@example.com",
		Password: "secret-pass",
		Username: "later",
	})
	require.NoError(t, err)
	assert.Equal(t, anonymous.ID, linked.ID)
	assert.False(t, linked.Anonymous)

	loggedIn, err := svc.Login(ctx, models.LoginRequest{Email: "later@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	assert.Equal(t, anonymous.ID, loggedIn.ID)
}

func TestAuthService_LinkAccount_AlreadyLinked(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)
	user, err := svc.Register(ctx, testRegistration)
	require.NoError(t, err)

	_, err = svc.LinkAccount(ctx, user.ID, models.LinkAccountRequest{Email: "x@example.com", Password: "password1", Username: "x"})

	assert.ErrorIs(t, err, ErrAccountNotAnonymous)
}

// ─────────────────────────────────────────────
// Password reset
// ─────────────────────────────────────────────

func TestAuthService_PasswordReset(t *testing.T) {
	ctx := context.Background()
	svc, notifier, _ := newTestAuthService(t)
	_, err := svc.Register(ctx, testRegistration)
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, models.PasswordResetRequest{Email: testRegistration.Email}))
	require.Len(t, notifier.tokens, 1)
	token := notifier.tokens[0].String()

	require.NoError(t, svc.ResetPassword(ctx, models.PasswordResetConfirm{Token: token, Password: "brand new pass"}))

	_, err = svc.Login(ctx, models.LoginRequest{Email: testRegistration.Email, Password: testRegistration.Password})
	assert.ErrorIs(t, err, ErrWrongPassword)
	_, err = svc.Login(ctx, models.LoginRequest{Email: testRegistration.Email, Password: "brand new pass"})
	assert.NoError(t, err)

	err = svc.ResetPassword(ctx, models.PasswordResetConfirm{Token: token, Password: "another pass"})
	assert.ErrorIs(t, err, ErrResetTokenUsed)
}

func TestAuthService_ResetPassword_TokenReusedWithinSameSecond(t *testing.T) {
	ctx := context.Background()
	svc, notifier, _ := newTestAuthService(t)
	_, err := svc.Register(ctx, testRegistration)
	require.NoError(t, err)

	frozen := time.Now()
	svc.now = func() time.Time { return frozen }

	require.NoError(t, svc.RequestPasswordReset(ctx, models.PasswordResetRequest{Email: testRegistration.Email}))
	token := notifier.tokens[0].String()

	require.NoError(t, svc.ResetPassword(ctx, models.PasswordResetConfirm{Token: token, Password: "first new pass"}))
	err = svc.ResetPassword(ctx, models.PasswordResetConfirm{Token: token, Password: "second new pass"})
	assert.ErrorIs(t, err, ErrResetTokenUsed)

	_, err = svc.Login(ctx, models.LoginRequest{Email: testRegistration.Email, Password: "first new pass"})
	assert.NoError(t, err)
}

func TestAuthService_ResetPassword_NewerRequestSupersedesToken(t *testing.T) {
	ctx := context.Background()
	svc, notifier, _ := newTestAuthService(t)
	_, err := svc.Register(ctx, testRegistration)
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, models.PasswordResetRequest{Email: testRegistration.Email}))
	require.NoError(t, svc.RequestPasswordReset(ctx, models.PasswordResetRequest{Email: testRegistration.Email}))
	require.Len(t, notifier.tokens, 2)
	older, newer := notifier.tokens[0].String(), notifier.tokens[1].String()
	require.NotEqual(t, older, newer)

	err = svc.ResetPassword(ctx, models.PasswordResetConfirm{Token: older, Password: "from old mail"})
	assert.ErrorIs(t, err, ErrResetTokenUsed)
	assert.NoError(t, svc.ResetPassword(ctx, models.PasswordResetConfirm{Token: newer, Password: "from new mail"}))
}

func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	svc, notifier, _ := newTestAuthService(t)

	err := svc.RequestPasswordReset(context.Background(), models.PasswordResetRequest{Email: "ghost@example.com"})

	require.NoError(t, err)
	assert.Empty(t, notifier.tokens)
}

func TestAuthService_ResetPassword_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)
	user, err := svc.Register(ctx, testRegistration)
	require.NoError(t, err)

	access, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, models.PasswordResetConfirm{Token: access.String(), Password: "new password"})
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	token, err := svc.CreateToken(ctx, models.User{ID: "user-42"})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, "user-42", parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuthService(t)

	reset, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "user-1", utils.AudiencePasswordReset, time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":     "not-a-token",
		"reset token": reset.String(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_CreateToken_MissingUserID(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
