package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/service"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Unset fields panic when
// called, which keeps every test explicit about what it exercises.
type mockAuthService struct {
	service.AuthService

	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.Server{}, logger.Nop())
}

func stubToken(signed, userID string) models.Token {
	return models.Token{SignedString: signed, UserID: userID}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

// withUser returns r as if it had passed the auth middleware.
func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(utils.WithUserID(r.Context(), userID))
}

// apiClient talks to a router backed by real services over an in-memory
// document store.
type apiClient struct {
	t        *testing.T
	server   *httptest.Server
	services *service.Services
	token    string
}

func newAPIClient(t *testing.T) *apiClient {
	t.Helper()

	documents, err := store.NewMemoryDocumentStore("", utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, err)
	storages := store.NewStoragesFromDocuments(documents, nil, logger.Nop())

	services, err := service.NewServices(storages, config.StructuredConfig{
		App: config.App{
			TokenSignKey:       "test-key",
			TokenIssuer:        "go-time-diary",
			TokenDuration:      time.Hour,
			ResetTokenDuration: time.Minute,
			TimeZone:           "UTC",
			Language:           "en",
			Version:            "1.2.3",
		},
		Workers: config.Workers{SessionTTL: time.Hour},
	}, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	server := httptest.NewServer(h.Init())
	t.Cleanup(server.Close)

	return &apiClient{t: t, server: server, services: services}
}

// do sends a JSON request and decodes a JSON response into out when out is
// not nil. It returns the response with its body already consumed.
func (c *apiClient) do(method, path string, in, out any) *http.Response {
	c.t.Helper()

	var body io.Reader
	if in != nil {
		body = jsonBody(c.t, in)
	}
	req, err := http.NewRequest(method, c.server.URL+path, body)
	require.NoError(c.t, err)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return resp
}

// register creates an account and keeps its token for later requests.
func (c *apiClient) register(email, username string) models.User {
	c.t.Helper()

	var auth models.AuthResponse
	resp := c.do(http.MethodPost, "/api/user/register", models.RegisterRequest{
		Email:    email,
		Password: "correct-horse",
		Username: username,
	}, &auth)
	require.Equal(c.t, http.StatusCreated, resp.StatusCode)

	c.token = resp.Header.Get("Authorization")
	require.NotEmpty(c.t, c.token)
	return auth.User
}
