package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	images ImageLoader

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// cfg.HTTPAddress may omit the scheme, in which case http is assumed.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	logger.Debug().Str("base_url", baseURL).Msg("server adapter created")
	images := NewImageLoader(utils.NewHTTPClient(cfg.RequestTimeout).Client, logger)

	return &httpServerAdapter{client: client, images: images, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ─── auth ───────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return h.signIn(ctx, "/api/user/register", req)
}

func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return h.signIn(ctx, "/api/user/login", req)
}

func (h *httpServerAdapter) SignInAnonymously(ctx context.Context) (models.User, error) {
	return h.signIn(ctx, "/api/user/anonymous", nil)
}

// signIn posts body to path and keeps the bearer token of the response.
func (h *httpServerAdapter) signIn(ctx context.Context, path string, body any) (models.User, error) {
	var auth models.AuthResponse

	req := h.client.R().SetContext(ctx).SetResult(&auth)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("sign-in request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("sign-in parse bearer token: %w", err)
	}

	h.SetToken(token)
	return auth.User, nil
}

func (h *httpServerAdapter) RequestPasswordReset(ctx context.Context, email string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PasswordResetRequest{Email: email}).
		Post("/api/user/password/forgot")
	if err != nil {
		return fmt.Errorf("password reset request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

// ─── screens ────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) HomeScreen(ctx context.Context, position int) (viewstate.State[viewstate.DiaryListState], error) {
	var state viewstate.State[viewstate.DiaryListState]
	err := h.getJSON(ctx, "/api/screens/home", map[string]string{"position": strconv.Itoa(position)}, &state)
	return state, err
}

func (h *httpServerAdapter) DiaryScreen(ctx context.Context, diaryID string, pager int) (viewstate.State[viewstate.DiaryState], error) {
	var state viewstate.State[viewstate.DiaryState]
	err := h.getJSON(ctx, "/api/screens/diaries/"+url.PathEscape(diaryID), map[string]string{"pager": strconv.Itoa(pager)}, &state)
	return state, err
}

func (h *httpServerAdapter) CapsuleScreen(ctx context.Context, tab models.CapsuleTab) (viewstate.State[viewstate.CapsuleState], error) {
	var state viewstate.State[viewstate.CapsuleState]
	err := h.getJSON(ctx, "/api/screens/capsules", map[string]string{"tab": string(tab)}, &state)
	return state, err
}

// ─── diaries ────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) CreateDiary(ctx context.Context, req models.DiaryRequest) (models.Diary, error) {
	var diary models.Diary
	err := h.sendJSON(ctx, resty.MethodPost, "/api/diaries", req, &diary)
	return diary, err
}

func (h *httpServerAdapter) DeleteDiary(ctx context.Context, diaryID string) error {
	return h.sendJSON(ctx, resty.MethodDelete, "/api/diaries/"+url.PathEscape(diaryID), nil, nil)
}

func (h *httpServerAdapter) UpdatePage(ctx context.Context, pageID string, content string) (models.DiaryPage, error) {
	var page models.DiaryPage
	err := h.sendJSON(ctx, resty.MethodPut, "/api/pages/"+url.PathEscape(pageID), models.PageContentRequest{Content: content}, &page)
	return page, err
}

// ─── layout loop ────────────────────────────────────────────────────────────

func (h *httpServerAdapter) NextRender(ctx context.Context, pageID string) (models.RenderRequest, error) {
	var render models.RenderRequest
	err := h.sendJSON(ctx, resty.MethodPost, layoutPath(pageID, "next"), nil, &render)
	return render, err
}

func (h *httpServerAdapter) ReportLayout(ctx context.Context, pageID string, report models.LayoutReport) (models.RenderRequest, error) {
	var render models.RenderRequest
	err := h.sendJSON(ctx, resty.MethodPost, layoutPath(pageID, "report"), report, &render)
	return render, err
}

func (h *httpServerAdapter) ResetLayout(ctx context.Context, pageID string, all bool) (models.RenderRequest, error) {
	path := layoutPath(pageID, "reset")
	if all {
		path += "?scope=all"
	}

	var render models.RenderRequest
	err := h.sendJSON(ctx, resty.MethodPost, path, nil, &render)
	return render, err
}

func layoutPath(pageID, action string) string {
	return "/api/pages/" + url.PathEscape(pageID) + "/layout/" + action
}

// ─── capsules ───────────────────────────────────────────────────────────────

func (h *httpServerAdapter) CreateCapsule(ctx context.Context, req models.CapsuleRequest) (models.TimeCapsule, error) {
	var capsule models.TimeCapsule
	err := h.sendJSON(ctx, resty.MethodPost, "/api/capsules", req, &capsule)
	return capsule, err
}

func (h *httpServerAdapter) GetCapsule(ctx context.Context, capsuleID string) (models.TimeCapsule, error) {
	var capsule models.TimeCapsule
	err := h.getJSON(ctx, "/api/capsules/"+url.PathEscape(capsuleID), nil, &capsule)
	return capsule, err
}

// ─── images ─────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) LoadImages(ctx context.Context, images []models.DiaryImage) []models.DiaryImage {
	return h.images.LoadAll(ctx, images)
}

// ─── helpers ────────────────────────────────────────────────────────────────

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) getJSON(ctx context.Context, path string, query map[string]string, result any) error {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(query).
		SetResult(result).
		Get(path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.getJSON").Str("path", path).Msg("request failed")
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

// sendJSON sends body (if any) with method and decodes the response into
// result (if any).
func (h *httpServerAdapter) sendJSON(ctx context.Context, method, path string, body, result any) error {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter.sendJSON").Str("method", method).Str("path", path).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	return mapHTTPError(resp)
}
