// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

// AuthService signs users in and issues access tokens.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	SignInAnonymously(ctx context.Context) (models.User, error)
	// LinkAccount gives an anonymous account an e-mail, username and
	// password. Its diaries and capsules are kept.
	LinkAccount(ctx context.Context, userID string, req models.LinkAccountRequest) (models.User, error)
	// RequestPasswordReset issues a short-lived reset token and hands it to
	// the configured [ResetNotifier]. Unknown e-mails are not reported.
	RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error
	ResetPassword(ctx context.Context, req models.PasswordResetConfirm) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdate) (models.User, error)
	// DeleteUser removes the account with all of its diaries.
	DeleteUser(ctx context.Context, userID string) error
}

// DiaryService edits the diaries of their owner. Every call checks that
// userID owns the diary the entity belongs to.
type DiaryService interface {
	CreateDiary(ctx context.Context, userID string, req models.DiaryRequest) (models.Diary, error)
	UpdateDiary(ctx context.Context, userID, diaryID string, req models.DiaryRequest) (models.Diary, error)
	DeleteDiary(ctx context.Context, userID, diaryID string) error
	SetCover(ctx context.Context, userID, diaryID string, upload ImageUpload) (models.DiaryImage, error)

	AddPage(ctx context.Context, userID, diaryID string) (models.DiaryPage, error)
	// UpdatePageContent replaces the page text and resets its layout.
	UpdatePageContent(ctx context.Context, userID, pageID string, req models.PageContentRequest) (models.DiaryPage, error)
	DeletePage(ctx context.Context, userID, pageID string) error

	AddImage(ctx context.Context, userID, subPageID string, upload ImageUpload) (models.DiaryImage, error)
	TransformImage(ctx context.Context, userID, imageID string, req models.ImageTransformRequest) (models.DiaryImage, error)
	DeleteImage(ctx context.Context, userID, imageID string) error

	// EnsureTodayPage makes sure the latest page of the diary belongs to the
	// current day. It reports whether anything was written.
	EnsureTodayPage(ctx context.Context, userID, diaryID string) (bool, error)
}

// ResetScope selects the sub-pages a layout reset applies to.
type ResetScope int

const (
	// ResetFirst resets the first sub-page, after the page text changed.
	ResetFirst ResetScope = iota
	// ResetAll resets every sub-page, after the viewport changed.
	ResetAll
)

// PaginationService drives the layout loop of a page: the client asks for
// the next render, measures it and reports the overflow.
type PaginationService interface {
	NextRender(ctx context.Context, userID, pageID string) (models.RenderRequest, error)
	ReportLayout(ctx context.Context, userID, pageID string, report models.LayoutReport) (models.RenderRequest, error)
	ResetLayout(ctx context.Context, userID, pageID string, scope ResetScope) (models.RenderRequest, error)
}

type TimeCapsuleService interface {
	Create(ctx context.Context, userID string, req models.CapsuleRequest) (models.TimeCapsule, error)
	// Get returns a capsule to its sender, and to its receivers once the
	// deadline has passed.
	Get(ctx context.Context, userID, capsuleID string) (models.TimeCapsule, error)
	Delete(ctx context.Context, userID, capsuleID string) error
}

// ScreenService builds the state of every client screen. Errors never
// escape: they become the error arm of the returned state.
type ScreenService interface {
	Home(ctx context.Context, userID string, position int) viewstate.State[viewstate.DiaryListState]
	Diary(ctx context.Context, userID, diaryID string, pagerIndex int) viewstate.State[viewstate.DiaryState]
	Capsules(ctx context.Context, userID string, tab models.CapsuleTab) viewstate.State[viewstate.CapsuleState]
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ResetNotifier delivers password reset tokens to users.
type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, email string, token models.Token) error
}

// ImageUpload is an image file received from a client.
type ImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	Transform   models.ImageTransformRequest
}

// Clock returns the current time.
type Clock func() time.Time

// DiaryServiceWrapper decorates a DiaryService, e.g. with validation.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService
}

type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type TimeCapsuleServiceWrapper interface {
	Wrap(TimeCapsuleService) TimeCapsuleService
}

type PaginationServiceWrapper interface {
	Wrap(PaginationService) PaginationService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
