// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the terminal client's view of the diary server REST
// API and the downloader of diary image bitmaps.
package adapter

import (
	"context"
	"image"

	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

// ServerAdapter performs the REST calls of the terminal client. Every call
// except the sign-in ones needs a token, which the sign-in calls store on
// success.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	SignInAnonymously(ctx context.Context) (models.User, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ServerVersion(ctx context.Context) (string, error)

	HomeScreen(ctx context.Context, position int) (viewstate.State[viewstate.DiaryListState], error)
	DiaryScreen(ctx context.Context, diaryID string, pager int) (viewstate.State[viewstate.DiaryState], error)
	CapsuleScreen(ctx context.Context, tab models.CapsuleTab) (viewstate.State[viewstate.CapsuleState], error)

	CreateDiary(ctx context.Context, req models.DiaryRequest) (models.Diary, error)
	DeleteDiary(ctx context.Context, diaryID string) error
	UpdatePage(ctx context.Context, pageID string, content string) (models.DiaryPage, error)

	NextRender(ctx context.Context, pageID string) (models.RenderRequest, error)
	ReportLayout(ctx context.Context, pageID string, report models.LayoutReport) (models.RenderRequest, error)
	ResetLayout(ctx context.Context, pageID string, all bool) (models.RenderRequest, error)

	CreateCapsule(ctx context.Context, req models.CapsuleRequest) (models.TimeCapsule, error)
	GetCapsule(ctx context.Context, capsuleID string) (models.TimeCapsule, error)

	// LoadImages returns a copy of images with the bitmaps that could be
	// downloaded and decoded.
	LoadImages(ctx context.Context, images []models.DiaryImage) []models.DiaryImage
}

// ImageLoader fetches and decodes the bitmaps of diary images.
type ImageLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
	// LoadAll fills the Bitmap of every image it could fetch. Images that
	// fail keep a nil Bitmap.
	LoadAll(ctx context.Context, images []models.DiaryImage) []models.DiaryImage
}
