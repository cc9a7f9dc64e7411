// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-time-diary/models"
)

// DiaryStorage is the aggregate root of Diary -> Page -> SubPage -> Image.
//
// Saving a child appends its id to the parent's list and persists the
// parent: two writes with no transaction. Deleting an entity deletes its
// children first, then the entity, then removes its id from the parent.
// A failure part way leaves the tree partially updated and is returned as is.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/storages_mock.go -package=mock
type DiaryStorage interface {
	GetDiary(ctx context.Context, diaryID string) (models.Diary, error)
	// ListDiaries loads the diaries of user in the order of user.DiaryIDs.
	// Ids whose documents are missing are skipped.
	ListDiaries(ctx context.Context, user models.User) ([]models.Diary, error)
	// SaveDiary creates the diary and appends it to its owner's DiaryIDs.
	SaveDiary(ctx context.Context, diary models.Diary) (models.Diary, error)
	UpdateDiary(ctx context.Context, diary models.Diary) error
	// DeleteDiary removes the diary with all pages, sub-pages, images and
	// its cover, then drops it from the owner's DiaryIDs.
	DeleteDiary(ctx context.Context, diaryID string) error

	GetPage(ctx context.Context, pageID string) (models.DiaryPage, error)
	SavePage(ctx context.Context, page models.DiaryPage) (models.DiaryPage, error)
	UpdatePage(ctx context.Context, page models.DiaryPage) error
	DeletePage(ctx context.Context, pageID string) error

	GetSubPage(ctx context.Context, subPageID string) (models.DiarySubPage, error)
	SaveSubPage(ctx context.Context, subPage models.DiarySubPage) (models.DiarySubPage, error)
	UpdateSubPage(ctx context.Context, subPage models.DiarySubPage) error
	DeleteSubPage(ctx context.Context, subPageID string) error

	GetImage(ctx context.Context, imageID string) (models.DiaryImage, error)
	// SaveImage appends the image to its sub-page. An image without a
	// sub-page is a diary cover and becomes the diary's CoverID instead.
	SaveImage(ctx context.Context, image models.DiaryImage) (models.DiaryImage, error)
	UpdateImage(ctx context.Context, image models.DiaryImage) error
	DeleteImage(ctx context.Context, imageID string) error

	// LoadTree loads a diary with everything below it.
	LoadTree(ctx context.Context, diaryID string) (DiaryTree, error)
}

// UserStorage is the aggregate root of User -> Diary plus the username and
// e-mail indexes and the user's credentials.
type UserStorage interface {
	GetUser(ctx context.Context, userID string) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	// SaveUser fails with [ErrUsernameTaken] or [ErrEmailTaken] before any
	// write, leaving the indexes untouched.
	SaveUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser moves index entries when the username or e-mail changes.
	UpdateUser(ctx context.Context, user models.User) error
	// DeleteUser removes the user's diaries, credentials, index entries and
	// finally the user.
	DeleteUser(ctx context.Context, userID string) error

	GetCredentials(ctx context.Context, userID string) (models.Credentials, error)
	SaveCredentials(ctx context.Context, credentials models.Credentials) error
}

// TimeCapsuleStorage keeps capsules consistent with the sender's
// SentCapsuleIDs and every receiver's ReceivedCapsuleIDs.
type TimeCapsuleStorage interface {
	GetCapsule(ctx context.Context, capsuleID string) (models.TimeCapsule, error)
	// SaveCapsule writes the capsule, then the sender, then each receiver.
	SaveCapsule(ctx context.Context, capsule models.TimeCapsule) (models.TimeCapsule, error)
	UpdateCapsule(ctx context.Context, capsule models.TimeCapsule) error
	// DeleteCapsule removes the capsule, then its id from the sender and
	// from each receiver.
	DeleteCapsule(ctx context.Context, capsuleID string) error
	// ListCapsules loads every capsule user sent or received. Missing
	// documents are skipped.
	ListCapsules(ctx context.Context, user models.User) (map[string]models.TimeCapsule, error)
}

// BlobStorage stores binary image data outside the document store.
type BlobStorage interface {
	Upload(ctx context.Context, object BlobObject) (BlobInfo, error)
	Delete(ctx context.Context, objectName string) error
}

// DiaryTree is a diary with all of its descendants keyed by id.
type DiaryTree struct {
	Diary    models.Diary
	Pages    map[string]models.DiaryPage
	SubPages map[string]models.DiarySubPage
	Images   map[string]models.DiaryImage
}

// BlobObject is an image upload.
type BlobObject struct {
	DiaryID     string
	SubPageID   string
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// BlobInfo locates an uploaded object.
type BlobInfo struct {
	ObjectName string
	URL        string
}
