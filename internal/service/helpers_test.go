package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

// 2026-10-19 10:00 UTC
var testNow = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// memoryBlobs keeps uploaded objects in memory.
type memoryBlobs struct {
	mu      sync.Mutex
	n       int
	objects map[string][]byte
	deleted []string
}

func (b *memoryBlobs) Upload(ctx context.Context, object store.BlobObject) (store.BlobInfo, error) {
	data, err := io.ReadAll(object.Body)
	if err != nil {
		return store.BlobInfo{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.objects == nil {
		b.objects = make(map[string][]byte)
	}
	b.n++
	name := fmt.Sprintf("%s/obj-%d", object.DiaryID, b.n)
	b.objects[name] = data
	return store.BlobInfo{ObjectName: name, URL: "http://blobs.test/" + name}, nil
}

func (b *memoryBlobs) Delete(ctx context.Context, objectName string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, objectName)
	b.deleted = append(b.deleted, objectName)
	return nil
}

func newTestStorages(t *testing.T) (*store.Storages, *memoryBlobs) {
	t.Helper()
	documents, err := store.NewMemoryDocumentStore("", utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, err)

	blobs := &memoryBlobs{}
	return store.NewStoragesFromDocuments(documents, blobs, logger.Nop()), blobs
}

func newTestUser(t *testing.T, users store.UserStorage, email, username string) models.User {
	t.Helper()
	user, err := users.SaveUser(context.Background(), models.User{Email: email, Username: username, CreatedAt: testNow})
	require.NoError(t, err)
	return user
}

// diaryFixture wires the diary and pagination services over a memory store.
type diaryFixture struct {
	storages   *store.Storages
	blobs      *memoryBlobs
	sessions   *viewstate.Sessions[viewstate.DiaryState]
	pagination *paginationService
	diaries    *diaryService
	user       models.User
}

func newDiaryFixture(t *testing.T) *diaryFixture {
	t.Helper()
	storages, blobs := newTestStorages(t)
	sessions := viewstate.NewSessions[viewstate.DiaryState](time.Hour)

	pagination := NewPaginationService(storages.DiaryStorage, sessions, logger.Nop()).(*paginationService)
	diaries := NewDiaryService(storages.DiaryStorage, blobs, pagination, time.UTC, logger.Nop()).(*diaryService)
	diaries.now = fixedClock(testNow)

	return &diaryFixture{
		storages:   storages,
		blobs:      blobs,
		sessions:   sessions,
		pagination: pagination,
		diaries:    diaries,
		user:       newTestUser(t, storages.UserStorage, "owner@example.com", "owner"),
	}
}

// createDiary creates a diary of the fixture user and returns it with its
// first page.
func (f *diaryFixture) createDiary(t *testing.T) (models.Diary, models.DiaryPage) {
	t.Helper()
	diary, err := f.diaries.CreateDiary(context.Background(), f.user.ID, models.DiaryRequest{Title: "Journal"})
	require.NoError(t, err)
	require.Len(t, diary.PageIDs, 1)

	page, err := f.storages.DiaryStorage.GetPage(context.Background(), diary.PageIDs[0])
	require.NoError(t, err)
	return diary, page
}

// subPageEnds returns the ContentEndIndex of every stored sub-page of page.
func (f *diaryFixture) subPageEnds(t *testing.T, pageID string) []int {
	t.Helper()
	ctx := context.Background()
	page, err := f.storages.DiaryStorage.GetPage(ctx, pageID)
	require.NoError(t, err)

	ends := make([]int, 0, len(page.SubPageIDs))
	for _, id := range page.SubPageIDs {
		sp, err := f.storages.DiaryStorage.GetSubPage(ctx, id)
		require.NoError(t, err)
		ends = append(ends, sp.ContentEndIndex)
	}
	return ends
}

func imageUpload(body string) ImageUpload {
	return ImageUpload{
		FileName:    "photo.png",
		ContentType: "image/png",
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}
