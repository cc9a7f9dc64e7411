package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type recordingBlobs struct {
	deleted []string
}

func (b *recordingBlobs) Upload(_ context.Context, object BlobObject) (BlobInfo, error) {
	return BlobInfo{ObjectName: object.FileName, URL: "http://blobs/" + object.FileName}, nil
}

func (b *recordingBlobs) Delete(_ context.Context, objectName string) error {
	b.deleted = append(b.deleted, objectName)
	return nil
}

type diaryFixture struct {
	store    DocumentStore
	storage  DiaryStorage
	users    Repository[models.User]
	blobs    *recordingBlobs
	user     models.User
	diary    models.Diary
	page     models.DiaryPage
	subPages []models.DiarySubPage
	image    models.DiaryImage
}

// newDiaryFixture builds user -> diary -> page -> two sub-pages, the first
// holding one uploaded image.
func newDiaryFixture(t *testing.T) *diaryFixture {
	t.Helper()
	ctx := context.Background()

	f := &diaryFixture{store: newTestMemoryStore(t), blobs: &recordingBlobs{}}
	f.storage = NewDiaryStorage(f.store, f.blobs, logger.Nop())
	f.users = NewUserRepository(f.store)

	var err error
	f.user, err = f.users.Save(ctx, models.User{Name: "Ann"})
	require.NoError(t, err)

	f.diary, err = f.storage.SaveDiary(ctx, models.Diary{UserID: f.user.ID, Title: "Travel"})
	require.NoError(t, err)

	f.page, err = f.storage.SavePage(ctx, models.DiaryPage{DiaryID: f.diary.ID, Content: "hello"})
	require.NoError(t, err)

	for range 2 {
		sp, err := f.storage.SaveSubPage(ctx, models.DiarySubPage{PageID: f.page.ID})
		require.NoError(t, err)
		f.subPages = append(f.subPages, sp)
	}

	f.image, err = f.storage.SaveImage(ctx, models.DiaryImage{DiaryID: f.diary.ID, SubPageID: f.subPages[0].ID, Scale: 1, ObjectName: "obj-1"})
	require.NoError(t, err)

	return f
}

// ─────────────────────────────────────────────
// Save
// ─────────────────────────────────────────────

func TestDiaryStorage_SaveLinksChildrenToParents(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	user, err := f.users.Get(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{f.diary.ID}, user.DiaryIDs)

	diary, err := f.storage.GetDiary(ctx, f.diary.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{f.page.ID}, diary.PageIDs)

	page, err := f.storage.GetPage(ctx, f.page.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{f.subPages[0].ID, f.subPages[1].ID}, page.SubPageIDs)

	subPage, err := f.storage.GetSubPage(ctx, f.subPages[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{f.image.ID}, subPage.ImageIDs)
}

func TestDiaryStorage_SaveRejectsEntityWithID(t *testing.T) {
	f := newDiaryFixture(t)

	_, err := f.storage.SavePage(context.Background(), models.DiaryPage{ID: "p-x", DiaryID: f.diary.ID})

	assert.ErrorIs(t, err, ErrEntityHasID)
}

func TestDiaryStorage_SaveWithMissingParent(t *testing.T) {
	f := newDiaryFixture(t)

	_, err := f.storage.SaveSubPage(context.Background(), models.DiarySubPage{PageID: "missing"})

	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDiaryStorage_ParentUpdateFailureKeepsChild(t *testing.T) {
	ctx := context.Background()
	counting := newCountingStore(newTestMemoryStore(t))
	s := NewDiaryStorage(counting, nil, logger.Nop())

	user, err := NewUserRepository(counting).Save(ctx, models.User{Name: "Ann"})
	require.NoError(t, err)
	diary, err := s.SaveDiary(ctx, models.Diary{UserID: user.ID})
	require.NoError(t, err)

	counting.failOn["set:"+CollectionDiaries] = errors.New("offline")

	page, err := s.SavePage(ctx, models.DiaryPage{DiaryID: diary.ID})

	require.Error(t, err)
	assert.NotEmpty(t, page.ID)
	stored, getErr := s.GetPage(ctx, page.ID)
	require.NoError(t, getErr)
	assert.Equal(t, diary.ID, stored.DiaryID)
}

// ─────────────────────────────────────────────
// Covers
// ─────────────────────────────────────────────

func TestDiaryStorage_SaveCoverReplacesPrevious(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	first, err := f.storage.SaveImage(ctx, models.DiaryImage{DiaryID: f.diary.ID, ObjectName: "cover-1"})
	require.NoError(t, err)
	second, err := f.storage.SaveImage(ctx, models.DiaryImage{DiaryID: f.diary.ID, ObjectName: "cover-2"})
	require.NoError(t, err)

	diary, err := f.storage.GetDiary(ctx, f.diary.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, diary.CoverID)

	_, err = f.storage.GetImage(ctx, first.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.Equal(t, []string{"cover-1"}, f.blobs.deleted)
}

func TestDiaryStorage_DeleteCoverClearsDiary(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	cover, err := f.storage.SaveImage(ctx, models.DiaryImage{DiaryID: f.diary.ID})
	require.NoError(t, err)

	require.NoError(t, f.storage.DeleteImage(ctx, cover.ID))

	diary, err := f.storage.GetDiary(ctx, f.diary.ID)
	require.NoError(t, err)
	assert.Empty(t, diary.CoverID)
}

// ─────────────────────────────────────────────
// Delete cascades
// ─────────────────────────────────────────────

func TestDiaryStorage_DeletePageCascades(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	require.NoError(t, f.storage.DeletePage(ctx, f.page.ID))

	diary, err := f.storage.GetDiary(ctx, f.diary.ID)
	require.NoError(t, err)
	assert.NotContains(t, diary.PageIDs, f.page.ID)

	_, err = f.storage.GetPage(ctx, f.page.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	for _, sp := range f.subPages {
		_, err = f.storage.GetSubPage(ctx, sp.ID)
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	}
	_, err = f.storage.GetImage(ctx, f.image.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.Equal(t, []string{"obj-1"}, f.blobs.deleted)
}

func TestDiaryStorage_DeleteSubPageKeepsSiblings(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	require.NoError(t, f.storage.DeleteSubPage(ctx, f.subPages[0].ID))

	page, err := f.storage.GetPage(ctx, f.page.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{f.subPages[1].ID}, page.SubPageIDs)

	_, err = f.storage.GetImage(ctx, f.image.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDiaryStorage_DeleteImage(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	require.NoError(t, f.storage.DeleteImage(ctx, f.image.ID))

	subPage, err := f.storage.GetSubPage(ctx, f.subPages[0].ID)
	require.NoError(t, err)
	assert.Empty(t, subPage.ImageIDs)
}

func TestDiaryStorage_DeleteDiaryCascades(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	cover, err := f.storage.SaveImage(ctx, models.DiaryImage{DiaryID: f.diary.ID, ObjectName: "cover"})
	require.NoError(t, err)

	require.NoError(t, f.storage.DeleteDiary(ctx, f.diary.ID))

	user, err := f.users.Get(ctx, f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, user.DiaryIDs)

	_, err = f.storage.GetDiary(ctx, f.diary.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	_, err = f.storage.GetImage(ctx, cover.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	_, err = f.storage.GetSubPage(ctx, f.subPages[1].ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
	assert.ElementsMatch(t, []string{"obj-1", "cover"}, f.blobs.deleted)
}

func TestDiaryStorage_DeleteToleratesMissingParent(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Delete(ctx, CollectionPages, f.page.ID))

	assert.NoError(t, f.storage.DeleteSubPage(ctx, f.subPages[1].ID))
}

// ─────────────────────────────────────────────
// Loading
// ─────────────────────────────────────────────

func TestDiaryStorage_LoadTree(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	tree, err := f.storage.LoadTree(ctx, f.diary.ID)

	require.NoError(t, err)
	assert.Equal(t, f.diary.ID, tree.Diary.ID)
	assert.Len(t, tree.Pages, 1)
	assert.Len(t, tree.SubPages, 2)
	assert.Contains(t, tree.Images, f.image.ID)
}

func TestDiaryStorage_ListDiariesSkipsMissing(t *testing.T) {
	f := newDiaryFixture(t)
	ctx := context.Background()

	user := f.user
	user.DiaryIDs = []string{"missing", f.diary.ID}

	diaries, err := f.storage.ListDiaries(ctx, user)

	require.NoError(t, err)
	require.Len(t, diaries, 1)
	assert.Equal(t, f.diary.ID, diaries[0].ID)
}
