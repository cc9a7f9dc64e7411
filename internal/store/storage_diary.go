package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/models"
)

// diaryStorage is the default implementation of [DiaryStorage].
//
// It orchestrates the entity repositories of the diary tree and, when
// configured, removes uploaded image blobs together with their documents.
type diaryStorage struct {
	users    Repository[models.User]
	diaries  Repository[models.Diary]
	pages    Repository[models.DiaryPage]
	subPages Repository[models.DiarySubPage]
	images   Repository[models.DiaryImage]

	// blobs is nil when no blob storage is configured.
	blobs BlobStorage

	logger *logger.Logger
}

// NewDiaryStorage constructs a [DiaryStorage] over store. blobs may be nil.
func NewDiaryStorage(store DocumentStore, blobs BlobStorage, log *logger.Logger) DiaryStorage {
	log.Debug().Msg("creating diary storage")

	return &diaryStorage{
		users:    NewUserRepository(store),
		diaries:  NewDiaryRepository(store),
		pages:    NewPageRepository(store),
		subPages: NewSubPageRepository(store),
		images:   NewImageRepository(store),
		blobs:    blobs,
		logger:   log,
	}
}

// ── diaries ──────────────────────────────────────────────────────────────────

func (s *diaryStorage) GetDiary(ctx context.Context, diaryID string) (models.Diary, error) {
	return s.diaries.Get(ctx, diaryID)
}

func (s *diaryStorage) ListDiaries(ctx context.Context, user models.User) ([]models.Diary, error) {
	diaries := make([]models.Diary, 0, len(user.DiaryIDs))
	for _, id := range user.DiaryIDs {
		diary, err := s.diaries.Get(ctx, id)
		if errors.Is(err, ErrDocumentNotFound) {
			logger.FromContext(ctx).Warn().Str("func", "*diaryStorage.ListDiaries").Str("diary_id", id).Msg("user references a missing diary")
			continue
		}
		if err != nil {
			return nil, err
		}
		diaries = append(diaries, diary)
	}

	return diaries, nil
}

func (s *diaryStorage) SaveDiary(ctx context.Context, diary models.Diary) (models.Diary, error) {
	log := logger.FromContext(ctx)

	owner, err := s.users.Get(ctx, diary.UserID)
	if err != nil {
		return models.Diary{}, err
	}

	saved, err := s.diaries.Save(ctx, diary)
	if err != nil {
		log.Err(err).Str("func", "*diaryStorage.SaveDiary").Str("user_id", diary.UserID).Msg("error saving diary")
		return models.Diary{}, err
	}

	owner.DiaryIDs = appendID(owner.DiaryIDs, saved.ID)
	if err = s.users.Update(ctx, owner); err != nil {
		log.Err(err).Str("func", "*diaryStorage.SaveDiary").Str("diary_id", saved.ID).Msg("diary saved but owner was not updated")
		return saved, err
	}

	return saved, nil
}

func (s *diaryStorage) UpdateDiary(ctx context.Context, diary models.Diary) error {
	return s.diaries.Update(ctx, diary)
}

func (s *diaryStorage) DeleteDiary(ctx context.Context, diaryID string) error {
	log := logger.FromContext(ctx)

	diary, err := s.diaries.Get(ctx, diaryID)
	if err != nil {
		return err
	}

	for _, pageID := range diary.PageIDs {
		if err = s.deletePageTree(ctx, pageID); err != nil {
			log.Err(err).Str("func", "*diaryStorage.DeleteDiary").Str("diary_id", diaryID).Str("page_id", pageID).Msg("error deleting page")
			return err
		}
	}

	if diary.CoverID != "" {
		if err = s.deleteImageDocument(ctx, diary.CoverID); err != nil {
			return err
		}
	}

	if err = s.diaries.Delete(ctx, diaryID); err != nil {
		return err
	}

	owner, err := s.users.Get(ctx, diary.UserID)
	if err != nil {
		return ignoreNotFound(err)
	}
	owner.DiaryIDs = removeID(owner.DiaryIDs, diaryID)

	return s.users.Update(ctx, owner)
}

// ── pages ────────────────────────────────────────────────────────────────────

func (s *diaryStorage) GetPage(ctx context.Context, pageID string) (models.DiaryPage, error) {
	return s.pages.Get(ctx, pageID)
}

func (s *diaryStorage) SavePage(ctx context.Context, page models.DiaryPage) (models.DiaryPage, error) {
	diary, err := s.diaries.Get(ctx, page.DiaryID)
	if err != nil {
		return models.DiaryPage{}, err
	}

	saved, err := s.pages.Save(ctx, page)
	if err != nil {
		return models.DiaryPage{}, err
	}

	diary.PageIDs = appendID(diary.PageIDs, saved.ID)
	if err = s.diaries.Update(ctx, diary); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryStorage.SavePage").Str("page_id", saved.ID).Msg("page saved but diary was not updated")
		return saved, err
	}

	return saved, nil
}

func (s *diaryStorage) UpdatePage(ctx context.Context, page models.DiaryPage) error {
	return s.pages.Update(ctx, page)
}

func (s *diaryStorage) DeletePage(ctx context.Context, pageID string) error {
	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		return err
	}

	if err = s.deletePageTree(ctx, pageID); err != nil {
		return err
	}

	diary, err := s.diaries.Get(ctx, page.DiaryID)
	if err != nil {
		return ignoreNotFound(err)
	}
	diary.PageIDs = removeID(diary.PageIDs, pageID)

	return s.diaries.Update(ctx, diary)
}

// deletePageTree deletes the page and everything below it without touching
// the diary.
func (s *diaryStorage) deletePageTree(ctx context.Context, pageID string) error {
	page, err := s.pages.Get(ctx, pageID)
	if err != nil {
		return ignoreNotFound(err)
	}

	for _, subPageID := range page.SubPageIDs {
		if err = s.deleteSubPageTree(ctx, subPageID); err != nil {
			return err
		}
	}

	return s.pages.Delete(ctx, pageID)
}

// ── sub-pages ────────────────────────────────────────────────────────────────

func (s *diaryStorage) GetSubPage(ctx context.Context, subPageID string) (models.DiarySubPage, error) {
	return s.subPages.Get(ctx, subPageID)
}

func (s *diaryStorage) SaveSubPage(ctx context.Context, subPage models.DiarySubPage) (models.DiarySubPage, error) {
	page, err := s.pages.Get(ctx, subPage.PageID)
	if err != nil {
		return models.DiarySubPage{}, err
	}

	saved, err := s.subPages.Save(ctx, subPage)
	if err != nil {
		return models.DiarySubPage{}, err
	}

	page.SubPageIDs = appendID(page.SubPageIDs, saved.ID)
	if err = s.pages.Update(ctx, page); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryStorage.SaveSubPage").Str("sub_page_id", saved.ID).Msg("sub-page saved but page was not updated")
		return saved, err
	}

	return saved, nil
}

func (s *diaryStorage) UpdateSubPage(ctx context.Context, subPage models.DiarySubPage) error {
	return s.subPages.Update(ctx, subPage)
}

func (s *diaryStorage) DeleteSubPage(ctx context.Context, subPageID string) error {
	subPage, err := s.subPages.Get(ctx, subPageID)
	if err != nil {
		return err
	}

	if err = s.deleteSubPageTree(ctx, subPageID); err != nil {
		return err
	}

	page, err := s.pages.Get(ctx, subPage.PageID)
	if err != nil {
		return ignoreNotFound(err)
	}
	page.SubPageIDs = removeID(page.SubPageIDs, subPageID)

	return s.pages.Update(ctx, page)
}

func (s *diaryStorage) deleteSubPageTree(ctx context.Context, subPageID string) error {
	subPage, err := s.subPages.Get(ctx, subPageID)
	if err != nil {
		return ignoreNotFound(err)
	}

	for _, imageID := range subPage.ImageIDs {
		if err = s.deleteImageDocument(ctx, imageID); err != nil {
			return err
		}
	}

	return s.subPages.Delete(ctx, subPageID)
}

// ── images ───────────────────────────────────────────────────────────────────

func (s *diaryStorage) GetImage(ctx context.Context, imageID string) (models.DiaryImage, error) {
	return s.images.Get(ctx, imageID)
}

func (s *diaryStorage) SaveImage(ctx context.Context, image models.DiaryImage) (models.DiaryImage, error) {
	if image.SubPageID == "" {
		return s.saveCover(ctx, image)
	}

	subPage, err := s.subPages.Get(ctx, image.SubPageID)
	if err != nil {
		return models.DiaryImage{}, err
	}

	saved, err := s.images.Save(ctx, image)
	if err != nil {
		return models.DiaryImage{}, err
	}

	subPage.ImageIDs = appendID(subPage.ImageIDs, saved.ID)
	if err = s.subPages.Update(ctx, subPage); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryStorage.SaveImage").Str("image_id", saved.ID).Msg("image saved but sub-page was not updated")
		return saved, err
	}

	return saved, nil
}

// saveCover stores image as the diary cover, replacing the previous one.
func (s *diaryStorage) saveCover(ctx context.Context, image models.DiaryImage) (models.DiaryImage, error) {
	diary, err := s.diaries.Get(ctx, image.DiaryID)
	if err != nil {
		return models.DiaryImage{}, err
	}

	saved, err := s.images.Save(ctx, image)
	if err != nil {
		return models.DiaryImage{}, err
	}

	previous := diary.CoverID
	diary.CoverID = saved.ID
	if err = s.diaries.Update(ctx, diary); err != nil {
		return saved, err
	}

	if previous != "" {
		if err = s.deleteImageDocument(ctx, previous); err != nil {
			return saved, err
		}
	}

	return saved, nil
}

func (s *diaryStorage) UpdateImage(ctx context.Context, image models.DiaryImage) error {
	return s.images.Update(ctx, image)
}

func (s *diaryStorage) DeleteImage(ctx context.Context, imageID string) error {
	image, err := s.images.Get(ctx, imageID)
	if err != nil {
		return err
	}

	if err = s.deleteImageDocument(ctx, imageID); err != nil {
		return err
	}

	if image.SubPageID == "" {
		diary, err := s.diaries.Get(ctx, image.DiaryID)
		if err != nil {
			return ignoreNotFound(err)
		}
		if diary.CoverID != imageID {
			return nil
		}
		diary.CoverID = ""
		return s.diaries.Update(ctx, diary)
	}

	subPage, err := s.subPages.Get(ctx, image.SubPageID)
	if err != nil {
		return ignoreNotFound(err)
	}
	subPage.ImageIDs = removeID(subPage.ImageIDs, imageID)

	return s.subPages.Update(ctx, subPage)
}

// deleteImageDocument removes the image document and its blob.
func (s *diaryStorage) deleteImageDocument(ctx context.Context, imageID string) error {
	image, err := s.images.Get(ctx, imageID)
	if err != nil {
		return ignoreNotFound(err)
	}

	if err = s.images.Delete(ctx, imageID); err != nil {
		return err
	}

	if image.ObjectName != "" && s.blobs != nil {
		if err = s.blobs.Delete(ctx, image.ObjectName); err != nil {
			return fmt.Errorf("image %s deleted but blob was not: %w", imageID, err)
		}
	}

	return nil
}

// ── tree ─────────────────────────────────────────────────────────────────────

func (s *diaryStorage) LoadTree(ctx context.Context, diaryID string) (DiaryTree, error) {
	diary, err := s.diaries.Get(ctx, diaryID)
	if err != nil {
		return DiaryTree{}, err
	}

	tree := DiaryTree{
		Diary:    diary,
		Pages:    make(map[string]models.DiaryPage, len(diary.PageIDs)),
		SubPages: make(map[string]models.DiarySubPage),
		Images:   make(map[string]models.DiaryImage),
	}

	if diary.CoverID != "" {
		if err = s.loadImage(ctx, tree, diary.CoverID); err != nil {
			return DiaryTree{}, err
		}
	}

	for _, pageID := range diary.PageIDs {
		page, err := s.pages.Get(ctx, pageID)
		if errors.Is(err, ErrDocumentNotFound) {
			continue
		}
		if err != nil {
			return DiaryTree{}, err
		}
		tree.Pages[pageID] = page

		for _, subPageID := range page.SubPageIDs {
			subPage, err := s.subPages.Get(ctx, subPageID)
			if errors.Is(err, ErrDocumentNotFound) {
				continue
			}
			if err != nil {
				return DiaryTree{}, err
			}
			tree.SubPages[subPageID] = subPage

			for _, imageID := range subPage.ImageIDs {
				if err = s.loadImage(ctx, tree, imageID); err != nil {
					return DiaryTree{}, err
				}
			}
		}
	}

	return tree, nil
}

func (s *diaryStorage) loadImage(ctx context.Context, tree DiaryTree, imageID string) error {
	image, err := s.images.Get(ctx, imageID)
	if err != nil {
		return ignoreNotFound(err)
	}
	tree.Images[imageID] = image
	return nil
}
