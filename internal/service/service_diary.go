package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/models"
)

type diaryService struct {
	ownership

	diaries    store.DiaryStorage
	blobs      store.BlobStorage
	pagination PaginationService

	location *time.Location
	now      Clock
	logger   *logger.Logger
}

// NewDiaryService builds a DiaryService. blobs may be nil, in which case
// image uploads fail with store.ErrBlobStorageDisabled. The day of a page
// is decided in location.
func NewDiaryService(diaries store.DiaryStorage, blobs store.BlobStorage, pagination PaginationService, location *time.Location, log *logger.Logger) DiaryService {
	log.Debug().Msg("creating diary service")
	return &diaryService{
		ownership:  ownership{diaries: diaries},
		diaries:    diaries,
		blobs:      blobs,
		pagination: pagination,
		location:   location,
		now:        time.Now,
		logger:     log,
	}
}

// CreateDiary stores a diary with its first, empty page.
func (s *diaryService) CreateDiary(ctx context.Context, userID string, req models.DiaryRequest) (models.Diary, error) {
	log := logger.FromContext(ctx)

	diary, err := s.diaries.SaveDiary(ctx, models.Diary{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   s.now(),
	})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.CreateDiary").Str("user_id", userID).Msg("error saving diary")
		return models.Diary{}, fmt.Errorf("error saving diary: %w", err)
	}

	if _, err = s.appendPage(ctx, diary.ID, 1); err != nil {
		log.Err(err).Str("func", "*diaryService.CreateDiary").Str("diary_id", diary.ID).Msg("error saving first page")
		return diary, err
	}

	return s.diaries.GetDiary(ctx, diary.ID)
}

func (s *diaryService) UpdateDiary(ctx context.Context, userID, diaryID string, req models.DiaryRequest) (models.Diary, error) {
	diary, err := s.diary(ctx, userID, diaryID)
	if err != nil {
		return models.Diary{}, err
	}

	diary.Title = req.Title
	diary.Description = req.Description
	if err = s.diaries.UpdateDiary(ctx, diary); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryService.UpdateDiary").Str("diary_id", diaryID).Msg("error updating diary")
		return models.Diary{}, fmt.Errorf("error updating diary: %w", err)
	}

	return diary, nil
}

func (s *diaryService) DeleteDiary(ctx context.Context, userID, diaryID string) error {
	if _, err := s.diary(ctx, userID, diaryID); err != nil {
		return err
	}

	if err := s.diaries.DeleteDiary(ctx, diaryID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryService.DeleteDiary").Str("diary_id", diaryID).Msg("error deleting diary")
		return fmt.Errorf("error deleting diary: %w", err)
	}

	return nil
}

// SetCover uploads a new cover. The previous cover is removed by the
// storage.
func (s *diaryService) SetCover(ctx context.Context, userID, diaryID string, upload ImageUpload) (models.DiaryImage, error) {
	if _, err := s.diary(ctx, userID, diaryID); err != nil {
		return models.DiaryImage{}, err
	}

	return s.saveUpload(ctx, models.DiaryImage{DiaryID: diaryID}, upload)
}

// AddPage appends a page numbered after the latest one.
func (s *diaryService) AddPage(ctx context.Context, userID, diaryID string) (models.DiaryPage, error) {
	diary, err := s.diary(ctx, userID, diaryID)
	if err != nil {
		return models.DiaryPage{}, err
	}

	number := 1
	if latest, ok, err := s.latestPage(ctx, diary); err != nil {
		return models.DiaryPage{}, err
	} else if ok {
		number = latest.PageNumber + 1
	}

	return s.appendPage(ctx, diaryID, number)
}

func (s *diaryService) UpdatePageContent(ctx context.Context, userID, pageID string, req models.PageContentRequest) (models.DiaryPage, error) {
	log := logger.FromContext(ctx)

	page, _, err := s.page(ctx, userID, pageID)
	if err != nil {
		return models.DiaryPage{}, err
	}

	page.Content = req.Content
	if err = s.diaries.UpdatePage(ctx, page); err != nil {
		log.Err(err).Str("func", "*diaryService.UpdatePageContent").Str("page_id", pageID).Msg("error updating page")
		return models.DiaryPage{}, fmt.Errorf("error updating page: %w", err)
	}

	if _, err = s.pagination.ResetLayout(ctx, userID, pageID, ResetFirst); err != nil {
		log.Err(err).Str("func", "*diaryService.UpdatePageContent").Str("page_id", pageID).Msg("error resetting page layout")
		return page, fmt.Errorf("error resetting page layout: %w", err)
	}

	return s.diaries.GetPage(ctx, pageID)
}

func (s *diaryService) DeletePage(ctx context.Context, userID, pageID string) error {
	if _, _, err := s.page(ctx, userID, pageID); err != nil {
		return err
	}

	if err := s.diaries.DeletePage(ctx, pageID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryService.DeletePage").Str("page_id", pageID).Msg("error deleting page")
		return fmt.Errorf("error deleting page: %w", err)
	}

	return nil
}

func (s *diaryService) AddImage(ctx context.Context, userID, subPageID string, upload ImageUpload) (models.DiaryImage, error) {
	subPage, page, err := s.subPage(ctx, userID, subPageID)
	if err != nil {
		return models.DiaryImage{}, err
	}

	return s.saveUpload(ctx, models.DiaryImage{SubPageID: subPage.ID, DiaryID: page.DiaryID}, upload)
}

func (s *diaryService) TransformImage(ctx context.Context, userID, imageID string, req models.ImageTransformRequest) (models.DiaryImage, error) {
	image, err := s.image(ctx, userID, imageID)
	if err != nil {
		return models.DiaryImage{}, err
	}

	image.Offset = req.Offset
	image.Scale = req.Scale
	image.Rotation = req.Rotation
	if err = s.diaries.UpdateImage(ctx, image); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryService.TransformImage").Str("image_id", imageID).Msg("error updating image")
		return models.DiaryImage{}, fmt.Errorf("error updating image: %w", err)
	}

	return image, nil
}

func (s *diaryService) DeleteImage(ctx context.Context, userID, imageID string) error {
	if _, err := s.image(ctx, userID, imageID); err != nil {
		return err
	}

	if err := s.diaries.DeleteImage(ctx, imageID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*diaryService.DeleteImage").Str("image_id", imageID).Msg("error deleting image")
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}

// EnsureTodayPage checks the latest page against the current day. An empty
// page from an earlier day is moved to today; a written one gets a new page
// after it.
func (s *diaryService) EnsureTodayPage(ctx context.Context, userID, diaryID string) (bool, error) {
	log := logger.FromContext(ctx)

	diary, err := s.diary(ctx, userID, diaryID)
	if err != nil {
		return false, err
	}

	latest, ok, err := s.latestPage(ctx, diary)
	if err != nil {
		return false, err
	}
	if !ok {
		_, err = s.appendPage(ctx, diaryID, 1)
		return err == nil, err
	}

	now := s.now()
	if sameDay(latest.CreatedAt, now, s.location) {
		return false, nil
	}

	if latest.IsEmpty() {
		latest.CreatedAt = now
		if err = s.diaries.UpdatePage(ctx, latest); err != nil {
			log.Err(err).Str("func", "*diaryService.EnsureTodayPage").Str("page_id", latest.ID).Msg("error moving empty page to today")
			return false, fmt.Errorf("error updating page: %w", err)
		}
		return true, nil
	}

	if _, err = s.appendPage(ctx, diaryID, latest.PageNumber+1); err != nil {
		return false, err
	}
	log.Info().Str("diary_id", diaryID).Int("page_number", latest.PageNumber+1).Msg("started a page for today")
	return true, nil
}

// appendPage stores an empty page with its single sub-page.
func (s *diaryService) appendPage(ctx context.Context, diaryID string, number int) (models.DiaryPage, error) {
	log := logger.FromContext(ctx)

	page, err := s.diaries.SavePage(ctx, models.DiaryPage{DiaryID: diaryID, PageNumber: number, CreatedAt: s.now()})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.appendPage").Str("diary_id", diaryID).Msg("error saving page")
		return models.DiaryPage{}, fmt.Errorf("error saving page: %w", err)
	}

	subPage, err := s.diaries.SaveSubPage(ctx, models.DiarySubPage{PageID: page.ID})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.appendPage").Str("page_id", page.ID).Msg("error saving sub-page")
		return page, fmt.Errorf("error saving sub-page: %w", err)
	}
	page.SubPageIDs = append(page.SubPageIDs, subPage.ID)

	return page, nil
}

func (s *diaryService) latestPage(ctx context.Context, diary models.Diary) (models.DiaryPage, bool, error) {
	if len(diary.PageIDs) == 0 {
		return models.DiaryPage{}, false, nil
	}

	page, err := s.diaries.GetPage(ctx, diary.PageIDs[len(diary.PageIDs)-1])
	if err != nil {
		return models.DiaryPage{}, false, fmt.Errorf("error reading latest page: %w", err)
	}
	return page, true, nil
}

// saveUpload stores the file in blob storage and then the image document.
// The object is removed again when the document cannot be saved.
func (s *diaryService) saveUpload(ctx context.Context, image models.DiaryImage, upload ImageUpload) (models.DiaryImage, error) {
	log := logger.FromContext(ctx)

	if s.blobs == nil {
		return models.DiaryImage{}, store.ErrBlobStorageDisabled
	}
	if !strings.HasPrefix(upload.ContentType, "image/") {
		return models.DiaryImage{}, fmt.Errorf("%w: %q", ErrInvalidImage, upload.ContentType)
	}

	info, err := s.blobs.Upload(ctx, store.BlobObject{
		DiaryID:     image.DiaryID,
		SubPageID:   image.SubPageID,
		FileName:    upload.FileName,
		ContentType: upload.ContentType,
		Size:        upload.Size,
		Body:        upload.Body,
	})
	if err != nil {
		log.Err(err).Str("func", "*diaryService.saveUpload").Str("diary_id", image.DiaryID).Msg("error uploading image")
		return models.DiaryImage{}, fmt.Errorf("error uploading image: %w", err)
	}

	image.URL = info.URL
	image.ObjectName = info.ObjectName
	image.Offset = upload.Transform.Offset
	image.Rotation = upload.Transform.Rotation
	image.Scale = upload.Transform.Scale
	if image.Scale <= 0 {
		image.Scale = 1
	}

	saved, err := s.diaries.SaveImage(ctx, image)
	if err != nil && saved.ID == "" {
		log.Err(err).Str("func", "*diaryService.saveUpload").Str("object", info.ObjectName).Msg("error saving image, removing object")
		if delErr := s.blobs.Delete(ctx, info.ObjectName); delErr != nil {
			log.Err(delErr).Str("object", info.ObjectName).Msg("error removing orphaned object")
		}
		return models.DiaryImage{}, fmt.Errorf("error saving image: %w", err)
	}
	if err != nil {
		return saved, fmt.Errorf("error linking image: %w", err)
	}

	return saved, nil
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
