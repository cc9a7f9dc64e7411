package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

// DiarySessionKey is the session of the diary reader of userID.
func DiarySessionKey(userID, diaryID string) viewstate.SessionKey {
	return viewstate.SessionKey{UserID: userID, Screen: "diary/" + diaryID}
}

// ownership resolves entities up to their diary and checks its owner.
type ownership struct {
	diaries store.DiaryStorage
}

func (o ownership) diary(ctx context.Context, userID, diaryID string) (models.Diary, error) {
	diary, err := o.diaries.GetDiary(ctx, diaryID)
	if err != nil {
		return models.Diary{}, fmt.Errorf("error reading diary: %w", err)
	}
	if diary.UserID != userID {
		return models.Diary{}, fmt.Errorf("%w: diary %s", ErrForbidden, diaryID)
	}
	return diary, nil
}

func (o ownership) page(ctx context.Context, userID, pageID string) (models.DiaryPage, models.Diary, error) {
	page, err := o.diaries.GetPage(ctx, pageID)
	if err != nil {
		return models.DiaryPage{}, models.Diary{}, fmt.Errorf("error reading page: %w", err)
	}
	diary, err := o.diary(ctx, userID, page.DiaryID)
	if err != nil {
		return models.DiaryPage{}, models.Diary{}, err
	}
	return page, diary, nil
}

func (o ownership) subPage(ctx context.Context, userID, subPageID string) (models.DiarySubPage, models.DiaryPage, error) {
	subPage, err := o.diaries.GetSubPage(ctx, subPageID)
	if err != nil {
		return models.DiarySubPage{}, models.DiaryPage{}, fmt.Errorf("error reading sub-page: %w", err)
	}
	page, _, err := o.page(ctx, userID, subPage.PageID)
	if err != nil {
		return models.DiarySubPage{}, models.DiaryPage{}, err
	}
	return subPage, page, nil
}

func (o ownership) image(ctx context.Context, userID, imageID string) (models.DiaryImage, error) {
	image, err := o.diaries.GetImage(ctx, imageID)
	if err != nil {
		return models.DiaryImage{}, fmt.Errorf("error reading image: %w", err)
	}
	if _, err = o.diary(ctx, userID, image.DiaryID); err != nil {
		return models.DiaryImage{}, err
	}
	return image, nil
}
