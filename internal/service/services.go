package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/validators"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	DiaryService       DiaryService
	PaginationService  PaginationService
	TimeCapsuleService TimeCapsuleService
	ScreenService      ScreenService
	AppInfoService     AppInfoService

	// DiarySessions holds the diary reader state of every user. It is
	// swept by the session worker.
	DiarySessions *viewstate.Sessions[viewstate.DiaryState]
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, log *logger.Logger) (*Services, error) {
	location, err := time.LoadLocation(cfg.App.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidTimeZone, cfg.App.TimeZone, err)
	}

	validator := validators.NewRequestValidator(validators.ParseLanguage(cfg.App.Language))

	appInfo, err := NewAppInfoService(cfg.App, log)
	if err != nil {
		return nil, err
	}

	sessions := viewstate.NewSessions[viewstate.DiaryState](cfg.Workers.SessionTTL)

	pagination := NewPaginationValidationService(validator).
		Wrap(NewPaginationService(storages.DiaryStorage, sessions, log))
	diaries := NewDiaryValidationService(validator).
		Wrap(NewDiaryService(storages.DiaryStorage, storages.BlobStorage, pagination, location, log))

	return &Services{
		AuthService: NewAuthValidationService(validator).
			Wrap(NewAuthService(storages.UserStorage, NewLogResetNotifier(log), cfg.App, log)),
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserStorage, sessions, log)),
		DiaryService:      diaries,
		PaginationService: pagination,
		TimeCapsuleService: NewTimeCapsuleValidationService(validator).
			Wrap(NewTimeCapsuleService(storages.TimeCapsuleStorage, storages.UserStorage, log)),
		ScreenService:  NewScreenService(storages.UserStorage, storages.DiaryStorage, storages.TimeCapsuleStorage, diaries, sessions, log),
		AppInfoService: appInfo,
		DiarySessions:  sessions,
	}, nil
}
