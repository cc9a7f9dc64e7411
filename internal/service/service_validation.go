package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/validators"
	"github.com/MKhiriev/go-time-diary/models"
)

func validate(ctx context.Context, v validators.Validator, req any) error {
	if err := v.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// AuthValidationService checks auth requests before they reach the inner
// service.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService(v validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: v}
}

func (s *AuthValidationService) Wrap(inner AuthService) AuthService {
	s.AuthService = inner
	return s
}

func (s *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}
	return s.AuthService.Register(ctx, req)
}

func (s *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}
	return s.AuthService.Login(ctx, req)
}

func (s *AuthValidationService) LinkAccount(ctx context.Context, userID string, req models.LinkAccountRequest) (models.User, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}
	return s.AuthService.LinkAccount(ctx, userID, req)
}

func (s *AuthValidationService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	if err := validate(ctx, s.validator, req); err != nil {
		return err
	}
	return s.AuthService.RequestPasswordReset(ctx, req)
}

func (s *AuthValidationService) ResetPassword(ctx context.Context, req models.PasswordResetConfirm) error {
	if err := validate(ctx, s.validator, req); err != nil {
		return err
	}
	return s.AuthService.ResetPassword(ctx, req)
}

type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService(v validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: v}
}

func (s *UserValidationService) Wrap(inner UserService) UserService {
	s.UserService = inner
	return s
}

func (s *UserValidationService) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdate) (models.User, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.User{}, err
	}
	return s.UserService.UpdateProfile(ctx, userID, req)
}

type DiaryValidationService struct {
	DiaryService
	validator validators.Validator
}

func NewDiaryValidationService(v validators.Validator) DiaryServiceWrapper {
	return &DiaryValidationService{validator: v}
}

func (s *DiaryValidationService) Wrap(inner DiaryService) DiaryService {
	s.DiaryService = inner
	return s
}

func (s *DiaryValidationService) CreateDiary(ctx context.Context, userID string, req models.DiaryRequest) (models.Diary, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Diary{}, err
	}
	return s.DiaryService.CreateDiary(ctx, userID, req)
}

func (s *DiaryValidationService) UpdateDiary(ctx context.Context, userID, diaryID string, req models.DiaryRequest) (models.Diary, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.Diary{}, err
	}
	return s.DiaryService.UpdateDiary(ctx, userID, diaryID, req)
}

func (s *DiaryValidationService) TransformImage(ctx context.Context, userID, imageID string, req models.ImageTransformRequest) (models.DiaryImage, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.DiaryImage{}, err
	}
	return s.DiaryService.TransformImage(ctx, userID, imageID, req)
}

type PaginationValidationService struct {
	PaginationService
	validator validators.Validator
}

func NewPaginationValidationService(v validators.Validator) PaginationServiceWrapper {
	return &PaginationValidationService{validator: v}
}

func (s *PaginationValidationService) Wrap(inner PaginationService) PaginationService {
	s.PaginationService = inner
	return s
}

func (s *PaginationValidationService) ReportLayout(ctx context.Context, userID, pageID string, report models.LayoutReport) (models.RenderRequest, error) {
	if err := validate(ctx, s.validator, report); err != nil {
		return models.RenderRequest{}, err
	}
	return s.PaginationService.ReportLayout(ctx, userID, pageID, report)
}

type TimeCapsuleValidationService struct {
	TimeCapsuleService
	validator validators.Validator
}

func NewTimeCapsuleValidationService(v validators.Validator) TimeCapsuleServiceWrapper {
	return &TimeCapsuleValidationService{validator: v}
}

func (s *TimeCapsuleValidationService) Wrap(inner TimeCapsuleService) TimeCapsuleService {
	s.TimeCapsuleService = inner
	return s
}

func (s *TimeCapsuleValidationService) Create(ctx context.Context, userID string, req models.CapsuleRequest) (models.TimeCapsule, error) {
	if err := validate(ctx, s.validator, req); err != nil {
		return models.TimeCapsule{}, err
	}
	return s.TimeCapsuleService.Create(ctx, userID, req)
}
