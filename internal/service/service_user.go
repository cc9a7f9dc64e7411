package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

type userService struct {
	users    store.UserStorage
	sessions *viewstate.Sessions[viewstate.DiaryState]
	logger   *logger.Logger
}

func NewUserService(users store.UserStorage, sessions *viewstate.Sessions[viewstate.DiaryState], log *logger.Logger) UserService {
	log.Debug().Msg("creating user service")
	return &userService{users: users, sessions: sessions, logger: log}
}

func (s *userService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetUser").Str("user_id", userID).Msg("error reading user")
		return models.User{}, fmt.Errorf("error reading user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the public fields of a user. An empty e-mail keeps
// the current one; anonymous users get an e-mail only by linking.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if req.Email != "" {
		if user.Anonymous {
			return models.User{}, fmt.Errorf("%w: anonymous account must be linked to set an email", ErrInvalidDataProvided)
		}
		user.Email = req.Email
	}
	user.Username = req.Username
	user.Name = req.Name
	user.Surname = req.Surname

	if err = s.users.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*userService.UpdateProfile").Str("user_id", userID).Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

// DeleteUser removes the user and closes their screen sessions. Capsules
// already sent to other users are kept.
func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.DeleteUser").Str("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	s.sessions.CloseUser(userID)
	return nil
}
