package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/models"
)

type userStorage struct {
	users       Repository[models.User]
	credentials Repository[models.Credentials]
	usernames   IndexRepository
	emails      IndexRepository

	diaries DiaryStorage

	logger *logger.Logger
}

// NewUserStorage constructs a [UserStorage]. Deleting a user deletes its
// diaries through diaries.
func NewUserStorage(store DocumentStore, diaries DiaryStorage, log *logger.Logger) UserStorage {
	log.Debug().Msg("creating user storage")

	return &userStorage{
		users:       NewUserRepository(store),
		credentials: NewCredentialsRepository(store),
		usernames:   NewUsernameIndex(store),
		emails:      NewEmailIndex(store),
		diaries:     diaries,
		logger:      log,
	}
}

func (s *userStorage) GetUser(ctx context.Context, userID string) (models.User, error) {
	return s.users.Get(ctx, userID)
}

func (s *userStorage) FindByEmail(ctx context.Context, email string) (models.User, error) {
	userID, err := s.emails.Lookup(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Get(ctx, userID)
}

func (s *userStorage) FindByUsername(ctx context.Context, username string) (models.User, error) {
	userID, err := s.usernames.Lookup(ctx, username)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Get(ctx, userID)
}

func (s *userStorage) SaveUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.checkFree(ctx, s.usernames, user.Username, "", ErrUsernameTaken); err != nil {
		return models.User{}, err
	}
	if err := s.checkFree(ctx, s.emails, user.Email, "", ErrEmailTaken); err != nil {
		return models.User{}, err
	}

	saved, err := s.users.Save(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userStorage.SaveUser").Msg("error saving user")
		return models.User{}, err
	}

	if err = claim(ctx, s.usernames, saved.Username, saved.ID, ErrUsernameTaken); err != nil {
		log.Err(err).Str("func", "*userStorage.SaveUser").Str("user_id", saved.ID).Msg("user saved but username was not indexed")
		return saved, err
	}
	if err = claim(ctx, s.emails, saved.Email, saved.ID, ErrEmailTaken); err != nil {
		log.Err(err).Str("func", "*userStorage.SaveUser").Str("user_id", saved.ID).Msg("user saved but email was not indexed")
		return saved, err
	}

	return saved, nil
}

func (s *userStorage) UpdateUser(ctx context.Context, user models.User) error {
	current, err := s.users.Get(ctx, user.ID)
	if err != nil {
		return err
	}

	// both values are checked before anything is claimed, so a rejected
	// update leaves the indexes as they were
	if err = s.checkFree(ctx, s.usernames, user.Username, user.ID, ErrUsernameTaken); err != nil {
		return err
	}
	if err = s.checkFree(ctx, s.emails, user.Email, user.ID, ErrEmailTaken); err != nil {
		return err
	}

	newUsername := current.Username == "" || changed(current.Username, user.Username)
	newEmail := current.Email == "" || changed(current.Email, user.Email)
	// undo drops the claims this update added when a later step fails
	undo := func(username, email bool) {
		if username && newUsername {
			_ = release(ctx, s.usernames, user.Username, user.ID)
		}
		if email && newEmail {
			_ = release(ctx, s.emails, user.Email, user.ID)
		}
	}

	if err = claim(ctx, s.usernames, user.Username, user.ID, ErrUsernameTaken); err != nil {
		return err
	}
	if err = claim(ctx, s.emails, user.Email, user.ID, ErrEmailTaken); err != nil {
		undo(true, false)
		return err
	}

	if err = s.users.Update(ctx, user); err != nil {
		undo(true, true)
		return err
	}

	if changed(current.Username, user.Username) {
		if err = release(ctx, s.usernames, current.Username, user.ID); err != nil {
			return err
		}
	}
	if changed(current.Email, user.Email) {
		if err = release(ctx, s.emails, current.Email, user.ID); err != nil {
			return err
		}
	}

	return nil
}

func (s *userStorage) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return err
	}

	for _, diaryID := range user.DiaryIDs {
		if err = ignoreNotFound(s.diaries.DeleteDiary(ctx, diaryID)); err != nil {
			log.Err(err).Str("func", "*userStorage.DeleteUser").Str("user_id", userID).Str("diary_id", diaryID).Msg("error deleting diary")
			return err
		}
	}

	if err = s.credentials.Delete(ctx, userID); err != nil {
		return err
	}
	if err = release(ctx, s.usernames, user.Username, userID); err != nil {
		return err
	}
	if err = release(ctx, s.emails, user.Email, userID); err != nil {
		return err
	}

	return s.users.Delete(ctx, userID)
}

func (s *userStorage) GetCredentials(ctx context.Context, userID string) (models.Credentials, error) {
	return s.credentials.Get(ctx, userID)
}

func (s *userStorage) SaveCredentials(ctx context.Context, credentials models.Credentials) error {
	return s.credentials.Update(ctx, credentials)
}

// checkFree fails with taken when value belongs to someone other than
// userID. An empty userID means nobody may own it yet.
func (s *userStorage) checkFree(ctx context.Context, index IndexRepository, value, userID string, taken error) error {
	if value == "" {
		return nil
	}

	owner, err := index.Lookup(ctx, value)
	switch {
	case err == nil && userID != "" && owner == userID:
		return nil
	case err == nil:
		return taken
	case errors.Is(err, ErrDocumentNotFound):
		return nil
	default:
		return err
	}
}

func claim(ctx context.Context, index IndexRepository, value, userID string, taken error) error {
	if value == "" {
		return nil
	}

	err := index.Claim(ctx, value, userID)
	if errors.Is(err, ErrIndexAlreadyClaimed) {
		return fmt.Errorf("%w: %w", taken, err)
	}
	return err
}

func release(ctx context.Context, index IndexRepository, value, userID string) error {
	if value == "" {
		return nil
	}
	return index.Release(ctx, value, userID)
}

// changed reports whether two index values normalize to different keys.
func changed(before, after string) bool {
	if before == "" {
		return false
	}
	a, errA := indexKey(before)
	b, errB := indexKey(after)
	return errA != nil || errB != nil || a != b
}
