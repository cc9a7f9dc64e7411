package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/models"
)

type timeCapsuleStorage struct {
	users    Repository[models.User]
	capsules Repository[models.TimeCapsule]

	logger *logger.Logger
}

func NewTimeCapsuleStorage(store DocumentStore, log *logger.Logger) TimeCapsuleStorage {
	log.Debug().Msg("creating time capsule storage")

	return &timeCapsuleStorage{
		users:    NewUserRepository(store),
		capsules: NewTimeCapsuleRepository(store),
		logger:   log,
	}
}

func (s *timeCapsuleStorage) GetCapsule(ctx context.Context, capsuleID string) (models.TimeCapsule, error) {
	return s.capsules.Get(ctx, capsuleID)
}

func (s *timeCapsuleStorage) SaveCapsule(ctx context.Context, capsule models.TimeCapsule) (models.TimeCapsule, error) {
	log := logger.FromContext(ctx)

	sender, err := s.users.Get(ctx, capsule.SenderID)
	if err != nil {
		return models.TimeCapsule{}, err
	}

	saved, err := s.capsules.Save(ctx, capsule)
	if err != nil {
		log.Err(err).Str("func", "*timeCapsuleStorage.SaveCapsule").Str("sender_id", capsule.SenderID).Msg("error saving capsule")
		return models.TimeCapsule{}, err
	}

	sender.SentCapsuleIDs = appendID(sender.SentCapsuleIDs, saved.ID)
	if err = s.users.Update(ctx, sender); err != nil {
		log.Err(err).Str("func", "*timeCapsuleStorage.SaveCapsule").Str("capsule_id", saved.ID).Msg("capsule saved but sender was not updated")
		return saved, err
	}

	for _, receiverID := range saved.ReceiverIDs {
		err = s.updateReceiver(ctx, receiverID, func(u *models.User) {
			u.ReceivedCapsuleIDs = appendID(u.ReceivedCapsuleIDs, saved.ID)
		})
		if err != nil {
			log.Err(err).Str("func", "*timeCapsuleStorage.SaveCapsule").Str("capsule_id", saved.ID).Str("receiver_id", receiverID).Msg("capsule saved but receiver was not updated")
			return saved, err
		}
	}

	return saved, nil
}

func (s *timeCapsuleStorage) UpdateCapsule(ctx context.Context, capsule models.TimeCapsule) error {
	return s.capsules.Update(ctx, capsule)
}

func (s *timeCapsuleStorage) DeleteCapsule(ctx context.Context, capsuleID string) error {
	capsule, err := s.capsules.Get(ctx, capsuleID)
	if err != nil {
		return err
	}

	if err = s.capsules.Delete(ctx, capsuleID); err != nil {
		return err
	}

	sender, err := s.users.Get(ctx, capsule.SenderID)
	switch {
	case err == nil:
		sender.SentCapsuleIDs = removeID(sender.SentCapsuleIDs, capsuleID)
		if err = s.users.Update(ctx, sender); err != nil {
			return err
		}
	case !errors.Is(err, ErrDocumentNotFound):
		return err
	}

	for _, receiverID := range capsule.ReceiverIDs {
		err = s.updateReceiver(ctx, receiverID, func(u *models.User) {
			u.ReceivedCapsuleIDs = removeID(u.ReceivedCapsuleIDs, capsuleID)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *timeCapsuleStorage) ListCapsules(ctx context.Context, user models.User) (map[string]models.TimeCapsule, error) {
	capsules := make(map[string]models.TimeCapsule, len(user.SentCapsuleIDs)+len(user.ReceivedCapsuleIDs))

	for _, ids := range [][]string{user.SentCapsuleIDs, user.ReceivedCapsuleIDs} {
		for _, id := range ids {
			if _, ok := capsules[id]; ok {
				continue
			}
			capsule, err := s.capsules.Get(ctx, id)
			if errors.Is(err, ErrDocumentNotFound) {
				continue
			}
			if err != nil {
				return nil, err
			}
			capsules[id] = capsule
		}
	}

	return capsules, nil
}

// updateReceiver applies mutate to a receiver. Receivers that no longer
// exist are skipped.
func (s *timeCapsuleStorage) updateReceiver(ctx context.Context, receiverID string, mutate func(*models.User)) error {
	receiver, err := s.users.Get(ctx, receiverID)
	if err != nil {
		return ignoreNotFound(err)
	}
	mutate(&receiver)
	return s.users.Update(ctx, receiver)
}
