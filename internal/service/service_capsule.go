package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/models"
)

type timeCapsuleService struct {
	capsules store.TimeCapsuleStorage
	users    store.UserStorage
	now      Clock
	logger   *logger.Logger
}

func NewTimeCapsuleService(capsules store.TimeCapsuleStorage, users store.UserStorage, log *logger.Logger) TimeCapsuleService {
	log.Debug().Msg("creating time capsule service")
	return &timeCapsuleService{capsules: capsules, users: users, now: time.Now, logger: log}
}

// Create seals a capsule until req.Deadline.
//
// Receivers given by id must exist. Receivers given by e-mail are resolved
// to users where possible; the e-mails that match nobody are kept on the
// capsule as they are.
func (s *timeCapsuleService) Create(ctx context.Context, userID string, req models.CapsuleRequest) (models.TimeCapsule, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	if !req.Deadline.After(now) {
		return models.TimeCapsule{}, ErrDeadlineInPast
	}

	receiverIDs := make([]string, 0, len(req.ReceiverIDs)+len(req.ReceiverEmails))
	for _, id := range req.ReceiverIDs {
		if _, err := s.users.GetUser(ctx, id); err != nil {
			if errors.Is(err, store.ErrDocumentNotFound) {
				return models.TimeCapsule{}, fmt.Errorf("%w: %s", ErrReceiverNotFound, id)
			}
			log.Err(err).Str("func", "*timeCapsuleService.Create").Str("receiver_id", id).Msg("error reading receiver")
			return models.TimeCapsule{}, fmt.Errorf("error reading receiver: %w", err)
		}
		if !slices.Contains(receiverIDs, id) {
			receiverIDs = append(receiverIDs, id)
		}
	}

	var unresolved []string
	for _, email := range req.ReceiverEmails {
		user, err := s.users.FindByEmail(ctx, email)
		switch {
		case errors.Is(err, store.ErrDocumentNotFound):
			unresolved = append(unresolved, email)
		case err != nil:
			log.Err(err).Str("func", "*timeCapsuleService.Create").Str("email", email).Msg("error resolving receiver email")
			return models.TimeCapsule{}, fmt.Errorf("error resolving receiver email: %w", err)
		case !slices.Contains(receiverIDs, user.ID):
			receiverIDs = append(receiverIDs, user.ID)
		}
	}

	capsule, err := s.capsules.SaveCapsule(ctx, models.TimeCapsule{
		SenderID:       userID,
		Title:          req.Title,
		Content:        req.Content,
		CreatedAt:      now,
		Deadline:       req.Deadline,
		ReceiverIDs:    receiverIDs,
		ReceiverEmails: unresolved,
		ReceiverPhones: req.ReceiverPhones,
	})
	if err != nil {
		log.Err(err).Str("func", "*timeCapsuleService.Create").Str("user_id", userID).Msg("error saving capsule")
		if capsule.ID != "" {
			return capsule, fmt.Errorf("error delivering capsule: %w", err)
		}
		return models.TimeCapsule{}, fmt.Errorf("error saving capsule: %w", err)
	}

	return capsule, nil
}

func (s *timeCapsuleService) Get(ctx context.Context, userID, capsuleID string) (models.TimeCapsule, error) {
	capsule, err := s.capsules.GetCapsule(ctx, capsuleID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*timeCapsuleService.Get").Str("capsule_id", capsuleID).Msg("error reading capsule")
		return models.TimeCapsule{}, fmt.Errorf("error reading capsule: %w", err)
	}

	switch {
	case capsule.SenderID == userID:
		return capsule, nil
	case !capsule.HasReceiver(userID):
		return models.TimeCapsule{}, ErrForbidden
	case !capsule.IsOpen(s.now()):
		return models.TimeCapsule{}, ErrCapsuleSealed
	}

	return capsule, nil
}

func (s *timeCapsuleService) Delete(ctx context.Context, userID, capsuleID string) error {
	capsule, err := s.capsules.GetCapsule(ctx, capsuleID)
	if err != nil {
		return fmt.Errorf("error reading capsule: %w", err)
	}
	if capsule.SenderID != userID {
		return ErrForbidden
	}

	if err = s.capsules.DeleteCapsule(ctx, capsuleID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*timeCapsuleService.Delete").Str("capsule_id", capsuleID).Msg("error deleting capsule")
		return fmt.Errorf("error deleting capsule: %w", err)
	}

	return nil
}
