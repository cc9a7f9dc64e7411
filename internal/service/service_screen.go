package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

type screenService struct {
	users    store.UserStorage
	diaries  store.DiaryStorage
	capsules store.TimeCapsuleStorage

	diaryService DiaryService
	sessions     *viewstate.Sessions[viewstate.DiaryState]

	now    Clock
	logger *logger.Logger
}

func NewScreenService(
	users store.UserStorage,
	diaries store.DiaryStorage,
	capsules store.TimeCapsuleStorage,
	diaryService DiaryService,
	sessions *viewstate.Sessions[viewstate.DiaryState],
	log *logger.Logger,
) ScreenService {
	log.Debug().Msg("creating screen service")
	return &screenService{
		users:        users,
		diaries:      diaries,
		capsules:     capsules,
		diaryService: diaryService,
		sessions:     sessions,
		now:          time.Now,
		logger:       log,
	}
}

func (s *screenService) Home(ctx context.Context, userID string, position int) viewstate.State[viewstate.DiaryListState] {
	log := logger.FromContext(ctx)

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*screenService.Home").Str("user_id", userID).Msg("error reading user")
		return viewstate.Failure[viewstate.DiaryListState](err)
	}

	diaries, err := s.diaries.ListDiaries(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*screenService.Home").Str("user_id", userID).Msg("error listing diaries")
		return viewstate.Failure[viewstate.DiaryListState](err)
	}

	covers := make(map[string]models.DiaryImage)
	for _, d := range diaries {
		if d.CoverID == "" {
			continue
		}
		cover, err := s.diaries.GetImage(ctx, d.CoverID)
		if errors.Is(err, store.ErrDocumentNotFound) {
			log.Warn().Str("diary_id", d.ID).Str("image_id", d.CoverID).Msg("diary cover is missing")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*screenService.Home").Str("image_id", d.CoverID).Msg("error reading cover")
			return viewstate.Failure[viewstate.DiaryListState](err)
		}
		covers[cover.ID] = cover
	}

	return viewstate.Success(viewstate.NewDiaryListState(user, diaries, covers, position))
}

// Diary loads the whole diary after making sure its latest page is today's.
// Layout phases already known to the session survive the reload.
func (s *screenService) Diary(ctx context.Context, userID, diaryID string, pagerIndex int) viewstate.State[viewstate.DiaryState] {
	log := logger.FromContext(ctx)

	if _, err := s.diaryService.EnsureTodayPage(ctx, userID, diaryID); err != nil {
		log.Err(err).Str("func", "*screenService.Diary").Str("diary_id", diaryID).Msg("day boundary check failed")
		return viewstate.Failure[viewstate.DiaryState](err)
	}

	tree, err := s.diaries.LoadTree(ctx, diaryID)
	if err != nil {
		log.Err(err).Str("func", "*screenService.Diary").Str("diary_id", diaryID).Msg("error loading diary")
		return viewstate.Failure[viewstate.DiaryState](err)
	}

	state := viewstate.DiaryState{
		Diary:      tree.Diary,
		Pages:      tree.Pages,
		SubPages:   tree.SubPages,
		Images:     tree.Images,
		PagerIndex: pagerIndex,
	}

	holder := s.sessions.Open(DiarySessionKey(userID, diaryID))
	if previous, ok := holder.Get().Data(); ok {
		for id, sp := range state.SubPages {
			if known, ok := previous.SubPages[id]; ok {
				sp.Phase = known.Phase
				sp.Iteration = known.Iteration
				state.SubPages[id] = sp
			}
		}
	}
	holder.Set(viewstate.Success(state.Clone()))

	return viewstate.Success(state)
}

func (s *screenService) Capsules(ctx context.Context, userID string, tab models.CapsuleTab) viewstate.State[viewstate.CapsuleState] {
	log := logger.FromContext(ctx)

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*screenService.Capsules").Str("user_id", userID).Msg("error reading user")
		return viewstate.Failure[viewstate.CapsuleState](err)
	}

	capsules, err := s.capsules.ListCapsules(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*screenService.Capsules").Str("user_id", userID).Msg("error listing capsules")
		return viewstate.Failure[viewstate.CapsuleState](err)
	}

	users := map[string]models.User{user.ID: user}
	for _, c := range capsules {
		for _, id := range append([]string{c.SenderID}, c.ReceiverIDs...) {
			if _, ok := users[id]; ok {
				continue
			}
			u, err := s.users.GetUser(ctx, id)
			if errors.Is(err, store.ErrDocumentNotFound) {
				continue
			}
			if err != nil {
				log.Err(err).Str("func", "*screenService.Capsules").Str("user_id", id).Msg("error reading capsule participant")
				return viewstate.Failure[viewstate.CapsuleState](err)
			}
			users[id] = u
		}
	}

	return viewstate.Success(viewstate.CapsuleState{
		Capsules:      capsules,
		Users:         users,
		CurrentUserID: user.ID,
		ActiveTab:     tab,
		Now:           s.now(),
	})
}
