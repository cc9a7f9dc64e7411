package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/pagination"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/viewstate"
	"github.com/MKhiriev/go-time-diary/models"
)

// paginationService runs the layout loop of diary pages.
//
// Page text and sub-page boundaries always come from storage. Phases and
// iterations are never stored: they live in the diary session of the
// user, which is opened on demand.
type paginationService struct {
	ownership

	diaries  store.DiaryStorage
	sessions *viewstate.Sessions[viewstate.DiaryState]
	engine   *pagination.Engine
	logger   *logger.Logger
}

func NewPaginationService(diaries store.DiaryStorage, sessions *viewstate.Sessions[viewstate.DiaryState], log *logger.Logger) PaginationService {
	log.Debug().Msg("creating pagination service")
	return &paginationService{
		ownership: ownership{diaries: diaries},
		diaries:   diaries,
		sessions:  sessions,
		engine:    pagination.NewEngine(),
		logger:    log,
	}
}

// layout is one loaded page chain together with the session it belongs to.
type layout struct {
	page   models.DiaryPage
	diary  models.Diary
	chain  *pagination.Chain
	holder *viewstate.Holder[viewstate.DiaryState]
	state  viewstate.DiaryState
}

func (s *paginationService) NextRender(ctx context.Context, userID, pageID string) (models.RenderRequest, error) {
	l, err := s.load(ctx, userID, pageID)
	if err != nil {
		return models.RenderRequest{}, err
	}

	return s.prepare(ctx, l)
}

// ReportLayout applies a measured overflow and returns the next render.
// Reports for anything but the outstanding measurement fail with
// pagination.ErrStaleMeasurement and change nothing.
func (s *paginationService) ReportLayout(ctx context.Context, userID, pageID string, report models.LayoutReport) (models.RenderRequest, error) {
	log := logger.FromContext(ctx)

	l, err := s.load(ctx, userID, pageID)
	if err != nil {
		return models.RenderRequest{}, err
	}

	effects, err := s.engine.Report(l.chain, report)
	if err != nil {
		log.Warn().Err(err).Str("page_id", pageID).Str("sub_page_id", report.SubPageID).Msg("layout report rejected")
		return models.RenderRequest{}, err
	}

	if err = s.persist(ctx, l, effects); err != nil {
		return models.RenderRequest{}, err
	}

	return s.prepare(ctx, l)
}

func (s *paginationService) ResetLayout(ctx context.Context, userID, pageID string, scope ResetScope) (models.RenderRequest, error) {
	l, err := s.load(ctx, userID, pageID)
	if err != nil {
		return models.RenderRequest{}, err
	}

	switch scope {
	case ResetAll:
		s.engine.ResetAll(l.chain)
	default:
		if err = s.engine.Reset(l.chain, 0); err != nil {
			return models.RenderRequest{}, err
		}
	}

	return s.prepare(ctx, l)
}

func (s *paginationService) prepare(ctx context.Context, l *layout) (models.RenderRequest, error) {
	req, effects, err := s.engine.Prepare(l.chain)
	if err != nil {
		return models.RenderRequest{}, err
	}

	if err = s.persist(ctx, l, effects); err != nil {
		return models.RenderRequest{}, err
	}

	return req, nil
}

// load reads the page and its sub-pages and restores their phases from
// the session.
func (s *paginationService) load(ctx context.Context, userID, pageID string) (*layout, error) {
	log := logger.FromContext(ctx)

	page, diary, err := s.page(ctx, userID, pageID)
	if err != nil {
		return nil, err
	}

	holder := s.sessions.Open(DiarySessionKey(userID, diary.ID))
	state, ok := holder.Get().Data()
	if ok {
		state = state.Clone()
	} else {
		state = viewstate.DiaryState{
			Pages:    map[string]models.DiaryPage{},
			SubPages: map[string]models.DiarySubPage{},
			Images:   map[string]models.DiaryImage{},
		}
	}
	state.Diary = diary
	state.Pages[page.ID] = page

	subPages := make(map[string]models.DiarySubPage, len(page.SubPageIDs))
	for _, id := range page.SubPageIDs {
		sp, err := s.diaries.GetSubPage(ctx, id)
		if errors.Is(err, store.ErrDocumentNotFound) {
			log.Warn().Str("page_id", pageID).Str("sub_page_id", id).Msg("sub-page listed by page is missing")
			continue
		}
		if err != nil {
			log.Err(err).Str("func", "*paginationService.load").Str("sub_page_id", id).Msg("error reading sub-page")
			return nil, fmt.Errorf("error reading sub-page: %w", err)
		}
		if known, ok := state.SubPages[id]; ok {
			sp.Phase = known.Phase
			sp.Iteration = known.Iteration
		}
		subPages[id] = sp
	}

	chain := pagination.NewChain(page, subPages)
	if len(chain.SubPages) == 0 {
		sp, err := s.diaries.SaveSubPage(ctx, models.DiarySubPage{PageID: page.ID})
		if err != nil {
			log.Err(err).Str("func", "*paginationService.load").Str("page_id", pageID).Msg("error creating first sub-page")
			return nil, fmt.Errorf("error creating first sub-page: %w", err)
		}
		chain.SubPages = append(chain.SubPages, sp)
	}

	return &layout{page: page, diary: diary, chain: chain, holder: holder, state: state}, nil
}

// persist stores the effects of one step and publishes the chain to the
// session. A new sub-page costs two writes: the sub-page and its page.
func (s *paginationService) persist(ctx context.Context, l *layout, effects pagination.Effects) error {
	log := logger.FromContext(ctx)

	for _, sp := range effects.Updated {
		if sp.ID == "" {
			continue
		}
		if err := s.diaries.UpdateSubPage(ctx, sp); err != nil {
			log.Err(err).Str("func", "*paginationService.persist").Str("sub_page_id", sp.ID).Msg("error updating sub-page")
			return fmt.Errorf("error updating sub-page: %w", err)
		}
	}

	for _, sp := range l.chain.SubPages {
		if sp.ID != "" {
			continue
		}
		saved, err := s.diaries.SaveSubPage(ctx, sp)
		if err != nil {
			log.Err(err).Str("func", "*paginationService.persist").Str("page_id", l.page.ID).Msg("error creating sub-page")
			return fmt.Errorf("error creating sub-page: %w", err)
		}
		l.chain.AssignIDs(saved.ID)
	}

	for _, id := range effects.Deleted {
		if err := s.diaries.DeleteSubPage(ctx, id); err != nil && !errors.Is(err, store.ErrDocumentNotFound) {
			log.Err(err).Str("func", "*paginationService.persist").Str("sub_page_id", id).Msg("error deleting sub-page")
			return fmt.Errorf("error deleting sub-page: %w", err)
		}
		delete(l.state.SubPages, id)
	}

	l.page.SubPageIDs = l.chain.IDs()
	l.state.Pages[l.page.ID] = l.page
	for _, sp := range l.chain.SubPages {
		l.state.SubPages[sp.ID] = sp
	}

	if !l.holder.Set(viewstate.Success(l.state)) {
		log.Debug().Str("diary_id", l.diary.ID).Msg("diary session closed during layout")
	}
	return nil
}
