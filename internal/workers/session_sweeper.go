package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-time-diary/internal/logger"
)

// SessionSweeper periodically evicts idle screen sessions.
type SessionSweeper struct {
	sessions Sweeper
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewSessionSweeper(sessions Sweeper, interval time.Duration, log *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		now:      time.Now,
		logger:   log,
	}
}

func (s *SessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SessionSweeper) sweep() {
	if evicted := s.sessions.Sweep(s.now()); evicted > 0 {
		s.logger.Debug().Int("evicted", evicted).Msg("idle sessions evicted")
	}
}
