package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

//go:generate mockery --name=tokenPurger --exported --output=./mocks --outpkg=mocks --with-expecter
type tokenPurger interface {
	PurgeExpiredResetTokens(ctx context.Context) (int64, error)
}

// Scheduler runs periodic maintenance: expired password-reset tokens are
// cleared on every tick.
type Scheduler struct {
	purger   tokenPurger
	interval time.Duration
	logger   logger.Logger
}

func New(
	purger tokenPurger,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	n, err := s.purger.PurgeExpiredResetTokens(ctx)
	if err != nil {
		s.logger.Error("failed to purge reset tokens",
			logger.String("error", err.Error()),
		)
		return
	}

	s.logger.Debug("reset token purge finished",
		logger.Int64("cleared", n),
	)
}
