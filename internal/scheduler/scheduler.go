package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type overdueReminder interface {
	RemindOverdue(ctx context.Context) ([]*domain.Booking, error)
}

type Scheduler struct {
	bookingService overdueReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService overdueReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
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
	overdue, err := s.bookingService.RemindOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to check overdue bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range overdue {
		s.logger.Info("booking overdue",
			logger.String("booking_id", b.ID),
			logger.String("car_id", b.CarID),
		)
	}
}
