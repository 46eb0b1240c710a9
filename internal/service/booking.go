package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/FleetBooker/internal/domain"
	"github.com/stpnv0/FleetBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	carRepo      ports.CarRepo
	driverRepo   ports.DriverRepo
	accountRepo  ports.AccountRepo
	notifier     ports.BookingNotifier
	clock        ports.Clock
	overdueAfter time.Duration
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	carRepo ports.CarRepo,
	driverRepo ports.DriverRepo,
	accountRepo ports.AccountRepo,
	notifier ports.BookingNotifier,
	clock ports.Clock,
	overdueAfter time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		carRepo:      carRepo,
		driverRepo:   driverRepo,
		accountRepo:  accountRepo,
		notifier:     notifier,
		clock:        clock,
		overdueAfter: overdueAfter,
		logger:       logger,
	}
}

// Create validates the requester, car, driver and window, then delegates the
// conflict check and the insert to the repository as a single transaction.
// The new booking starts unapproved, so it does not block availability until
// someone in the back office approves it.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if err := validateRequester(input); err != nil {
		return nil, err
	}
	if len(input.Note) > domain.MaxNoteLen {
		return nil, fmt.Errorf("%w: note exceeds %d characters", domain.ErrValidation, domain.MaxNoteLen)
	}

	if input.AccountID != nil {
		account, err := s.accountRepo.GetByID(ctx, *input.AccountID)
		if err != nil {
			return nil, fmt.Errorf("check account: %w", err)
		}
		if !account.IsActive {
			return nil, domain.ErrInactiveRequester
		}
	}

	car, err := s.carRepo.GetByID(ctx, input.CarID)
	if err != nil {
		return nil, fmt.Errorf("check car: %w", err)
	}
	if !car.IsActive {
		return nil, domain.ErrInactiveCar
	}

	if input.DriverID != nil {
		driver, err := s.driverRepo.GetByID(ctx, *input.DriverID)
		if err != nil {
			return nil, fmt.Errorf("check driver: %w", err)
		}
		if !driver.IsActive {
			return nil, domain.ErrInactiveDriver
		}
	}

	window := domain.Window{Start: input.StartAt, End: input.EndAt}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		CarID:     input.CarID,
		DriverID:  input.DriverID,
		AccountID: input.AccountID,
		GuestName: input.GuestName,
		StartAt:   input.StartAt.UTC(),
		EndAt:     input.EndAt,
		Approved:  false,
		Note:      input.Note,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", booking.CarID),
		logger.String("status", string(booking.Status(now))),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, car)

	return booking, nil
}

// Approve marks the booking as counting toward availability. The overlap
// re-check and the flag update run in one transaction in the repository,
// since this is the moment a double-book could otherwise slip in.
func (s *BookingService) Approve(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.Approve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve booking: %w", err)
	}

	s.logger.Info("booking approved",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", booking.CarID),
	)

	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		s.logger.Error("failed to get car for approve notification",
			logger.String("car_id", booking.CarID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}

	go s.notifier.NotifyBookingApproved(context.WithoutCancel(ctx), booking, car)

	return booking, nil
}

// Close assigns the end timestamp to an active booking. Closing a booking that
// is not active (upcoming, or already completed) is a no-op that returns the
// booking unchanged without writing.
func (s *BookingService) Close(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	now := s.clock.Now().UTC()
	if booking.Status(now) != domain.BookingStatusActive {
		return booking, nil
	}
	if booking.EndAt != nil {
		// Active with an end already set means the end is still in the
		// future; leave it alone.
		return booking, nil
	}

	booking, err = s.bookingRepo.SetEnd(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("close booking: %w", err)
	}

	s.logger.Info("booking closed",
		logger.String("booking_id", booking.ID),
		logger.String("car_id", booking.CarID),
	)

	if car, carErr := s.carRepo.GetByID(ctx, booking.CarID); carErr == nil {
		go s.notifier.NotifyBookingClosed(context.WithoutCancel(ctx), booking, car)
	}

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByCar(ctx context.Context, carID string) ([]*domain.Booking, error) {
	if _, err := s.carRepo.GetByID(ctx, carID); err != nil {
		return nil, fmt.Errorf("check car: %w", err)
	}
	return s.bookingRepo.ListByCar(ctx, carID)
}

func (s *BookingService) ListByAccount(ctx context.Context, accountID string) ([]*domain.Booking, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}
	return s.bookingRepo.ListByAccount(ctx, accountID)
}

// RemindOverdue notifies the back office about approved open bookings that
// have been running longer than the configured threshold. Read-only: the
// bookings themselves are left untouched.
func (s *BookingService) RemindOverdue(ctx context.Context) ([]*domain.Booking, error) {
	cutoff := s.clock.Now().UTC().Add(-s.overdueAfter)
	overdue, err := s.bookingRepo.ListOpenSince(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list open bookings: %w", err)
	}

	if len(overdue) > 0 {
		s.logger.Info("overdue open bookings found",
			logger.Int("count", len(overdue)),
		)

		go s.notifyOverdue(context.WithoutCancel(ctx), overdue)
	}

	return overdue, nil
}

func (s *BookingService) notifyOverdue(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		car, err := s.carRepo.GetByID(ctx, b.CarID)
		if err != nil {
			s.logger.Error("failed to get car for overdue notification",
				logger.String("car_id", b.CarID),
			)
			continue
		}

		s.notifier.NotifyBookingOverdue(ctx, b, car)
	}
}

func validateRequester(input domain.CreateBookingInput) error {
	hasAccount := input.AccountID != nil && *input.AccountID != ""
	hasGuest := input.GuestName != nil && *input.GuestName != ""

	switch {
	case hasAccount && hasGuest:
		return fmt.Errorf("%w: account_id and guest_name are mutually exclusive", domain.ErrValidation)
	case !hasAccount && !hasGuest:
		return fmt.Errorf("%w: either account_id or guest_name is required", domain.ErrValidation)
	}

	return nil
}
