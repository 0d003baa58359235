package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

type BookingRepository interface {
	FindAll(ctx context.Context) ([]domain.Booking, error)
	FindByCode(ctx context.Context, code uint) (domain.Booking, error)
	Exists(ctx context.Context, code uint) (bool, error)
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	Update(ctx context.Context, booking domain.Booking) error
	Delete(ctx context.Context, code uint) error
}

type BookingService struct {
	repo       BookingRepository
	celebrants existsChecker
	now        func() time.Time
}

func NewBookingService(repo BookingRepository, celebrants CelebrantRepository) *BookingService {
	return &BookingService{
		repo:       repo,
		celebrants: celebrants,
		now:        time.Now,
	}
}

// List returns every booking with its celebrant embedded.
func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return bookings, nil
}

func (s *BookingService) Get(ctx context.Context, code uint) (domain.Booking, error) {
	booking, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	return booking, nil
}

func (s *BookingService) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	booking.Code = 0
	booking.Celebrant = nil
	booking.UpdatedAt = nil
	if err := s.check(ctx, &booking); err != nil {
		return domain.Booking{}, err
	}

	booking.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, booking)
	if errors.Is(err, ErrCelebrantRefNotExists) {
		return domain.Booking{}, invalid(err)
	}
	if err != nil {
		return domain.Booking{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update replaces every writable field of the booking identified by code,
// including the owning celebrant. The creation time on the input is ignored.
func (s *BookingService) Update(ctx context.Context, code uint, booking domain.Booking) error {
	if booking.Code != code {
		return invalid(ErrCodeMismatch)
	}

	booking.Celebrant = nil
	if err := s.check(ctx, &booking); err != nil {
		return err
	}

	updatedAt := s.now().UTC()
	booking.UpdatedAt = &updatedAt

	err := s.repo.Update(ctx, booking)
	if errors.Is(err, ErrUpdateConflict) {
		err = resolveConflict(ctx, s.repo, code, err, ErrBookingNotFound)
		if errors.Is(err, ErrUpdateConflict) {
			zap.L().Error("booking update conflict", zap.Uint("code", code))
		}
	}
	if errors.Is(err, ErrCelebrantRefNotExists) {
		return invalid(err)
	}
	if err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

func (s *BookingService) Delete(ctx context.Context, code uint) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// check normalizes and validates the booking, then confirms its celebrant exists.
func (s *BookingService) check(ctx context.Context, booking *domain.Booking) error {
	booking.Normalize()
	if err := booking.Validate(); err != nil {
		return invalid(err)
	}

	exists, err := s.celebrants.Exists(ctx, booking.CelebrantCode)
	if err != nil {
		return fmt.Errorf("s.celebrants.Exists -> %w", err)
	}
	if !exists {
		return invalid(ErrCelebrantRefNotExists)
	}

	return nil
}
