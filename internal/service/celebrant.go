package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

type CelebrantRepository interface {
	FindAll(ctx context.Context) ([]domain.Celebrant, error)
	FindByCode(ctx context.Context, code uint) (domain.Celebrant, error)
	Exists(ctx context.Context, code uint) (bool, error)
	Create(ctx context.Context, celebrant domain.Celebrant) (domain.Celebrant, error)
	Update(ctx context.Context, celebrant domain.Celebrant) error
	Delete(ctx context.Context, code uint) error
}

type CelebrantService struct {
	repo CelebrantRepository
	now  func() time.Time
}

func NewCelebrantService(repo CelebrantRepository) *CelebrantService {
	return &CelebrantService{
		repo: repo,
		now:  time.Now,
	}
}

// List returns every celebrant with their bookings.
func (s *CelebrantService) List(ctx context.Context) ([]domain.Celebrant, error) {
	celebrants, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return celebrants, nil
}

func (s *CelebrantService) Get(ctx context.Context, code uint) (domain.Celebrant, error) {
	celebrant, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return domain.Celebrant{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	return celebrant, nil
}

// Create stores a new celebrant. The code and any bookings on the input are
// ignored; the store assigns the code and the creation time is stamped here.
func (s *CelebrantService) Create(ctx context.Context, celebrant domain.Celebrant) (domain.Celebrant, error) {
	celebrant.Code = 0
	celebrant.Bookings = nil
	celebrant.UpdatedAt = nil
	celebrant.Normalize()
	if err := celebrant.Validate(); err != nil {
		return domain.Celebrant{}, invalid(err)
	}

	celebrant.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, celebrant)
	if err != nil {
		return domain.Celebrant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update replaces every writable field of the celebrant identified by code.
// The creation time on the input is ignored.
func (s *CelebrantService) Update(ctx context.Context, code uint, celebrant domain.Celebrant) error {
	if celebrant.Code != code {
		return invalid(ErrCodeMismatch)
	}

	celebrant.Normalize()
	if err := celebrant.Validate(); err != nil {
		return invalid(err)
	}

	updatedAt := s.now().UTC()
	celebrant.UpdatedAt = &updatedAt

	err := s.repo.Update(ctx, celebrant)
	if errors.Is(err, ErrUpdateConflict) {
		err = resolveConflict(ctx, s.repo, code, err, ErrCelebrantNotFound)
		if errors.Is(err, ErrUpdateConflict) {
			zap.L().Error("celebrant update conflict", zap.Uint("code", code))
		}
	}
	if err != nil {
		return fmt.Errorf("s.repo.Update -> %w", err)
	}

	return nil
}

// Delete removes the celebrant; the store cascades to their bookings.
func (s *CelebrantService) Delete(ctx context.Context, code uint) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
