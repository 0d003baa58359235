package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository/dao"
)

var (
	ErrCelebrantNotFound     = dao.ErrCelebrantNotFound
	ErrBookingNotFound       = dao.ErrBookingNotFound
	ErrCelebrantRefNotExists = dao.ErrCelebrantRefNotExists
	ErrUpdateConflict        = dao.ErrUpdateConflict
)

// CelebrantDAO is satisfied by both dao.CelebrantDAO (gorm) and sqlite.CelebrantDAO.
type CelebrantDAO interface {
	FindAll(ctx context.Context) ([]dao.Celebrant, error)
	FindByCode(ctx context.Context, code uint) (dao.Celebrant, error)
	Exists(ctx context.Context, code uint) (bool, error)
	Insert(ctx context.Context, celebrant dao.Celebrant) (dao.Celebrant, error)
	Update(ctx context.Context, celebrant dao.Celebrant) error
	Delete(ctx context.Context, code uint) error
}

type CelebrantRepository struct {
	dao CelebrantDAO
}

func NewCelebrantRepository(dao CelebrantDAO) *CelebrantRepository {
	return &CelebrantRepository{
		dao: dao,
	}
}

func (r *CelebrantRepository) FindAll(ctx context.Context) ([]domain.Celebrant, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	celebrants := make([]domain.Celebrant, 0, len(found))
	for _, c := range found {
		celebrants = append(celebrants, celebrantDaoToDomain(c))
	}

	return celebrants, nil
}

func (r *CelebrantRepository) FindByCode(ctx context.Context, code uint) (domain.Celebrant, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Celebrant{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return celebrantDaoToDomain(found), nil
}

func (r *CelebrantRepository) Exists(ctx context.Context, code uint) (bool, error) {
	ok, err := r.dao.Exists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

func (r *CelebrantRepository) Create(ctx context.Context, celebrant domain.Celebrant) (domain.Celebrant, error) {
	created, err := r.dao.Insert(ctx, celebrantDomainToDao(celebrant))
	if err != nil {
		return domain.Celebrant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return celebrantDaoToDomain(created), nil
}

func (r *CelebrantRepository) Update(ctx context.Context, celebrant domain.Celebrant) error {
	if err := r.dao.Update(ctx, celebrantDomainToDao(celebrant)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *CelebrantRepository) Delete(ctx context.Context, code uint) error {
	if err := r.dao.Delete(ctx, code); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

// IsNotFound reports whether err means an unknown celebrant or booking code.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCelebrantNotFound) || errors.Is(err, ErrBookingNotFound)
}

func celebrantDomainToDao(c domain.Celebrant) dao.Celebrant {
	return dao.Celebrant{
		Code:        c.Code,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		DateOfBirth: c.DateOfBirth,
		Note:        c.Note,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func celebrantDaoToDomain(c dao.Celebrant) domain.Celebrant {
	bookings := make([]domain.Booking, 0, len(c.Bookings))
	for _, b := range c.Bookings {
		bookings = append(bookings, bookingDaoToDomain(b))
	}

	return domain.Celebrant{
		Code:        c.Code,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Email:       c.Email,
		Phone:       c.Phone,
		DateOfBirth: c.DateOfBirth,
		Note:        c.Note,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		Bookings:    bookings,
	}
}
