package repository

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository/dao"
)

type BookingDAO interface {
	FindAll(ctx context.Context) ([]dao.Booking, error)
	FindByCode(ctx context.Context, code uint) (dao.Booking, error)
	Exists(ctx context.Context, code uint) (bool, error)
	Insert(ctx context.Context, booking dao.Booking) (dao.Booking, error)
	Update(ctx context.Context, booking dao.Booking) error
	Delete(ctx context.Context, code uint) error
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{
		dao: dao,
	}
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	bookings := make([]domain.Booking, 0, len(found))
	for _, b := range found {
		bookings = append(bookings, bookingDaoToDomain(b))
	}

	return bookings, nil
}

func (r *BookingRepository) FindByCode(ctx context.Context, code uint) (domain.Booking, error) {
	found, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.FindByCode -> %w", err)
	}

	return bookingDaoToDomain(found), nil
}

func (r *BookingRepository) Exists(ctx context.Context, code uint) (bool, error) {
	ok, err := r.dao.Exists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("r.dao.Exists -> %w", err)
	}

	return ok, nil
}

func (r *BookingRepository) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	created, err := r.dao.Insert(ctx, bookingDomainToDao(booking))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return bookingDaoToDomain(created), nil
}

func (r *BookingRepository) Update(ctx context.Context, booking domain.Booking) error {
	if err := r.dao.Update(ctx, bookingDomainToDao(booking)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, code uint) error {
	if err := r.dao.Delete(ctx, code); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func bookingDomainToDao(b domain.Booking) dao.Booking {
	return dao.Booking{
		Code:          b.Code,
		CelebrantCode: b.CelebrantCode,
		Title:         b.Title,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		Package:       b.Package,
		GuestCount:    b.GuestCount,
		Status:        b.Status,
		Price:         b.Price,
		Deposit:       b.Deposit,
		DepositPaid:   b.DepositPaid,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// bookingDaoToDomain embeds the owning celebrant without its bookings, so the
// result never contains a celebrant -> booking -> celebrant cycle.
func bookingDaoToDomain(b dao.Booking) domain.Booking {
	booking := domain.Booking{
		Code:          b.Code,
		CelebrantCode: b.CelebrantCode,
		Title:         b.Title,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		Package:       b.Package,
		GuestCount:    b.GuestCount,
		Status:        b.Status,
		Price:         b.Price,
		Deposit:       b.Deposit,
		DepositPaid:   b.DepositPaid,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.Celebrant != nil {
		owner := *b.Celebrant
		owner.Bookings = nil
		c := celebrantDaoToDomain(owner)
		c.Bookings = nil
		booking.Celebrant = &c
	}

	return booking
}
