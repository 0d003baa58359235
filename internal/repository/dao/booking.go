package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Booking carries no gorm association back to Celebrant, so the only foreign
// key on bookings is the cascading one declared by Celebrant.Bookings.
// Celebrant is filled in by the DAO on reads.
type Booking struct {
	Code uint `gorm:"primaryKey"`

	CelebrantCode uint      `gorm:"not null;index"`
	Title         string    `gorm:"size:100;not null"`
	StartAt       time.Time `gorm:"not null"`
	EndAt         *time.Time
	Package       *string `gorm:"size:50"`
	GuestCount    *int
	Status        *string `gorm:"size:20"`
	Price         *float64
	Deposit       *float64
	DepositPaid   *bool
	Note          *string `gorm:"size:500"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`

	Celebrant *Celebrant `gorm:"-"`
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{
		db: db,
	}
}

func (d *BookingDAO) FindAll(ctx context.Context) ([]Booking, error) {
	var bookings []Booking

	result := d.db.WithContext(ctx).Order("code").Find(&bookings)
	if result.Error != nil {
		return nil, result.Error
	}

	if err := d.attachCelebrants(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (d *BookingDAO) FindByCode(ctx context.Context, code uint) (Booking, error) {
	var booking Booking

	result := d.db.WithContext(ctx).First(&booking, code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Booking{}, ErrBookingNotFound
		}

		return Booking{}, result.Error
	}

	bookings := []Booking{booking}
	if err := d.attachCelebrants(ctx, bookings); err != nil {
		return Booking{}, err
	}

	return bookings[0], nil
}

func (d *BookingDAO) attachCelebrants(ctx context.Context, bookings []Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	codes := make([]uint, 0, len(bookings))
	for _, b := range bookings {
		codes = append(codes, b.CelebrantCode)
	}

	var celebrants []Celebrant
	result := d.db.WithContext(ctx).Where("code IN ?", codes).Find(&celebrants)
	if result.Error != nil {
		return result.Error
	}

	byCode := make(map[uint]*Celebrant, len(celebrants))
	for i := range celebrants {
		byCode[celebrants[i].Code] = &celebrants[i]
	}

	for i := range bookings {
		bookings[i].Celebrant = byCode[bookings[i].CelebrantCode]
	}

	return nil
}

func (d *BookingDAO) Exists(ctx context.Context, code uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Booking{}).Where("code = ?", code).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *BookingDAO) Insert(ctx context.Context, booking Booking) (Booking, error) {
	booking.Code = 0
	booking.Celebrant = nil

	result := d.db.WithContext(ctx).Create(&booking)
	if result.Error != nil {
		if IsForeignKeyViolation(result.Error) {
			return Booking{}, ErrCelebrantRefNotExists
		}

		return Booking{}, result.Error
	}

	bookings := []Booking{booking}
	if err := d.attachCelebrants(ctx, bookings); err != nil {
		return Booking{}, err
	}

	return bookings[0], nil
}

func (d *BookingDAO) Update(ctx context.Context, booking Booking) error {
	result := d.db.WithContext(ctx).
		Model(&Booking{}).
		Where("code = ?", booking.Code).
		Select("celebrant_code", "title", "start_at", "end_at", "package", "guest_count",
			"status", "price", "deposit", "deposit_paid", "note", "updated_at").
		Updates(&booking)
	if result.Error != nil {
		if IsForeignKeyViolation(result.Error) {
			return ErrCelebrantRefNotExists
		}

		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUpdateConflict
	}

	return nil
}

func (d *BookingDAO) Delete(ctx context.Context, code uint) error {
	result := d.db.WithContext(ctx).Delete(&Booking{}, code)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
