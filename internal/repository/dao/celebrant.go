package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Celebrant struct {
	Code uint `gorm:"primaryKey"`

	FirstName   string `gorm:"size:50;not null"`
	LastName    string `gorm:"size:50;not null"`
	Email       string `gorm:"size:100;not null"`
	Phone       string `gorm:"size:20;not null"`
	DateOfBirth *time.Time
	Note        *string `gorm:"size:500"`

	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false"`

	Bookings []Booking `gorm:"foreignKey:CelebrantCode;references:Code;constraint:OnDelete:CASCADE"`
}

type CelebrantDAO struct {
	db *gorm.DB
}

func NewCelebrantDAO(db *gorm.DB) *CelebrantDAO {
	return &CelebrantDAO{
		db: db,
	}
}

func orderByCode(db *gorm.DB) *gorm.DB {
	return db.Order("code")
}

func (d *CelebrantDAO) FindAll(ctx context.Context) ([]Celebrant, error) {
	var celebrants []Celebrant

	result := d.db.WithContext(ctx).Preload("Bookings", orderByCode).Order("code").Find(&celebrants)
	if result.Error != nil {
		return nil, result.Error
	}

	return celebrants, nil
}

func (d *CelebrantDAO) FindByCode(ctx context.Context, code uint) (Celebrant, error) {
	var celebrant Celebrant

	result := d.db.WithContext(ctx).Preload("Bookings", orderByCode).First(&celebrant, code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Celebrant{}, ErrCelebrantNotFound
		}

		return Celebrant{}, result.Error
	}

	return celebrant, nil
}

func (d *CelebrantDAO) Exists(ctx context.Context, code uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Celebrant{}).Where("code = ?", code).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (d *CelebrantDAO) Insert(ctx context.Context, celebrant Celebrant) (Celebrant, error) {
	celebrant.Code = 0
	celebrant.Bookings = nil

	result := d.db.WithContext(ctx).Create(&celebrant)
	if result.Error != nil {
		return Celebrant{}, result.Error
	}

	return celebrant, nil
}

// Update replaces every column except the code and the creation timestamp.
// Zero affected rows means the record vanished between read and write.
func (d *CelebrantDAO) Update(ctx context.Context, celebrant Celebrant) error {
	result := d.db.WithContext(ctx).
		Model(&Celebrant{}).
		Where("code = ?", celebrant.Code).
		Select("first_name", "last_name", "email", "phone", "date_of_birth", "note", "updated_at").
		Updates(&celebrant)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUpdateConflict
	}

	return nil
}

func (d *CelebrantDAO) Delete(ctx context.Context, code uint) error {
	result := d.db.WithContext(ctx).Delete(&Celebrant{}, code)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrCelebrantNotFound
	}

	return nil
}
