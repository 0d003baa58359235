package domain

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Conventional status labels. The store accepts any label up to 20 characters.
const (
	StatusUpcoming  = "upcoming"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Booking is a scheduled party owned by one Celebrant.
type Booking struct {
	Code          uint       `json:"code"`
	CelebrantCode uint       `json:"celebrantCode"`
	Title         string     `json:"title"`
	StartAt       time.Time  `json:"startAt"`
	EndAt         *time.Time `json:"endAt"`
	Package       *string    `json:"package"`
	GuestCount    *int       `json:"guestCount"`
	Status        *string    `json:"status"`
	Price         *float64   `json:"price"`
	Deposit       *float64   `json:"deposit"`
	DepositPaid   *bool      `json:"depositPaid"`
	Note          *string    `json:"note"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
	Celebrant     *Celebrant `json:"celebrant,omitempty"`
}

func (b *Booking) Normalize() {
	b.Title = strings.TrimSpace(b.Title)
	b.Package = optional(b.Package)
	b.Status = optional(b.Status)
	b.Note = optional(b.Note)
}

func (b *Booking) Validate() error {
	return validation.ValidateStruct(
		b,
		validation.Field(&b.CelebrantCode, validation.Required),
		validation.Field(&b.Title, validation.Required, validation.RuneLength(1, 100)),
		validation.Field(&b.StartAt, validation.Required),
		validation.Field(&b.Package, validation.RuneLength(0, 50)),
		validation.Field(&b.GuestCount, validation.Min(0)),
		validation.Field(&b.Status, validation.RuneLength(0, 20)),
		validation.Field(&b.Price, validation.Min(0.0)),
		validation.Field(&b.Deposit, validation.Min(0.0)),
		validation.Field(&b.Note, validation.RuneLength(0, 500)),
	)
}

// StatusLabel returns the stored label, empty when none was stored.
func (b *Booking) StatusLabel() string {
	if b.Status == nil {
		return ""
	}
	return *b.Status
}

// ActivityAt is the most recent moment the booking was touched: last update,
// else creation, else the party start.
func (b *Booking) ActivityAt() time.Time {
	switch {
	case b.UpdatedAt != nil:
		return *b.UpdatedAt
	case !b.CreatedAt.IsZero():
		return b.CreatedAt
	default:
		return b.StartAt
	}
}
