package domain

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Celebrant is the child a party is booked for.
type Celebrant struct {
	Code        uint       `json:"code"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Note        *string    `json:"note"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	Bookings    []Booking  `json:"bookings"`
}

// Normalize trims every text field and turns blank optional ones into nil.
func (c *Celebrant) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Note = optional(c.Note)
}

func (c *Celebrant) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.FirstName, validation.Required, validation.RuneLength(1, 50)),
		validation.Field(&c.LastName, validation.Required, validation.RuneLength(1, 50)),
		validation.Field(&c.Email, validation.Required, validation.RuneLength(1, 100), is.Email),
		validation.Field(&c.Phone, validation.Required, validation.RuneLength(1, 20)),
		validation.Field(&c.Note, validation.RuneLength(0, 500)),
	)
}

func (c *Celebrant) FullName() string {
	return c.FirstName + " " + c.LastName
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
