package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func validCelebrant() Celebrant {
	return Celebrant{
		FirstName: "Ana",
		LastName:  "Kovač",
		Email:     "a@x.hr",
		Phone:     "0911234567",
	}
}

func validBooking() Booking {
	return Booking{
		CelebrantCode: 1,
		Title:         "Birthday Party",
		StartAt:       time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
	}
}

func TestCelebrant_Normalize(t *testing.T) {
	c := validCelebrant()
	c.FirstName = "  Ana "
	c.Note = ptr("   ")

	c.Normalize()

	assert.Equal(t, "Ana", c.FirstName)
	assert.Nil(t, c.Note)

	c.Note = ptr(" loves dinosaurs ")
	c.Normalize()
	require.NotNil(t, c.Note)
	assert.Equal(t, "loves dinosaurs", *c.Note)
}

func TestCelebrant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Celebrant)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Celebrant) {}},
		{name: "blank first name", mutate: func(c *Celebrant) { c.FirstName = "" }, wantErr: "firstName"},
		{name: "blank last name", mutate: func(c *Celebrant) { c.LastName = "" }, wantErr: "lastName"},
		{name: "first name too long", mutate: func(c *Celebrant) { c.FirstName = strings.Repeat("a", 51) }, wantErr: "firstName"},
		{name: "bad email", mutate: func(c *Celebrant) { c.Email = "not-an-email" }, wantErr: "email"},
		{name: "phone too long", mutate: func(c *Celebrant) { c.Phone = strings.Repeat("1", 21) }, wantErr: "phone"},
		{name: "note too long", mutate: func(c *Celebrant) { c.Note = ptr(strings.Repeat("n", 501)) }, wantErr: "note"},
		{name: "multibyte name at limit", mutate: func(c *Celebrant) { c.LastName = strings.Repeat("č", 50) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCelebrant()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCelebrant_WhitespaceOnlyRequiredFieldRejected(t *testing.T) {
	c := validCelebrant()
	c.Phone = "   "

	c.Normalize()

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone")
}

func TestBooking_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(b *Booking)
		wantErr string
	}{
		{name: "valid", mutate: func(b *Booking) {}},
		{name: "missing celebrant", mutate: func(b *Booking) { b.CelebrantCode = 0 }, wantErr: "celebrantCode"},
		{name: "missing title", mutate: func(b *Booking) { b.Title = "" }, wantErr: "title"},
		{name: "title too long", mutate: func(b *Booking) { b.Title = strings.Repeat("t", 101) }, wantErr: "title"},
		{name: "missing start", mutate: func(b *Booking) { b.StartAt = time.Time{} }, wantErr: "startAt"},
		{name: "package too long", mutate: func(b *Booking) { b.Package = ptr(strings.Repeat("p", 51)) }, wantErr: "package"},
		{name: "status too long", mutate: func(b *Booking) { b.Status = ptr(strings.Repeat("s", 21)) }, wantErr: "status"},
		{name: "negative guests", mutate: func(b *Booking) { b.GuestCount = ptr(-1) }, wantErr: "guestCount"},
		{name: "negative price", mutate: func(b *Booking) { b.Price = ptr(-0.5) }, wantErr: "price"},
		{name: "unknown status accepted", mutate: func(b *Booking) { b.Status = ptr("postponed") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(&b)

			err := b.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBooking_ActivityAt(t *testing.T) {
	b := validBooking()
	assert.Equal(t, b.StartAt, b.ActivityAt())

	created := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	b.CreatedAt = created
	assert.Equal(t, created, b.ActivityAt())

	updated := created.Add(time.Hour)
	b.UpdatedAt = &updated
	assert.Equal(t, updated, b.ActivityAt())
}
