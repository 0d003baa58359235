package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

var errTimestamp = errors.New("must be a timestamp such as 2025-06-01T13:00 or 2025-06-01T13:00:00Z")

// Layouts accepted for startAt and endAt. Those without an offset are read in
// the venue's time zone.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// BookingRequest is the body of POST and PUT /Bookings.
type BookingRequest struct {
	Code          uint     `json:"code"`
	CelebrantCode uint     `json:"celebrantCode"`
	Title         string   `json:"title"`
	StartAt       string   `json:"startAt" example:"2025-06-01T13:00"`
	EndAt         *string  `json:"endAt" example:"2025-06-01T16:00"`
	Package       *string  `json:"package"`
	GuestCount    *int     `json:"guestCount"`
	Status        *string  `json:"status"`
	Price         *float64 `json:"price"`
	Deposit       *float64 `json:"deposit"`
	DepositPaid   *bool    `json:"depositPaid"`
	Note          *string  `json:"note"`
}

func (req *BookingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.StartAt, validation.Required, validation.By(timestamp)),
		validation.Field(&req.EndAt, validation.By(timestamp)),
	)
}

// ToDomain converts the request, reading zone-less timestamps in loc.
// Call Validate first; unparsable timestamps are left zero.
func (req *BookingRequest) ToDomain(loc *time.Location) domain.Booking {
	b := domain.Booking{
		Code:          req.Code,
		CelebrantCode: req.CelebrantCode,
		Title:         req.Title,
		Package:       req.Package,
		GuestCount:    req.GuestCount,
		Status:        req.Status,
		Price:         req.Price,
		Deposit:       req.Deposit,
		DepositPaid:   req.DepositPaid,
		Note:          req.Note,
	}

	if start, err := ParseTimestamp(req.StartAt, loc); err == nil {
		b.StartAt = start
	}
	if req.EndAt != nil && *req.EndAt != "" {
		if end, err := ParseTimestamp(*req.EndAt, loc); err == nil {
			b.EndAt = &end
		}
	}

	return b
}

// ParseTimestamp parses s as RFC 3339 or one of the zone-less layouts, and
// returns it in UTC.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, errTimestamp
}

func timestamp(value interface{}) error {
	value, _ = validation.Indirect(value)
	s, _ := value.(string)
	if s == "" {
		return nil
	}

	_, err := ParseTimestamp(s, time.UTC)
	return err
}
