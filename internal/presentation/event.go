package presentation

import (
	"fmt"
	"strings"
	"time"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

// Defaults shown for booking fields that were never stored.
const (
	DefaultGuestCount  = 10
	DefaultStatus      = domain.StatusUpcoming
	DefaultPrice       = 200.0
	DefaultDeposit     = 50.0
	DefaultPackageType = "standard"

	// DefaultTitle is stored as the booking title when the event has no notes.
	DefaultTitle = "Birthday Party"

	defaultDuration = 3 * time.Hour
)

// PartyEvent is the UI shape of a booking, split into a calendar date and
// clock times in the venue's time zone.
type PartyEvent struct {
	ID            string  `json:"id"`
	CelebrantID   string  `json:"celebrantId"`
	CelebrantName string  `json:"celebrantName,omitempty"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	PackageType   string  `json:"packageType"`
	GuestCount    int     `json:"guestCount"`
	Status        string  `json:"status"`
	Price         float64 `json:"price"`
	Deposit       float64 `json:"deposit"`
	DepositPaid   bool    `json:"depositPaid"`
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

func (m *Mapper) ToEvent(b domain.Booking) PartyEvent {
	e := PartyEvent{
		ID:          formatCode(b.Code),
		CelebrantID: formatCode(b.CelebrantCode),
		Date:        Placeholder,
		StartTime:   Placeholder,
		EndTime:     Placeholder,
		PackageType: DefaultPackageType,
		GuestCount:  DefaultGuestCount,
		Status:      DefaultStatus,
		Price:       DefaultPrice,
		Deposit:     DefaultDeposit,
		Notes:       text(b.Note),
		CreatedAt:   m.stamp(&b.CreatedAt),
		UpdatedAt:   m.stamp(b.UpdatedAt),
	}

	if b.Celebrant != nil {
		e.CelebrantName = b.Celebrant.FullName()
	}

	if !b.StartAt.IsZero() {
		start := b.StartAt.In(m.loc)
		end := start.Add(defaultDuration)
		if b.EndAt != nil && !b.EndAt.IsZero() {
			end = b.EndAt.In(m.loc)
		}

		e.Date = start.Format(DateLayout)
		e.StartTime = start.Format(ClockLayout)
		e.EndTime = end.Format(ClockLayout)
	}

	if b.Package != nil {
		e.PackageType = *b.Package
	}
	if b.GuestCount != nil {
		e.GuestCount = *b.GuestCount
	}
	if b.Status != nil {
		e.Status = *b.Status
	}
	if b.Price != nil {
		e.Price = *b.Price
	}
	if b.Deposit != nil {
		e.Deposit = *b.Deposit
	}
	if b.DepositPaid != nil {
		e.DepositPaid = *b.DepositPaid
	}

	return e
}

// FromEvent composes the stored shape of an event. The end is stored only
// when an end time was given. The title is taken from the notes, falling back
// to DefaultTitle.
func (m *Mapper) FromEvent(e PartyEvent) (domain.Booking, error) {
	code, err := parseCode(e.ID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("id: %w", err)
	}

	celebrantCode, err := parseCode(e.CelebrantID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("celebrantId: %w", err)
	}

	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(e.Date), m.loc)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("date: %w", ErrMalformedDate)
	}

	start, err := at(day, e.StartTime)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("startTime: %w", err)
	}

	b := domain.Booking{
		Code:          code,
		CelebrantCode: celebrantCode,
		Title:         DefaultTitle,
		StartAt:       start.UTC(),
		Package:       optionalText(e.PackageType),
		GuestCount:    &e.GuestCount,
		Status:        optionalText(e.Status),
		Price:         &e.Price,
		Deposit:       &e.Deposit,
		DepositPaid:   &e.DepositPaid,
		Note:          optionalText(e.Notes),
	}

	if b.Note != nil {
		b.Title = *b.Note
	}

	if strings.TrimSpace(e.EndTime) != "" {
		end, err := at(day, e.EndTime)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("endTime: %w", err)
		}
		end = end.UTC()
		b.EndAt = &end
	}

	return b, nil
}

// at sets the wall clock of day to clock. A blank clock means midnight.
func at(day time.Time, clock string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return day, nil
	}

	c, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, ErrMalformedTime
	}

	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location()), nil
}
