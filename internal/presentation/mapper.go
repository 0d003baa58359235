// Package presentation translates between stored records and the shapes the
// booking UI works with. Everything here is pure: the clock and the venue
// time zone are injected.
package presentation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/timezone"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// Placeholder is displayed in place of a date or time that cannot be rendered.
	Placeholder = "N/A"
)

var (
	ErrMalformedID   = errors.New("malformed id")
	ErrMalformedDate = errors.New("must be a date in YYYY-MM-DD format")
	ErrMalformedTime = errors.New("must be a time in HH:mm format")
)

type Mapper struct {
	loc *time.Location
	now func() time.Time
}

// NewMapper returns a Mapper rendering times in the given IANA zone.
func NewMapper(tz string) *Mapper {
	return &Mapper{
		loc: timezone.Location(tz),
		now: time.Now,
	}
}

func (m *Mapper) today() time.Time {
	return timezone.StartOfDay(m.now().In(m.loc))
}

// stamp renders an audit timestamp, substituting the current time when absent.
// The substitute is for display only and never written back.
func (m *Mapper) stamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return m.now().UTC().Format(time.RFC3339)
	}
	return t.UTC().Format(time.RFC3339)
}

func formatCode(code uint) string {
	if code == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(code), 10)
}

func parseCode(id string) (uint, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, nil
	}

	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil {
		return 0, ErrMalformedID
	}
	return uint(n), nil
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
