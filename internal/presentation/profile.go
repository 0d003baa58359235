package presentation

import (
	"fmt"
	"strings"
	"time"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

// CelebrantProfile is the UI shape of a celebrant.
type CelebrantProfile struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	DateOfBirth string `json:"dateOfBirth"`
	ParentName  string `json:"parentName"`
	ParentPhone string `json:"parentPhone"`
	ParentEmail string `json:"parentEmail"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// SplitName cuts a display name at its first space. Everything after that
// space, further spaces included, becomes the last name.
func SplitName(name string) (first, last string) {
	first, last, _ = strings.Cut(name, " ")
	return first, last
}

func JoinName(first, last string) string {
	return first + " " + last
}

// Age counts whole years from dob to now, using the calendar date of dob and
// the calendar date of now in now's location. A missing or future dob gives 0.
func Age(dob *time.Time, now time.Time) int {
	if dob == nil || dob.IsZero() {
		return 0
	}

	by, bm, bd := dob.Date()
	ny, nm, nd := now.Date()

	age := ny - by
	if nm < bm || (nm == bm && nd < bd) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func (m *Mapper) ToProfile(c domain.Celebrant) CelebrantProfile {
	p := CelebrantProfile{
		ID:          formatCode(c.Code),
		Name:        JoinName(c.FirstName, c.LastName),
		Age:         Age(c.DateOfBirth, m.now().In(m.loc)),
		ParentName:  c.FirstName,
		ParentPhone: c.Phone,
		ParentEmail: c.Email,
		Notes:       text(c.Note),
		CreatedAt:   m.stamp(&c.CreatedAt),
		UpdatedAt:   m.stamp(c.UpdatedAt),
	}

	if c.DateOfBirth != nil && !c.DateOfBirth.IsZero() {
		p.DateOfBirth = c.DateOfBirth.Format(DateLayout)
	}

	return p
}

// FromProfile builds the stored shape of a profile. Audit fields are left for
// the store to fill.
func (m *Mapper) FromProfile(p CelebrantProfile) (domain.Celebrant, error) {
	code, err := parseCode(p.ID)
	if err != nil {
		return domain.Celebrant{}, fmt.Errorf("id: %w", err)
	}

	first, last := SplitName(p.Name)
	c := domain.Celebrant{
		Code:      code,
		FirstName: first,
		LastName:  last,
		Email:     p.ParentEmail,
		Phone:     p.ParentPhone,
		Note:      optionalText(p.Notes),
	}

	if dob := strings.TrimSpace(p.DateOfBirth); dob != "" {
		t, err := ParseDate(dob)
		if err != nil {
			return domain.Celebrant{}, fmt.Errorf("dateOfBirth: %w", err)
		}
		c.DateOfBirth = &t
	}

	return c, nil
}

// ParseDate accepts a calendar date or a full RFC 3339 timestamp and keeps
// only the calendar date, as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}

	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, time.UTC), nil
}

// ProfileDetail is a profile together with its parties.
type ProfileDetail struct {
	Profile CelebrantProfile `json:"profile"`
	Events  []PartyEvent     `json:"events"`
}

func (m *Mapper) ToProfileDetail(c domain.Celebrant) ProfileDetail {
	d := ProfileDetail{
		Profile: m.ToProfile(c),
		Events:  make([]PartyEvent, 0, len(c.Bookings)),
	}

	for _, b := range c.Bookings {
		e := m.ToEvent(b)
		e.CelebrantName = d.Profile.Name
		d.Events = append(d.Events, e)
	}

	return d
}
