package presentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func newTestMapper(t *testing.T, now time.Time) *Mapper {
	t.Helper()
	return &Mapper{loc: time.UTC, now: func() time.Time { return now }}
}

func TestSplitAndJoinName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
	}{
		{name: "two tokens", input: "Ana Kovač", wantFirst: "Ana", wantLast: "Kovač"},
		{name: "remainder becomes last name", input: "Ana Marija Kovač", wantFirst: "Ana", wantLast: "Marija Kovač"},
		{name: "single token", input: "Ana", wantFirst: "Ana", wantLast: ""},
		{name: "empty", input: "", wantFirst: "", wantLast: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.input)
			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}

	first, last := SplitName("Ana Marija Kovač")
	assert.Equal(t, "Ana Marija Kovač", JoinName(first, last))
}

func TestAge(t *testing.T) {
	dob := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		dob  *time.Time
		now  time.Time
		want int
	}{
		{name: "no date of birth", dob: nil, now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), want: 0},
		{name: "day before birthday", dob: &dob, now: time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC), want: 9},
		{name: "on birthday", dob: &dob, now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), want: 10},
		{name: "later that year", dob: &dob, now: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), want: 10},
		{name: "future date of birth", dob: &dob, now: time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Age(tt.dob, tt.now))
		})
	}
}

func TestMapper_ToProfile(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	m := newTestMapper(t, now)
	dob := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)

	p := m.ToProfile(domain.Celebrant{
		Code:        7,
		FirstName:   "Ana",
		LastName:    "Kovač",
		Email:       "a@x.hr",
		Phone:       "0911234567",
		DateOfBirth: &dob,
		CreatedAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	assert.Equal(t, "7", p.ID)
	assert.Equal(t, "Ana Kovač", p.Name)
	assert.Equal(t, 9, p.Age)
	assert.Equal(t, "2015-06-01", p.DateOfBirth)
	assert.Equal(t, "Ana", p.ParentName)
	assert.Equal(t, "0911234567", p.ParentPhone)
	assert.Equal(t, "a@x.hr", p.ParentEmail)
	assert.Equal(t, "", p.Notes)
	assert.Equal(t, "2025-01-02T03:04:05Z", p.CreatedAt)
	assert.Equal(t, now.Format(time.RFC3339), p.UpdatedAt)
}

func TestMapper_FromProfile(t *testing.T) {
	m := newTestMapper(t, time.Now())

	c, err := m.FromProfile(CelebrantProfile{
		ID:          "3",
		Name:        "Ana Marija Kovač",
		DateOfBirth: "2015-06-01",
		ParentPhone: "0911234567",
		ParentEmail: "a@x.hr",
		Notes:       "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), c.Code)
	assert.Equal(t, "Ana", c.FirstName)
	assert.Equal(t, "Marija Kovač", c.LastName)
	require.NotNil(t, c.DateOfBirth)
	assert.Equal(t, time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC), *c.DateOfBirth)
	assert.Nil(t, c.Note)

	c, err = m.FromProfile(CelebrantProfile{Name: "Ana Kovač"})
	require.NoError(t, err)
	assert.Zero(t, c.Code)
	assert.Nil(t, c.DateOfBirth)

	_, err = m.FromProfile(CelebrantProfile{ID: "abc"})
	assert.ErrorIs(t, err, ErrMalformedID)

	_, err = m.FromProfile(CelebrantProfile{DateOfBirth: "01.06.2015"})
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2015-06-01T22:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2015-13-01")
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestMapper_ToEvent(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	m := newTestMapper(t, now)

	t.Run("defaults and computed end", func(t *testing.T) {
		e := m.ToEvent(domain.Booking{
			Code:          1,
			CelebrantCode: 2,
			Title:         "Birthday Party",
			StartAt:       time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
			CreatedAt:     now,
			Celebrant:     &domain.Celebrant{Code: 2, FirstName: "Ana", LastName: "Kovač"},
		})

		assert.Equal(t, "1", e.ID)
		assert.Equal(t, "2", e.CelebrantID)
		assert.Equal(t, "Ana Kovač", e.CelebrantName)
		assert.Equal(t, "2025-06-01", e.Date)
		assert.Equal(t, "13:00", e.StartTime)
		assert.Equal(t, "16:00", e.EndTime)
		assert.Equal(t, DefaultPackageType, e.PackageType)
		assert.Equal(t, 10, e.GuestCount)
		assert.Equal(t, "upcoming", e.Status)
		assert.Equal(t, 200.0, e.Price)
		assert.Equal(t, 50.0, e.Deposit)
		assert.False(t, e.DepositPaid)
		assert.Equal(t, "", e.Notes)
	})

	t.Run("stored values win", func(t *testing.T) {
		end := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
		e := m.ToEvent(domain.Booking{
			StartAt:     time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC),
			EndAt:       &end,
			Package:     ptr("premium"),
			GuestCount:  ptr(0),
			Status:      ptr("cancelled"),
			Price:       ptr(350.0),
			Deposit:     ptr(0.0),
			DepositPaid: ptr(true),
			Note:        ptr("magician"),
		})

		assert.Equal(t, "18:30", e.EndTime)
		assert.Equal(t, "premium", e.PackageType)
		assert.Equal(t, 0, e.GuestCount)
		assert.Equal(t, "cancelled", e.Status)
		assert.Equal(t, 350.0, e.Price)
		assert.Equal(t, 0.0, e.Deposit)
		assert.True(t, e.DepositPaid)
		assert.Equal(t, "magician", e.Notes)
		assert.Equal(t, "", e.ID)
	})

	t.Run("missing start renders placeholders", func(t *testing.T) {
		e := m.ToEvent(domain.Booking{Code: 4})
		assert.Equal(t, Placeholder, e.Date)
		assert.Equal(t, Placeholder, e.StartTime)
		assert.Equal(t, Placeholder, e.EndTime)
	})

	t.Run("renders in the venue zone", func(t *testing.T) {
		zm := NewMapper("Europe/Zagreb")
		if zm.loc == time.UTC {
			t.Skip("tzdata not available")
		}
		e := zm.ToEvent(domain.Booking{StartAt: time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)})
		assert.Equal(t, "13:00", e.StartTime)
	})
}

func TestMapper_FromEvent(t *testing.T) {
	m := newTestMapper(t, time.Now())

	t.Run("composes timestamps and title", func(t *testing.T) {
		b, err := m.FromEvent(PartyEvent{
			ID:          "5",
			CelebrantID: "2",
			Date:        "2025-06-01",
			StartTime:   "13:00",
			EndTime:     "16:30",
			PackageType: "basic",
			GuestCount:  12,
			Status:      "upcoming",
			Price:       180,
			Deposit:     40,
			Notes:       "Unicorn theme",
		})
		require.NoError(t, err)

		assert.Equal(t, uint(5), b.Code)
		assert.Equal(t, uint(2), b.CelebrantCode)
		assert.Equal(t, "Unicorn theme", b.Title)
		assert.Equal(t, time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC), b.StartAt)
		require.NotNil(t, b.EndAt)
		assert.Equal(t, time.Date(2025, 6, 1, 16, 30, 0, 0, time.UTC), *b.EndAt)
		assert.Equal(t, "basic", *b.Package)
		assert.Equal(t, 12, *b.GuestCount)
		assert.False(t, *b.DepositPaid)
	})

	t.Run("placeholder title and omitted end", func(t *testing.T) {
		b, err := m.FromEvent(PartyEvent{CelebrantID: "2", Date: "2025-06-01", StartTime: "13:00"})
		require.NoError(t, err)
		assert.Equal(t, DefaultTitle, b.Title)
		assert.Nil(t, b.EndAt)
		assert.Nil(t, b.Note)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := m.FromEvent(PartyEvent{Date: "01.06.2025"})
		assert.ErrorIs(t, err, ErrMalformedDate)

		_, err = m.FromEvent(PartyEvent{Date: "2025-06-01", StartTime: "1pm"})
		assert.ErrorIs(t, err, ErrMalformedTime)

		_, err = m.FromEvent(PartyEvent{CelebrantID: "x", Date: "2025-06-01"})
		assert.ErrorIs(t, err, ErrMalformedID)
	})
}

func TestMapper_EventRoundTrip(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	m := newTestMapper(t, now)

	in := PartyEvent{
		ID:          "9",
		CelebrantID: "2",
		Date:        "2025-06-01",
		StartTime:   "13:00",
		EndTime:     "17:00",
		PackageType: "premium",
		GuestCount:  15,
		Status:      "completed",
		Price:       300,
		Deposit:     75,
		DepositPaid: true,
		Notes:       "Pirates",
		CreatedAt:   now.Format(time.RFC3339),
		UpdatedAt:   now.Format(time.RFC3339),
	}

	b, err := m.FromEvent(in)
	require.NoError(t, err)
	assert.Equal(t, in, m.ToEvent(b))

	in.EndTime = ""
	b, err = m.FromEvent(in)
	require.NoError(t, err)
	out := m.ToEvent(b)
	assert.Equal(t, "16:00", out.EndTime)
}

func TestParseBucketAndSelect(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	m := newTestMapper(t, now)

	_, err := ParseBucket("later")
	assert.Error(t, err)

	b, err := ParseBucket("")
	require.NoError(t, err)
	assert.Equal(t, BucketAll, b)

	earlierToday := domain.Booking{Code: 1, StartAt: time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC)}
	yesterday := domain.Booking{Code: 2, StartAt: time.Date(2025, 3, 9, 20, 0, 0, 0, time.UTC), Status: ptr("upcoming")}
	nextWeek := domain.Booking{Code: 3, StartAt: time.Date(2025, 3, 17, 13, 0, 0, 0, time.UTC)}
	all := []domain.Booking{earlierToday, yesterday, nextWeek}

	assert.Equal(t, BucketUpcoming, m.BucketOf(earlierToday))
	assert.Equal(t, BucketCompleted, m.BucketOf(yesterday))

	assert.Equal(t, all, m.Select(all, BucketAll))
	assert.Equal(t, []domain.Booking{earlierToday, nextWeek}, m.Select(all, BucketUpcoming))
	assert.Equal(t, []domain.Booking{yesterday}, m.Select(all, BucketCompleted))
}

func TestMapper_Dashboard(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	m := newTestMapper(t, now)

	updated := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	celebrants := []domain.Celebrant{
		{Code: 1, FirstName: "Ana", LastName: "Kovač", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Code: 2, FirstName: "Ivo", LastName: "Horvat", CreatedAt: time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)},
	}
	bookings := []domain.Booking{
		{
			Code: 10, CelebrantCode: 1, Price: ptr(200.0), DepositPaid: ptr(true),
			StartAt:   time.Date(2025, 3, 20, 13, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
			UpdatedAt: &updated,
		},
		{
			Code: 11, CelebrantCode: 2, Price: ptr(150.5), Status: ptr("cancelled"),
			StartAt:   time.Date(2025, 3, 25, 13, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			Code: 12, CelebrantCode: 99, Status: ptr("upcoming"),
			StartAt:   time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Code: 13, CelebrantCode: 1, Status: ptr("completed"),
			StartAt:   time.Date(2025, 4, 1, 13, 0, 0, 0, time.UTC),
			CreatedAt: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	d := m.Dashboard(celebrants, bookings)

	assert.Equal(t, 350.5, d.TotalRevenue)
	assert.Equal(t, 2, d.NewCustomers)
	assert.Equal(t, 2, d.UpcomingBirthdays)
	assert.Equal(t, 2, d.CompletedBirthdays)

	require.Len(t, d.RecentActivities, 3)

	assert.Equal(t, uint(10), d.RecentActivities[0].ID)
	assert.Equal(t, ActivityPayment, d.RecentActivities[0].Type)
	assert.Equal(t, "Deposit received from Ana Kovač", d.RecentActivities[0].Description)
	assert.Equal(t, "2025-03-09T12:00:00Z", d.RecentActivities[0].Date)

	assert.Equal(t, uint(1002), d.RecentActivities[1].ID)
	assert.Equal(t, ActivityNewBooking, d.RecentActivities[1].Type)
	assert.Equal(t, "New celebrant: Ivo Horvat", d.RecentActivities[1].Description)

	assert.Equal(t, uint(11), d.RecentActivities[2].ID)
	assert.Equal(t, ActivityCancellation, d.RecentActivities[2].Type)
	assert.Equal(t, "Cancelled birthday party for Ivo Horvat", d.RecentActivities[2].Description)
}

func TestMapper_DashboardUnknownCelebrant(t *testing.T) {
	m := newTestMapper(t, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))

	d := m.Dashboard(nil, []domain.Booking{{Code: 1, CelebrantCode: 5, StartAt: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}})
	require.Len(t, d.RecentActivities, 1)
	assert.Equal(t, "New birthday party booking for unknown celebrant", d.RecentActivities[0].Description)
	assert.Equal(t, 0.0, d.TotalRevenue)
}

func TestCelebrantProfile_Validate(t *testing.T) {
	valid := CelebrantProfile{
		Name:        "Ana Kovač",
		DateOfBirth: "2015-06-01",
		ParentPhone: "+385 91 123 4567",
		ParentEmail: "a@x.hr",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(p *CelebrantProfile)
	}{
		{name: "missing name", modify: func(p *CelebrantProfile) { p.Name = "" }},
		{name: "bad email", modify: func(p *CelebrantProfile) { p.ParentEmail = "not-an-email" }},
		{name: "too few digits", modify: func(p *CelebrantProfile) { p.ParentPhone = "12-34" }},
		{name: "letters in phone", modify: func(p *CelebrantProfile) { p.ParentPhone = "091 123 ABC" }},
		{name: "bad date", modify: func(p *CelebrantProfile) { p.DateOfBirth = "1.6.2015" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.modify(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestPartyEvent_Validate(t *testing.T) {
	valid := PartyEvent{
		CelebrantID: "2",
		Date:        "2025-06-01",
		StartTime:   "13:00",
		PackageType: "standard",
		GuestCount:  10,
		Status:      "upcoming",
		Price:       200,
		Deposit:     50,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		modify func(e *PartyEvent)
	}{
		{name: "missing celebrant", modify: func(e *PartyEvent) { e.CelebrantID = "" }},
		{name: "bad date", modify: func(e *PartyEvent) { e.Date = "2025/06/01" }},
		{name: "bad clock", modify: func(e *PartyEvent) { e.StartTime = "25:00" }},
		{name: "unknown package", modify: func(e *PartyEvent) { e.PackageType = "deluxe" }},
		{name: "unknown status", modify: func(e *PartyEvent) { e.Status = "postponed" }},
		{name: "negative price", modify: func(e *PartyEvent) { e.Price = -1 }},
		{name: "no guests", modify: func(e *PartyEvent) { e.GuestCount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.modify(&e)
			assert.Error(t, e.Validate())
		})
	}
}
