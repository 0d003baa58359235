package presentation

import (
	"fmt"
	"sort"
	"time"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

type ActivityType string

const (
	ActivityNewBooking   ActivityType = "new_booking"
	ActivityPayment      ActivityType = "payment"
	ActivityCancellation ActivityType = "cancellation"
)

const (
	recentActivityLimit = 3

	// celebrantActivityOffset keeps celebrant activity ids apart from booking codes.
	celebrantActivityOffset = 1000
)

type Activity struct {
	ID          uint         `json:"id"`
	Type        ActivityType `json:"type"`
	Date        string       `json:"date"`
	Description string       `json:"description"`

	at time.Time
}

type Dashboard struct {
	TotalRevenue       float64    `json:"totalRevenue"`
	NewCustomers       int        `json:"newCustomers"`
	UpcomingBirthdays  int        `json:"upcomingBirthdays"`
	CompletedBirthdays int        `json:"completedBirthdays"`
	RecentActivities   []Activity `json:"recentActivities"`
}

// Dashboard derives the summary shown on the landing page from the current
// records. Counting rules differ from BucketOf: an upcoming party must start
// after today's midnight and not be cancelled, while one labelled completed
// counts as completed whatever its date.
func (m *Mapper) Dashboard(celebrants []domain.Celebrant, bookings []domain.Booking) Dashboard {
	today := m.today()
	names := make(map[uint]string, len(celebrants))
	for _, c := range celebrants {
		names[c.Code] = c.FullName()
	}

	d := Dashboard{
		NewCustomers:     len(celebrants),
		RecentActivities: make([]Activity, 0, len(bookings)+len(celebrants)),
	}

	for _, b := range bookings {
		status := b.StatusLabel()

		if b.Price != nil {
			d.TotalRevenue += *b.Price
		}
		if b.StartAt.After(today) && status != domain.StatusCancelled {
			d.UpcomingBirthdays++
		}
		if b.StartAt.Before(today) || status == domain.StatusCompleted {
			d.CompletedBirthdays++
		}

		d.RecentActivities = append(d.RecentActivities, bookingActivity(b, names))
	}

	for _, c := range celebrants {
		at := c.CreatedAt
		if c.UpdatedAt != nil {
			at = *c.UpdatedAt
		}
		if at.IsZero() {
			at = m.now()
		}

		d.RecentActivities = append(d.RecentActivities, Activity{
			ID:          c.Code + celebrantActivityOffset,
			Type:        ActivityNewBooking,
			Date:        at.UTC().Format(time.RFC3339),
			Description: "New celebrant: " + c.FullName(),
			at:          at,
		})
	}

	sort.SliceStable(d.RecentActivities, func(i, j int) bool {
		return d.RecentActivities[i].at.After(d.RecentActivities[j].at)
	})
	if len(d.RecentActivities) > recentActivityLimit {
		d.RecentActivities = d.RecentActivities[:recentActivityLimit]
	}

	return d
}

func bookingActivity(b domain.Booking, names map[uint]string) Activity {
	name, ok := names[b.CelebrantCode]
	if !ok {
		name = "unknown celebrant"
	}

	a := Activity{
		ID:   b.Code,
		Type: ActivityNewBooking,
		at:   b.ActivityAt(),
	}
	a.Date = a.at.UTC().Format(time.RFC3339)

	switch {
	case b.StatusLabel() == domain.StatusCancelled:
		a.Type = ActivityCancellation
		a.Description = fmt.Sprintf("Cancelled birthday party for %s", name)
	case b.DepositPaid != nil && *b.DepositPaid:
		a.Type = ActivityPayment
		a.Description = fmt.Sprintf("Deposit received from %s", name)
	default:
		a.Description = fmt.Sprintf("New birthday party booking for %s", name)
	}

	return a
}
