package presentation

import (
	"fmt"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

// Bucket groups bookings by date relative to today. It ignores the stored
// status label, which may disagree.
type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketUpcoming  Bucket = "upcoming"
	BucketCompleted Bucket = "completed"
)

func ParseBucket(s string) (Bucket, error) {
	switch b := Bucket(s); b {
	case "":
		return BucketAll, nil
	case BucketAll, BucketUpcoming, BucketCompleted:
		return b, nil
	default:
		return "", fmt.Errorf("unknown filter %q", s)
	}
}

// BucketOf places a booking starting today or later in BucketUpcoming, and
// anything earlier in BucketCompleted.
func (m *Mapper) BucketOf(b domain.Booking) Bucket {
	if b.StartAt.Before(m.today()) {
		return BucketCompleted
	}
	return BucketUpcoming
}

// Select keeps the bookings falling in bucket, preserving order.
func (m *Mapper) Select(bookings []domain.Booking, bucket Bucket) []domain.Booking {
	if bucket == BucketAll {
		return bookings
	}

	selected := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if m.BucketOf(b) == bucket {
			selected = append(selected, b)
		}
	}
	return selected
}
