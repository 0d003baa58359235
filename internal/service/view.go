package service

import (
	"context"
	"fmt"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/presentation"
)

type CelebrantStore interface {
	List(ctx context.Context) ([]domain.Celebrant, error)
	Get(ctx context.Context, code uint) (domain.Celebrant, error)
	Create(ctx context.Context, celebrant domain.Celebrant) (domain.Celebrant, error)
	Update(ctx context.Context, code uint, celebrant domain.Celebrant) error
}

type BookingStore interface {
	List(ctx context.Context) ([]domain.Booking, error)
	Get(ctx context.Context, code uint) (domain.Booking, error)
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	Update(ctx context.Context, code uint, booking domain.Booking) error
}

// ViewService serves the booking UI: it maps form input to records, stores
// them through the record services and maps the results back.
type ViewService struct {
	celebrants CelebrantStore
	bookings   BookingStore
	mapper     *presentation.Mapper
}

func NewViewService(celebrants CelebrantStore, bookings BookingStore, mapper *presentation.Mapper) *ViewService {
	return &ViewService{
		celebrants: celebrants,
		bookings:   bookings,
		mapper:     mapper,
	}
}

func (s *ViewService) Profiles(ctx context.Context) ([]presentation.CelebrantProfile, error) {
	celebrants, err := s.celebrants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.celebrants.List -> %w", err)
	}

	profiles := make([]presentation.CelebrantProfile, 0, len(celebrants))
	for _, c := range celebrants {
		profiles = append(profiles, s.mapper.ToProfile(c))
	}

	return profiles, nil
}

func (s *ViewService) Profile(ctx context.Context, code uint) (presentation.ProfileDetail, error) {
	celebrant, err := s.celebrants.Get(ctx, code)
	if err != nil {
		return presentation.ProfileDetail{}, fmt.Errorf("s.celebrants.Get -> %w", err)
	}

	return s.mapper.ToProfileDetail(celebrant), nil
}

func (s *ViewService) CreateProfile(ctx context.Context, profile presentation.CelebrantProfile) (presentation.CelebrantProfile, error) {
	celebrant, err := s.celebrantFromProfile(profile)
	if err != nil {
		return presentation.CelebrantProfile{}, err
	}

	created, err := s.celebrants.Create(ctx, celebrant)
	if err != nil {
		return presentation.CelebrantProfile{}, fmt.Errorf("s.celebrants.Create -> %w", err)
	}

	return s.mapper.ToProfile(created), nil
}

// UpdateProfile replaces the celebrant behind code. A profile without an id
// takes the one from code; a different id is rejected.
func (s *ViewService) UpdateProfile(ctx context.Context, code uint, profile presentation.CelebrantProfile) error {
	celebrant, err := s.celebrantFromProfile(profile)
	if err != nil {
		return err
	}
	if celebrant.Code == 0 {
		celebrant.Code = code
	}

	if err = s.celebrants.Update(ctx, code, celebrant); err != nil {
		return fmt.Errorf("s.celebrants.Update -> %w", err)
	}

	return nil
}

// Events lists bookings as UI events, keeping those in bucket.
func (s *ViewService) Events(ctx context.Context, bucket presentation.Bucket) ([]presentation.PartyEvent, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.bookings.List -> %w", err)
	}

	selected := s.mapper.Select(bookings, bucket)
	events := make([]presentation.PartyEvent, 0, len(selected))
	for _, b := range selected {
		events = append(events, s.mapper.ToEvent(b))
	}

	return events, nil
}

func (s *ViewService) Event(ctx context.Context, code uint) (presentation.PartyEvent, error) {
	booking, err := s.bookings.Get(ctx, code)
	if err != nil {
		return presentation.PartyEvent{}, fmt.Errorf("s.bookings.Get -> %w", err)
	}

	return s.mapper.ToEvent(booking), nil
}

func (s *ViewService) CreateEvent(ctx context.Context, event presentation.PartyEvent) (presentation.PartyEvent, error) {
	booking, err := s.bookingFromEvent(event)
	if err != nil {
		return presentation.PartyEvent{}, err
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return presentation.PartyEvent{}, fmt.Errorf("s.bookings.Create -> %w", err)
	}

	return s.mapper.ToEvent(created), nil
}

func (s *ViewService) UpdateEvent(ctx context.Context, code uint, event presentation.PartyEvent) error {
	booking, err := s.bookingFromEvent(event)
	if err != nil {
		return err
	}
	if booking.Code == 0 {
		booking.Code = code
	}

	if err = s.bookings.Update(ctx, code, booking); err != nil {
		return fmt.Errorf("s.bookings.Update -> %w", err)
	}

	return nil
}

func (s *ViewService) Dashboard(ctx context.Context) (presentation.Dashboard, error) {
	celebrants, err := s.celebrants.List(ctx)
	if err != nil {
		return presentation.Dashboard{}, fmt.Errorf("s.celebrants.List -> %w", err)
	}

	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return presentation.Dashboard{}, fmt.Errorf("s.bookings.List -> %w", err)
	}

	return s.mapper.Dashboard(celebrants, bookings), nil
}

func (s *ViewService) celebrantFromProfile(profile presentation.CelebrantProfile) (domain.Celebrant, error) {
	if err := profile.Validate(); err != nil {
		return domain.Celebrant{}, invalid(err)
	}

	celebrant, err := s.mapper.FromProfile(profile)
	if err != nil {
		return domain.Celebrant{}, invalid(err)
	}

	return celebrant, nil
}

func (s *ViewService) bookingFromEvent(event presentation.PartyEvent) (domain.Booking, error) {
	if err := event.Validate(); err != nil {
		return domain.Booking{}, invalid(err)
	}

	booking, err := s.mapper.FromEvent(event)
	if err != nil {
		return domain.Booking{}, invalid(err)
	}

	return booking, nil
}
