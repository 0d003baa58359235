package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
)

type mockCelebrantRepo struct {
	mock.Mock
}

func (m *mockCelebrantRepo) FindAll(ctx context.Context) ([]domain.Celebrant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Celebrant), args.Error(1)
}

func (m *mockCelebrantRepo) FindByCode(ctx context.Context, code uint) (domain.Celebrant, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Celebrant), args.Error(1)
}

func (m *mockCelebrantRepo) Exists(ctx context.Context, code uint) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockCelebrantRepo) Create(ctx context.Context, celebrant domain.Celebrant) (domain.Celebrant, error) {
	args := m.Called(ctx, celebrant)
	return args.Get(0).(domain.Celebrant), args.Error(1)
}

func (m *mockCelebrantRepo) Update(ctx context.Context, celebrant domain.Celebrant) error {
	return m.Called(ctx, celebrant).Error(0)
}

func (m *mockCelebrantRepo) Delete(ctx context.Context, code uint) error {
	return m.Called(ctx, code).Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) FindAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) FindByCode(ctx context.Context, code uint) (domain.Booking, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Exists(ctx context.Context, code uint) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	args := m.Called(ctx, booking)
	return args.Get(0).(domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Update(ctx context.Context, booking domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, code uint) error {
	return m.Called(ctx, code).Error(0)
}

func ptr[T any](v T) *T {
	return &v
}
