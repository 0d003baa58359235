package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yizeng/gab/gin/gorm/party-venue/internal/config"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/db"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/domain"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/presentation"
	"github.com/yizeng/gab/gin/gorm/party-venue/internal/repository/dao/sqlite"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	sqlDB, err := db.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "venue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	conf := &config.AppConfig{
		API:      &config.APIConfig{Environment: "test", Port: "8080", BaseURL: "localhost:8080"},
		Gin:      &config.GinConfig{Mode: gin.TestMode},
		Database: &config.DatabaseConfig{Driver: config.DriverSQLite},
		SQLite:   &config.SQLiteConfig{},
		Postgres: &config.PostgresConfig{},
		Venue:    &config.VenueConfig{Timezone: "UTC"},
		Log:      &config.LogConfig{Level: "info"},
	}

	return NewServer(conf, Storage{
		Celebrants: sqlite.NewCelebrantDAO(sqlDB),
		Bookings:   sqlite.NewBookingDAO(sqlDB),
	})
}

func send(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func TestServer_CelebrantLifecycle(t *testing.T) {
	s := newTestServer(t)

	rec := send(t, s, http.MethodPost, "/Celebrants", map[string]any{
		"code":        99,
		"firstName":   "Ana",
		"lastName":    "Kovač",
		"email":       "a@x.hr",
		"phone":       "0911234567",
		"dateOfBirth": "2015-06-01",
		"note":        "",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.Celebrant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEqual(t, uint(99), created.Code)
	assert.Nil(t, created.Note)
	assert.Nil(t, created.UpdatedAt)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, fmt.Sprintf("/Celebrants/%d", created.Code), rec.Header().Get("Location"))

	rec = send(t, s, http.MethodGet, rec.Header().Get("Location"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.Celebrant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Kovač", got.LastName)
	assert.Equal(t, "2015-06-01", got.DateOfBirth.Format("2006-01-02"))

	path := fmt.Sprintf("/Celebrants/%d", created.Code)

	rec = send(t, s, http.MethodPut, path, map[string]any{
		"code": created.Code + 1, "firstName": "Ana", "lastName": "Kovač", "email": "a@x.hr", "phone": "0911234567",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(t, s, http.MethodPut, path, map[string]any{
		"code": created.Code, "firstName": "Ana", "lastName": "Horvat", "email": "a@x.hr", "phone": "0911234567",
	})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = send(t, s, http.MethodGet, path, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Horvat", got.LastName)
	assert.Nil(t, got.DateOfBirth)
	assert.NotNil(t, got.UpdatedAt)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	rec = send(t, s, http.MethodPut, "/Celebrants/4242", map[string]any{
		"code": 4242, "firstName": "Ana", "lastName": "Kovač", "email": "a@x.hr", "phone": "0911234567",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, http.StatusNoContent, send(t, s, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, send(t, s, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, send(t, s, http.MethodDelete, path, nil).Code)
}

func TestServer_BookingsCascadeAndForeignKey(t *testing.T) {
	s := newTestServer(t)

	rec := send(t, s, http.MethodPost, "/Bookings", map[string]any{
		"celebrantCode": 1, "title": "Birthday Party", "startAt": "2025-06-01T13:00",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(t, s, http.MethodPost, "/Celebrants", map[string]any{
		"firstName": "Ana", "lastName": "Kovač", "email": "a@x.hr", "phone": "0911234567",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var owner domain.Celebrant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &owner))

	var codes []uint
	for i := 0; i < 2; i++ {
		rec = send(t, s, http.MethodPost, "/Bookings", map[string]any{
			"celebrantCode": owner.Code, "title": "Birthday Party", "startAt": "2025-06-01T13:00",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var b domain.Booking
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
		require.NotNil(t, b.Celebrant)
		assert.Equal(t, owner.Code, b.Celebrant.Code)
		codes = append(codes, b.Code)
	}

	rec = send(t, s, http.MethodPut, fmt.Sprintf("/Bookings/%d", codes[0]), map[string]any{
		"code": codes[0], "celebrantCode": 999, "title": "Birthday Party", "startAt": "2025-06-01T13:00",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(t, s, http.MethodGet, "/views/bookings/"+fmt.Sprint(codes[0]), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var event presentation.PartyEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	assert.Equal(t, "2025-06-01", event.Date)
	assert.Equal(t, "13:00", event.StartTime)
	assert.Equal(t, "16:00", event.EndTime)
	assert.Equal(t, "Ana Kovač", event.CelebrantName)

	require.Equal(t, http.StatusNoContent, send(t, s, http.MethodDelete, fmt.Sprintf("/Celebrants/%d", owner.Code), nil).Code)

	for _, code := range codes {
		assert.Equal(t, http.StatusNotFound, send(t, s, http.MethodGet, fmt.Sprintf("/Bookings/%d", code), nil).Code)
	}
}

func TestServer_Views(t *testing.T) {
	s := newTestServer(t)

	rec := send(t, s, http.MethodPost, "/views/celebrants", presentation.CelebrantProfile{
		Name:        "Ana Marija Kovač",
		DateOfBirth: "2015-06-01",
		ParentPhone: "091 123 4567",
		ParentEmail: "a@x.hr",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var profile presentation.CelebrantProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Ana Marija Kovač", profile.Name)
	assert.Equal(t, "Ana", profile.ParentName)

	rec = send(t, s, http.MethodGet, "/Celebrants/"+profile.ID, nil)
	var stored domain.Celebrant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Equal(t, "Marija Kovač", stored.LastName)

	rec = send(t, s, http.MethodPost, "/views/bookings", presentation.PartyEvent{
		CelebrantID: profile.ID,
		Date:        "2099-06-01",
		StartTime:   "13:00",
		PackageType: "premium",
		GuestCount:  15,
		Status:      "upcoming",
		Price:       300,
		Deposit:     75,
		DepositPaid: true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = send(t, s, http.MethodGet, "/views/bookings?filter=upcoming", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var upcoming []presentation.PartyEvent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &upcoming))
	require.Len(t, upcoming, 1)
	assert.Equal(t, "premium", upcoming[0].PackageType)

	rec = send(t, s, http.MethodGet, "/views/bookings?filter=completed", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = send(t, s, http.MethodGet, "/views/celebrants/"+profile.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail presentation.ProfileDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Len(t, detail.Events, 1)

	rec = send(t, s, http.MethodGet, "/views/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dashboard presentation.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, 300.0, dashboard.TotalRevenue)
	assert.Equal(t, 1, dashboard.NewCustomers)
	assert.Equal(t, 1, dashboard.UpcomingBirthdays)
	assert.Len(t, dashboard.RecentActivities, 2)
}
