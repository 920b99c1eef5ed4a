package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage/memory"
	createBooking "github.com/m04kA/SMC-CalendarBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CalendarBooking/pkg/keylock"
	"github.com/m04kA/SMC-CalendarBooking/pkg/logger"
	"github.com/m04kA/SMC-CalendarBooking/pkg/metrics"
)

func newTestHandler(t *testing.T) (*Handler, *metrics.Metrics) {
	t.Helper()

	repo := memory.NewRepository()
	require.NoError(t, repo.SetAvailability(context.Background(), domain.AvailabilityWindow{
		OwnerID:   "owner-1",
		StartTime: "09:00",
		EndTime:   "17:00",
	}))

	m := metrics.New("calendar-booking")
	uc := createBooking.NewUseCase(repo, keylock.New(), domain.DefaultBookingPolicy(), logger.NewNop())
	return NewHandler(uc, m, logger.NewNop()), m
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format(domain.DateFormat)
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func bookingBody(ownerID, email, date, slot string) string {
	return `{"calendarOwnerId":"` + ownerID + `","inviteeName":"Jane","inviteeEmail":"` + email +
		`","date":"` + date + `","slotStartTime":"` + slot + `"}`
}

func TestHandle_Created(t *testing.T) {
	h, m := newTestHandler(t)

	w := post(h, bookingBody("owner-1", "jane@example.com", tomorrow(), "10:00"))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "owner-1", resp.CalendarOwnerID)
	assert.Equal(t, tomorrow(), resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, "confirmed", resp.Status)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues(metrics.BookingCreated)))
}

func TestHandle_Conflict(t *testing.T) {
	h, m := newTestHandler(t)
	body := bookingBody("owner-1", "jane@example.com", tomorrow(), "10:00")

	require.Equal(t, http.StatusCreated, post(h, body).Code)
	w := post(h, body)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues(metrics.BookingConflict)))
}

func TestHandle_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed json", body: `{"calendarOwnerId":`, wantStatus: http.StatusBadRequest},
		{name: "empty body", body: ``, wantStatus: http.StatusBadRequest},
		{name: "invalid email", body: bookingBody("owner-1", "nope", tomorrow(), "10:00"), wantStatus: http.StatusBadRequest},
		{name: "invalid date", body: bookingBody("owner-1", "jane@example.com", "tomorrow", "10:00"), wantStatus: http.StatusBadRequest},
		{name: "off grid slot", body: bookingBody("owner-1", "jane@example.com", tomorrow(), "10:30"), wantStatus: http.StatusBadRequest},
		{name: "slot outside window", body: bookingBody("owner-1", "jane@example.com", tomorrow(), "18:00"), wantStatus: http.StatusBadRequest},
		{name: "unknown owner", body: bookingBody("nobody", "jane@example.com", tomorrow(), "10:00"), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)

			w := post(h, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAttempts.WithLabelValues(metrics.BookingRejected)))
		})
	}
}

func TestHandle_MetricsDisabled(t *testing.T) {
	repo := memory.NewRepository()
	uc := createBooking.NewUseCase(repo, keylock.New(), domain.DefaultBookingPolicy(), logger.NewNop())
	var m *metrics.Metrics
	h := NewHandler(uc, m, logger.NewNop())

	w := post(h, bookingBody("owner-1", "jane@example.com", tomorrow(), "10:00"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
