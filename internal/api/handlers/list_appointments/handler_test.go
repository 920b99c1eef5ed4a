package list_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage/memory"
	listAppointments "github.com/m04kA/SMC-CalendarBooking/internal/usecase/list_appointments"
	"github.com/m04kA/SMC-CalendarBooking/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()

	repo := memory.NewRepository()
	today := domain.DateOnly(time.Now())
	for _, appt := range []*domain.Appointment{
		{ID: "old", OwnerID: "owner-1", Date: today.AddDate(0, 0, -3), StartTime: "09:00", EndTime: "10:00", Status: domain.StatusConfirmed},
		{ID: "next", OwnerID: "owner-1", Date: today.AddDate(0, 0, 2), StartTime: "11:00", EndTime: "12:00", Status: domain.StatusConfirmed},
	} {
		_, err := repo.CreateAppointment(context.Background(), appt)
		require.NoError(t, err)
	}

	h := NewHandler(listAppointments.NewUseCase(repo, logger.NewNop()), logger.NewNop())

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/owners/{ownerId}/appointments", h.Handle).Methods(http.MethodGet)
	return r
}

func get(t *testing.T, url string) ([]AppointmentResponse, int) {
	t.Helper()

	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	if w.Code != http.StatusOK {
		return nil, w.Code
	}

	var resp []AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp, w.Code
}

func TestHandle_ListsAll(t *testing.T) {
	resp, code := get(t, "/api/v1/owners/owner-1/appointments")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp, 2)
	assert.Equal(t, "old", resp[0].ID)
	assert.Equal(t, "next", resp[1].ID)
	assert.Equal(t, "11:00", resp[1].StartTime)
}

func TestHandle_UpcomingOnly(t *testing.T) {
	resp, code := get(t, "/api/v1/owners/owner-1/appointments?upcoming=true")

	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp, 1)
	assert.Equal(t, "next", resp[0].ID)
}

func TestHandle_EmptyListIsArray(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/owners/nobody/appointments", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_InvalidUpcoming(t *testing.T) {
	_, code := get(t, "/api/v1/owners/owner-1/appointments?upcoming=maybe")

	assert.Equal(t, http.StatusBadRequest, code)
}
