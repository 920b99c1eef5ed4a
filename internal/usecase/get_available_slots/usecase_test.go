package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CalendarBooking/internal/usecase/set_availability"
	"github.com/m04kA/SMC-CalendarBooking/pkg/logger"
	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var today = time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*UseCase, *memory.Repository) {
	t.Helper()

	repo := memory.NewRepository()
	require.NoError(t, repo.SetAvailability(context.Background(), domain.AvailabilityWindow{
		OwnerID:   "owner-1",
		StartTime: "09:00",
		EndTime:   "17:00",
	}))

	uc := NewUseCase(repo, domain.DefaultBookingPolicy(), logger.NewNop())
	uc.timeProvider = fixedTime{now: today}
	return uc, repo
}

func TestExecute_FullDay(t *testing.T) {
	uc, _ := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "owner-1", Date: "2026-10-20"})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, resp.Slots)
	assert.Equal(t, "2026-10-20", resp.Date.Format(domain.DateFormat))
}

func TestExecute_BookedSlotDisappears(t *testing.T) {
	uc, repo := newTestUseCase(t)
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	_, err := repo.CreateAppointment(context.Background(), &domain.Appointment{
		ID:        "a1",
		OwnerID:   "owner-1",
		Date:      date,
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.StatusConfirmed,
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "owner-1", Date: "2026-10-20"})
	require.NoError(t, err)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.Len(t, resp.Slots, 7)

	// other dates are not affected
	other, err := uc.Execute(context.Background(), &Request{OwnerID: "owner-1", Date: "2026-10-21"})
	require.NoError(t, err)
	assert.Contains(t, other.Slots, types.TimeString("10:00"))
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	uc, _ := newTestUseCase(t)

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "owner-1", Date: "2026-10-16"})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 8)
}

func TestExecute_AdvanceBoundary(t *testing.T) {
	uc, _ := newTestUseCase(t)
	limit := domain.DateOnly(today).AddDate(0, 0, domain.DefaultMaxAdvanceBookingDays)

	_, err := uc.Execute(context.Background(), &Request{OwnerID: "owner-1", Date: limit.Format(domain.DateFormat)})
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{OwnerID: "owner-1", Date: limit.AddDate(0, 0, 1).Format(domain.DateFormat)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		wantErr  error
		wantKind error
	}{
		{name: "empty owner", req: Request{Date: "2026-10-20"}, wantErr: ErrInvalidInput, wantKind: domain.ErrValidation},
		{name: "missing date", req: Request{OwnerID: "owner-1"}, wantErr: ErrInvalidInput, wantKind: domain.ErrValidation},
		{name: "malformed date", req: Request{OwnerID: "owner-1", Date: "20-10-2026"}, wantErr: ErrInvalidDate, wantKind: domain.ErrValidation},
		{name: "past date", req: Request{OwnerID: "owner-1", Date: "2026-10-15"}, wantErr: ErrInvalidDate, wantKind: domain.ErrValidation},
		{name: "unknown owner", req: Request{OwnerID: "nobody", Date: "2026-10-20"}, wantErr: ErrAvailabilityNotFound, wantKind: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t)

			_, err := uc.Execute(context.Background(), &tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}
}

func TestExecute_TrimsOwnerID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRepository()

	setAvailability := set_availability.NewUseCase(repo, domain.DefaultBookingPolicy(), logger.NewNop())
	_, err := setAvailability.Execute(ctx, &set_availability.Request{OwnerID: " owner-1 ", StartTime: "09:00", EndTime: "17:00"})
	require.NoError(t, err)

	uc := NewUseCase(repo, domain.DefaultBookingPolicy(), logger.NewNop())
	uc.timeProvider = fixedTime{now: today}

	resp, err := uc.Execute(ctx, &Request{OwnerID: " owner-1 ", Date: " 2026-10-20 "})
	require.NoError(t, err)
	assert.Equal(t, "owner-1", resp.OwnerID)
	assert.Len(t, resp.Slots, 8)
}
