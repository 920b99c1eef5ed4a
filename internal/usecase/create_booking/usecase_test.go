package create_booking

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-CalendarBooking/pkg/keylock"
	"github.com/m04kA/SMC-CalendarBooking/pkg/logger"
	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// racingRepo reports every slot as free and then loses the insert, as a
// second service instance would make it do.
type racingRepo struct {
	*memory.Repository
}

func (racingRepo) IsSlotBooked(context.Context, string, time.Time, types.TimeString) (bool, error) {
	return false, nil
}

func (racingRepo) CreateAppointment(context.Context, *domain.Appointment) (*domain.Appointment, error) {
	return nil, storage.ErrSlotAlreadyBooked
}

var today = time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo Repository) *UseCase {
	t.Helper()

	uc := NewUseCase(repo, keylock.New(), domain.DefaultBookingPolicy(), logger.NewNop())
	uc.timeProvider = fixedTime{now: today}
	return uc
}

func newRepoWithWindow(t *testing.T) *memory.Repository {
	t.Helper()

	repo := memory.NewRepository()
	require.NoError(t, repo.SetAvailability(context.Background(), domain.AvailabilityWindow{
		OwnerID:   "owner-1",
		StartTime: "09:00",
		EndTime:   "17:00",
	}))
	return repo
}

func validRequest() *Request {
	return &Request{
		OwnerID:       "owner-1",
		InviteeName:   "Jane Doe",
		InviteeEmail:  "jane@example.com",
		Date:          "2026-10-20",
		SlotStartTime: "10:00",
	}
}

func TestExecute_CreatesAppointment(t *testing.T) {
	repo := newRepoWithWindow(t)
	uc := newTestUseCase(t, repo)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	parsed, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	assert.Equal(t, "owner-1", resp.OwnerID)
	assert.Equal(t, "Jane Doe", resp.InviteeName)
	assert.Equal(t, "2026-10-20", resp.Date.Format(domain.DateFormat))
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Equal(t, "confirmed", resp.Status)
	assert.False(t, resp.CreatedAt.IsZero())

	list, err := repo.ListAppointmentsByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, resp.ID, list[0].ID)
}

func TestExecute_TrimsInput(t *testing.T) {
	uc := newTestUseCase(t, newRepoWithWindow(t))

	req := validRequest()
	req.InviteeName = "  Jane Doe  "
	req.InviteeEmail = " jane@example.com "

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", resp.InviteeName)
	assert.Equal(t, "jane@example.com", resp.InviteeEmail)
}

func TestExecute_SecondBookingConflicts(t *testing.T) {
	uc := newTestUseCase(t, newRepoWithWindow(t))

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	repo := newRepoWithWindow(t)
	uc := newTestUseCase(t, repo)

	const workers = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
		others    []error
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := uc.Execute(context.Background(), validRequest())

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrConflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)

	list, err := repo.ListAppointmentsByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestExecute_ConcurrentDifferentSlots(t *testing.T) {
	repo := newRepoWithWindow(t)
	uc := newTestUseCase(t, repo)

	slots := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}

	var wg sync.WaitGroup
	errs := make([]error, len(slots))
	for i, slot := range slots {
		wg.Add(1)
		go func(i int, slot string) {
			defer wg.Done()
			req := validRequest()
			req.SlotStartTime = slot
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i, slot)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	list, err := repo.ListAppointmentsByOwner(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, list, len(slots))
}

func TestExecute_StorageLevelConflict(t *testing.T) {
	uc := newTestUseCase(t, racingRepo{Repository: newRepoWithWindow(t)})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestExecute_AdvanceBoundary(t *testing.T) {
	uc := newTestUseCase(t, newRepoWithWindow(t))
	limit := domain.DateOnly(today).AddDate(0, 0, domain.DefaultMaxAdvanceBookingDays)

	req := validRequest()
	req.Date = limit.Format(domain.DateFormat)
	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)

	req = validRequest()
	req.Date = limit.AddDate(0, 0, 1).Format(domain.DateFormat)
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExecute_UnknownOwner(t *testing.T) {
	uc := newTestUseCase(t, newRepoWithWindow(t))

	req := validRequest()
	req.OwnerID = "nobody"
	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "empty owner", mutate: func(r *Request) { r.OwnerID = " " }, wantErr: ErrInvalidInput},
		{name: "empty name", mutate: func(r *Request) { r.InviteeName = "   " }, wantErr: ErrInvalidInput},
		{name: "name too long", mutate: func(r *Request) { r.InviteeName = strings.Repeat("a", 256) }, wantErr: ErrInvalidInput},
		{name: "empty email", mutate: func(r *Request) { r.InviteeEmail = "" }, wantErr: ErrInvalidInput},
		{name: "malformed email", mutate: func(r *Request) { r.InviteeEmail = "not-an-email" }, wantErr: ErrInvalidInput},
		{name: "malformed date", mutate: func(r *Request) { r.Date = "2026/10/20" }, wantErr: ErrInvalidDate},
		{name: "past date", mutate: func(r *Request) { r.Date = "2026-10-15" }, wantErr: ErrInvalidDate},
		{name: "malformed slot", mutate: func(r *Request) { r.SlotStartTime = "ten" }, wantErr: ErrInvalidTimeSlot},
		{name: "slot not on the hour", mutate: func(r *Request) { r.SlotStartTime = "10:30" }, wantErr: ErrInvalidTimeSlot},
		{name: "slot before window", mutate: func(r *Request) { r.SlotStartTime = "08:00" }, wantErr: ErrInvalidTimeSlot},
		{name: "slot at window end", mutate: func(r *Request) { r.SlotStartTime = "17:00" }, wantErr: ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepoWithWindow(t)
			uc := newTestUseCase(t, repo)

			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)

			list, listErr := repo.ListAppointmentsByOwner(context.Background(), "owner-1")
			require.NoError(t, listErr)
			assert.Empty(t, list)
		})
	}
}

func TestExecute_LastSlotOfWindow(t *testing.T) {
	uc := newTestUseCase(t, newRepoWithWindow(t))

	req := validRequest()
	req.SlotStartTime = "16:00"
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("17:00"), resp.EndTime)
}

func TestExecute_CanceledContext(t *testing.T) {
	repo := newRepoWithWindow(t)
	uc := newTestUseCase(t, repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrInternal)

	list, listErr := repo.ListAppointmentsByOwner(context.Background(), "owner-1")
	require.NoError(t, listErr)
	assert.Empty(t, list)
}

func TestExecute_EveryOfferedSlotIsBookable(t *testing.T) {
	for _, duration := range []int{60, 120, 480} {
		t.Run(strconv.Itoa(duration), func(t *testing.T) {
			repo := newRepoWithWindow(t)
			policy := domain.DefaultBookingPolicy()
			policy.SlotDurationMinutes = duration

			uc := NewUseCase(repo, keylock.New(), policy, logger.NewNop())
			uc.timeProvider = fixedTime{now: today}

			window, err := repo.GetAvailability(context.Background(), "owner-1")
			require.NoError(t, err)

			offered := domain.GenerateSlots(*window, duration)
			require.NotEmpty(t, offered)

			for _, slot := range offered {
				req := validRequest()
				req.SlotStartTime = slot.String()
				_, err := uc.Execute(context.Background(), req)
				assert.NoError(t, err, "slot %s", slot)
			}
		})
	}
}
