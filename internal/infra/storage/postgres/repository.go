package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CalendarBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

const (
	tableAvailability = "availability_windows"
	tableAppointments = "appointments"

	uniqueViolation = "23505"
)

var appointmentColumns = []string{
	"id",
	"owner_id",
	"invitee_name",
	"invitee_email",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"created_at",
}

// Repository хранилище окон доступности и записей в PostgreSQL.
// Уникальность слота обеспечивается ограничением
// UNIQUE (owner_id, booking_date, start_time), поэтому вставка атомарна
// и между несколькими экземплярами сервиса.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// SetAvailability заменяет окно доступности владельца (upsert)
func (r *Repository) SetAvailability(ctx context.Context, window domain.AvailabilityWindow) error {
	query, args, err := buildUpsertAvailability(window)
	if err != nil {
		return fmt.Errorf("%w: SetAvailability - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetAvailability - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetAvailability получает окно доступности владельца
func (r *Repository) GetAvailability(ctx context.Context, ownerID string) (*domain.AvailabilityWindow, error) {
	query, args, err := psqlbuilder.Select("owner_id", "start_time", "end_time", "updated_at").
		From(tableAvailability).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.AvailabilityWindow
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&window.OwnerID,
		&window.StartTime,
		&window.EndTime,
		&window.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailability - scan window: %v", ErrScanRow, err)
	}

	return &window, nil
}

// GetBookedStartTimes получает занятые слоты владельца на дату
func (r *Repository) GetBookedStartTimes(ctx context.Context, ownerID string, date time.Time) ([]types.TimeString, error) {
	query, args, err := psqlbuilder.Select("start_time").
		From(tableAppointments).
		Where(squirrel.Eq{"owner_id": ownerID, "booking_date": date.Format(domain.DateFormat)}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedStartTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedStartTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make([]types.TimeString, 0)
	for rows.Next() {
		var start types.TimeString
		if err := rows.Scan(&start); err != nil {
			return nil, fmt.Errorf("%w: GetBookedStartTimes - scan start time: %v", ErrScanRow, err)
		}
		booked = append(booked, start)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedStartTimes - iterate rows: %v", ErrScanRow, err)
	}

	return booked, nil
}

// IsSlotBooked проверяет, занят ли слот
func (r *Repository) IsSlotBooked(ctx context.Context, ownerID string, date time.Time, start types.TimeString) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From(tableAppointments).
		Where(squirrel.Eq{
			"owner_id":     ownerID,
			"booking_date": date.Format(domain.DateFormat),
			"start_time":   start,
		}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsSlotBooked - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: IsSlotBooked - scan result: %v", ErrScanRow, err)
	}

	return exists, nil
}

// CreateAppointment сохраняет запись, если слот свободен.
// INSERT ... ON CONFLICT DO NOTHING не возвращает строк при занятом слоте,
// это и нарушение уникальности транслируются в storage.ErrSlotAlreadyBooked.
func (r *Repository) CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	query, args, err := buildInsertAppointment(appt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateAppointment - build insert query: %v", ErrBuildQuery, err)
	}

	stored := *appt
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&stored.CreatedAt)
	if err != nil {
		if isSlotTaken(err) {
			return nil, storage.ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("%w: CreateAppointment - execute insert: %v", ErrExecQuery, err)
	}

	return &stored, nil
}

// ListAppointmentsByOwner получает все записи владельца в порядке создания
func (r *Repository) ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From(tableAppointments).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointmentsByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAppointmentsByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var appt domain.Appointment
		err := rows.Scan(
			&appt.ID,
			&appt.OwnerID,
			&appt.InviteeName,
			&appt.InviteeEmail,
			&appt.Date,
			&appt.StartTime,
			&appt.EndTime,
			&appt.Status,
			&appt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAppointmentsByOwner - scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, &appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAppointmentsByOwner - iterate rows: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func buildUpsertAvailability(window domain.AvailabilityWindow) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableAvailability).
		Columns("owner_id", "start_time", "end_time", "updated_at").
		Values(window.OwnerID, window.StartTime, window.EndTime, squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (owner_id) DO UPDATE SET " +
			"start_time = EXCLUDED.start_time, " +
			"end_time = EXCLUDED.end_time, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()
}

func buildInsertAppointment(appt *domain.Appointment) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableAppointments).
		Columns(
			"id",
			"owner_id",
			"invitee_name",
			"invitee_email",
			"booking_date",
			"start_time",
			"end_time",
			"status",
		).
		Values(
			appt.ID,
			appt.OwnerID,
			appt.InviteeName,
			appt.InviteeEmail,
			appt.Date.Format(domain.DateFormat),
			appt.StartTime,
			appt.EndTime,
			appt.Status,
		).
		Suffix("ON CONFLICT (owner_id, booking_date, start_time) DO NOTHING RETURNING created_at").
		ToSql()
}

func isSlotTaken(err error) bool {
	if errors.Is(err, sql.ErrNoRows) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
