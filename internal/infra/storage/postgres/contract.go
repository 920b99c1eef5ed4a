package postgres

import "github.com/m04kA/SMC-CalendarBooking/pkg/dbmetrics"

// DBExecutor поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
