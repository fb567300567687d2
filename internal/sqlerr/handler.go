package sqlerr

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tessdev/holiday-service/internal/errs"
)

// ErrCode reports the Code of an already classified error, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// Classify turns any error returned by a database read into an *Error.
//
// Repositories call it on every failed query so the service layer can log
// a stable category next to the driver message. nil stays nil and an
// already classified error is returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}

	code := Other
	var connectErr *pgconn.ConnectError
	switch {
	case errors.As(err, &connectErr),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, driver.ErrBadConn),
		pgconn.Timeout(err):
		code = ConnectionFailure
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = QueryCanceled
	}

	return &Error{
		Code:      code,
		Severity:  SeverityUnknown,
		Message:   err.Error(),
		driverErr: err,
	}
}

// HandleError converts a low-level database error into an application-level
// error for the client:
//   - *errs.HTTPError: returned unchanged
//   - ErrNoRows: 404
//   - any classified or driver database error: 503 HOLIDAYS_UNAVAILABLE
//   - anything else: 500
//
// The global error handler funnels every unknown error through here.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	var sqlErr *Error
	var pgerr *pgconn.PgError
	var connectErr *pgconn.ConnectError
	if errors.As(err, &sqlErr) || errors.As(err, &pgerr) || errors.As(err, &connectErr) {
		return errs.NewHolidaysUnavailableError()
	}

	return errs.NewInternalServerError()
}
