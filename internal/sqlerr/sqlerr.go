// Package sqlerr handles database driver errors.
//
// It parses SQLSTATE codes and driver sentinels from the database
// drivers and classifies them, so a failed holiday read can be logged
// with a meaningful category and reported to clients as "holiday data
// unavailable" rather than leaking driver messages.
package sqlerr

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the category of a database failure.
type Code string

const (
	// UndefinedTable: the holidays table does not exist (migrations not run).
	UndefinedTable Code = "undefined_table"
	// UndefinedColumn: the table exists with an unexpected shape.
	UndefinedColumn Code = "undefined_column"
	// InsufficientPrivilege: the configured role may not read the table.
	InsufficientPrivilege Code = "insufficient_privilege"
	// ConnectionFailure: the server could not be reached or went away.
	ConnectionFailure Code = "connection_failure"
	// QueryCanceled: statement timeout or context cancellation.
	QueryCanceled Code = "query_canceled"
	// InvalidData: a row could not be turned into a holiday.
	InvalidData Code = "invalid_data"
	// Other covers everything else.
	Other Code = "other"
)

// Severity mirrors the Postgres error severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityUnknown Severity = "UNKNOWN"
)

// Error is a classified database error. The driver error stays reachable
// through Unwrap for logging and errors.As.
type Error struct {
	Code         Code
	Severity     Severity
	DatabaseCode string
	Message      string
	TableName    string
	ColumnName   string
	driverErr    error
}

func (e *Error) Error() string {
	if e.DatabaseCode != "" {
		return fmt.Sprintf("%s (SQLSTATE %s): %s", e.Code, e.DatabaseCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a Postgres SQLSTATE to a Code.
//
// Whole classes are matched first: class 08 is "connection exception",
// class 57 "operator intervention" (cancel, shutdown).
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	case "42501":
		return InsufficientPrivilege
	case "57014":
		return QueryCanceled
	case "22007", "22008":
		return InvalidData
	}

	switch {
	case strings.HasPrefix(sqlstate, "08"), strings.HasPrefix(sqlstate, "57"):
		return ConnectionFailure
	}

	return Other
}

// MapSeverity normalizes a Postgres severity string.
func MapSeverity(severity string) Severity {
	switch strings.ToUpper(severity) {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityUnknown
	}
}

// ConvertPgError converts a raw Postgres error into a classified Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:         MapCode(src.Code),
		Severity:     MapSeverity(src.Severity),
		DatabaseCode: src.Code,
		Message:      src.Message,
		TableName:    src.TableName,
		ColumnName:   src.ColumnName,
		driverErr:    src,
	}
}
