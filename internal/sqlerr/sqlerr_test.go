package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessdev/holiday-service/internal/errs"
)

func TestMapCode(t *testing.T) {
	assert.Equal(t, UndefinedTable, MapCode("42P01"))
	assert.Equal(t, UndefinedColumn, MapCode("42703"))
	assert.Equal(t, InsufficientPrivilege, MapCode("42501"))
	assert.Equal(t, QueryCanceled, MapCode("57014"))
	assert.Equal(t, ConnectionFailure, MapCode("08006"))
	assert.Equal(t, ConnectionFailure, MapCode("57P01"))
	assert.Equal(t, InvalidData, MapCode("22007"))
	assert.Equal(t, Other, MapCode("23505"))
}

func TestClassify_PgError(t *testing.T) {
	pgerr := &pgconn.PgError{
		Code:      "42P01",
		Severity:  "ERROR",
		Message:   `relation "holidays" does not exist`,
		TableName: "holidays",
	}

	err := Classify(fmt.Errorf("query holidays: %w", pgerr))
	require.Error(t, err)
	assert.Equal(t, UndefinedTable, ErrCode(err))

	var sqlErr *Error
	require.True(t, errors.As(err, &sqlErr))
	assert.Equal(t, SeverityError, sqlErr.Severity)
	assert.Equal(t, "42P01", sqlErr.DatabaseCode)
	assert.True(t, errors.Is(err, pgerr))
}

func TestClassify_Sentinels(t *testing.T) {
	assert.Nil(t, Classify(nil))
	assert.Equal(t, ConnectionFailure, ErrCode(Classify(sql.ErrConnDone)))
	assert.Equal(t, QueryCanceled, ErrCode(Classify(context.DeadlineExceeded)))
	assert.Equal(t, Other, ErrCode(Classify(errors.New("boom"))))

	// Already classified errors pass through untouched.
	classified := Classify(sql.ErrConnDone)
	assert.Same(t, classified, Classify(classified))
}

func TestHandleError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"http error passes through", errs.NewNotFoundError("x", false, nil), http.StatusNotFound},
		{"no rows", sql.ErrNoRows, http.StatusNotFound},
		{"classified", Classify(sql.ErrConnDone), http.StatusServiceUnavailable},
		{"raw pg error", &pgconn.PgError{Code: "08006"}, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.True(t, errors.As(HandleError(tc.err), &httpErr))
			assert.Equal(t, tc.status, httpErr.Status)
		})
	}
}
