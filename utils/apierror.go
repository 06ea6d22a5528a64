package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
)

// Fixed response messages. Tests assert on these exact strings.
const (
	MsgBadRequest        = "Bad request"
	MsgMissingField      = "Missing required field(s)"
	MsgInvalidSortBy     = "Invalid sort_by query"
	MsgInvalidOrder      = "Invalid order query"
	MsgInvalidPagination = "Invalid limit or page query"
	MsgAlreadyExists     = "Already exists"
	MsgEndOfResults      = "End of results reached"
	MsgInternal          = "Internal server error"
	MsgPathNotFound      = "Path not found"
)

// APIError is an application-level rejection carrying the HTTP status and the
// message to emit verbatim.
type APIError struct {
	Status int
	Msg    string
}

func (e *APIError) Error() string {
	return e.Msg
}

func NewAPIError(status int, msg string) *APIError {
	return &APIError{Status: status, Msg: msg}
}

func BadRequest(msg string) *APIError {
	return NewAPIError(http.StatusBadRequest, msg)
}

func NotFound(msg string) *APIError {
	return NewAPIError(http.StatusNotFound, msg)
}

// Postgres SQLSTATE codes recognised by the translator.
const (
	pgInvalidTextRepresentation = "22P02"
	pgInvalidRowCount           = "2201W"
	pgInvalidRowOffset          = "2201X"
	pgNotNullViolation          = "23502"
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
)

// FromDBError maps recognised Postgres constraint errors to API errors.
// Returns nil when the error is not one the API knows how to explain, in
// which case it falls through to the generic 500.
func FromDBError(err error) *APIError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgInvalidTextRepresentation, pgForeignKeyViolation:
		return BadRequest(MsgBadRequest)
	case pgNotNullViolation:
		return BadRequest(MsgMissingField)
	case pgUniqueViolation:
		return BadRequest(MsgAlreadyExists)
	case pgInvalidRowCount, pgInvalidRowOffset:
		return BadRequest(MsgInvalidPagination)
	}
	return nil
}

// FromBindError classifies a gin binding failure: a failed "required" rule
// means a missing field, anything else (malformed JSON, wrong types) is a
// plain bad request.
func FromBindError(err error) *APIError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return BadRequest(MsgMissingField)
	}
	return BadRequest(MsgBadRequest)
}
