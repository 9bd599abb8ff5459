package graphql

import "errors"

// HTTP status sentinels returned by [Client.Execute]. They wrap the
// response body, so callers match them with errors.Is.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// ErrGraphQL is returned when the response carries a non-empty errors
// array. The mapped response is returned alongside it.
var ErrGraphQL = errors.New("graphql error")
