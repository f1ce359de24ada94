package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidInput is returned when a request field fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrPlaceAlreadyListed is returned when a restaurant with the same place_id exists.
	ErrPlaceAlreadyListed = errors.New("a restaurant with this place_id already exists")
	// ErrUserNotFound is returned when a token identity no longer resolves to a user.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoResults is returned when the places provider reports no matches.
	ErrNoResults = errors.New("no results found")
	// ErrMissingLocation is returned when a search carries neither location form.
	ErrMissingLocation = errors.New("either location or latitude and longitude must be provided")
	// ErrUpstream wraps transport-level failures talking to the places provider.
	ErrUpstream = errors.New("places request failed")
)

// Envelope is the uniform response wrapper; every error response carries it.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Client-caused errors keep
// their message; anything unrecognized collapses to a generic 500 so internal
// details never leak.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrMissingLocation),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrPlaceAlreadyListed):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrNoResults):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUpstream):
		return NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
