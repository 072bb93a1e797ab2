package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrPlaceNotFound is returned when a place lookup comes back empty.
	ErrPlaceNotFound = errors.New("could not find a place for the provided place id")
	// ErrPlaceGone is returned when a place to delete does not exist.
	ErrPlaceGone = errors.New("could not find place for this id")
	// ErrNotPlaceOwner is returned when a caller edits a place they do not own.
	ErrNotPlaceOwner = errors.New("you are not allowed to edit this place")
	// ErrNotPlaceOwnerDelete is returned when a caller deletes a place they do not own.
	ErrNotPlaceOwnerDelete = errors.New("you are not allowed to delete this place")
	// ErrEmailTaken is returned when signing up with an email already on file.
	ErrEmailTaken = errors.New("user exists already, please login instead")
	// ErrUnknownEmail is returned when logging in with an email nobody owns.
	ErrUnknownEmail = errors.New("invalid email address, user doesn't exist")
	// ErrWrongPassword is returned when the password does not match the stored hash.
	ErrWrongPassword = errors.New("invalid password, please check your password")
	// ErrNoGeocodeResult is returned when the geocoding lookup has no usable result.
	ErrNoGeocodeResult = errors.New("could not find location for the specified address")
	// ErrMissingCreator is returned when the authenticated user has no user
	// record. Surfaces as a server error, not a 404: a valid token for a
	// missing user means inconsistent state.
	ErrMissingCreator = errors.New("could not find user for provided id")
	// ErrInvalidInput is returned when request validation fails.
	ErrInvalidInput = errors.New("invalid inputs passed, please check your data")
)

// ErrorResponse is the wire shape of every error body.
type ErrorResponse struct {
	Message string `json:"message"`
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

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized
// collapses to a generic 500 so the underlying cause never reaches the client.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrPlaceNotFound):
		return NewHTTPError(http.StatusNotFound, "Could not find a place for the provided place id.")
	case errors.Is(err, ErrPlaceGone):
		return NewHTTPError(http.StatusNotFound, "Could not find place for this Id")
	case errors.Is(err, ErrNotPlaceOwner):
		return NewHTTPError(http.StatusUnauthorized, "You are not allowed to edit this place.")
	case errors.Is(err, ErrNotPlaceOwnerDelete):
		return NewHTTPError(http.StatusUnauthorized, "You are not allowed to delete this place.")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusUnprocessableEntity, "User exists already, please login instead.")
	case errors.Is(err, ErrUnknownEmail):
		return NewHTTPError(http.StatusForbidden, "Invalid email address, user doesn't exist")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusForbidden, "Invalid password, please check your password.")
	case errors.Is(err, ErrNoGeocodeResult):
		return NewHTTPError(http.StatusUnprocessableEntity, "Could not find location for the specified address.")
	case errors.Is(err, ErrMissingCreator):
		return NewHTTPError(http.StatusInternalServerError, "Could not find user for provided Id.")
	case errors.Is(err, ErrInvalidInput):
		return NewHTTPError(http.StatusUnprocessableEntity, "Invalid inputs passed, please check your data")
	default:
		return NewHTTPError(http.StatusInternalServerError, "An unknown error has occured!")
	}
}
