package utils

import (
	"encoding/json"
	"net/http"
)

// HTTPError is an error carrying the HTTP status it should surface with.
// The Detail message is what callers see in the response body.
type HTTPError struct {
	Code   int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *HTTPError) Error() string {
	return e.Detail
}

// NewHTTPError creates a new HTTPError instance with a custom status code and message
func NewHTTPError(code int, detail string) error {
	return &HTTPError{
		Code:   code,
		Detail: detail,
	}
}

// BadRequest creates a 400 Bad Request error
func BadRequest(detail string) error {
	return NewHTTPError(http.StatusBadRequest, detail)
}

// NotFound creates a 404 Not Found error
func NotFound(detail string) error {
	return NewHTTPError(http.StatusNotFound, detail)
}

// Conflict creates a 409 Conflict error
func Conflict(detail string) error {
	return NewHTTPError(http.StatusConflict, detail)
}

// InternalServerError creates a 500 Internal Server Error
func InternalServerError(detail string) error {
	return NewHTTPError(http.StatusInternalServerError, detail)
}

// WriteError sends the error response as a {"detail": ...} JSON body.
func WriteError(w http.ResponseWriter, err error) {
	httpErr, ok := err.(*HTTPError)
	if !ok {
		httpErr = &HTTPError{
			Code:   http.StatusInternalServerError,
			Detail: "Internal Server Error",
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(httpErr.Code)
	_ = json.NewEncoder(w).Encode(httpErr)
}
