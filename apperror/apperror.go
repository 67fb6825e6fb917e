// Package apperror defines the error taxonomy of the stress detection
// pipeline and its mapping onto HTTP responses.
package apperror

import (
	"errors"
	"net/http"
)

var (
	// ErrDecode means the capture payload could not be decoded into an image.
	ErrDecode = errors.New("invalid image payload")
	// ErrNoFace means the image decoded fine but contained no usable face.
	ErrNoFace = errors.New("no face detected")
	// ErrStorageUnavailable means the log store rejected a read or write.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidUser means the request carried no usable user identity.
	ErrInvalidUser = errors.New("unknown or unauthorized user")
)

// StatusCode maps a pipeline error onto an HTTP status. A missing face is
// reported with 200 because the original client treats it as a normal
// "retake the photo" outcome, not a transport failure.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrDecode):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoFace):
		return http.StatusOK
	case errors.Is(err, ErrInvalidUser):
		return http.StatusUnauthorized
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for a pipeline error. Internal
// error detail never leaks into responses.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrDecode):
		return "Invalid image format"
	case errors.Is(err, ErrNoFace):
		return "No face detected"
	case errors.Is(err, ErrInvalidUser):
		return "Unauthorized"
	case errors.Is(err, ErrStorageUnavailable):
		return "Database unavailable"
	default:
		return "Detection failed"
	}
}
