package errs

import "errors"

// Common sentinel errors.
var (
	ErrConflict       = errors.New("data conflict")
	ErrInvalidRequest = errors.New("invalid request")
	ErrContentType    = errors.New("invalid content type")
)

// Type just for marshalling purpose.
// Should only be used immediately before marshalling.
type JSON struct {
	Error string `json:"error"`
}
