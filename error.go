package orch

import "fmt"

const (
	// ErrExpectFunction error code
	ErrExpectFunction = "expect a callable value"
	// ErrManifest error code
	ErrManifest = "malformed script manifest"
)

// Error ...
type Error struct {
	Err     error
	Code    string
	Details interface{}
}

// Error ...
func (e *Error) Error() string {
	return fmt.Sprintf("[orch] %s\n%v", e.Code, e.Details)
}

// Unwrap ...
func (e *Error) Unwrap() error {
	return e.Err
}

// IsError type matches
func IsError(err error, code string) bool {
	if err == nil {
		return false
	}

	e, ok := err.(*Error)
	if !ok {
		return false
	}

	return e.Code == code
}
