// Package errs carries errors through the node's API handlers with enough
// web-specific context (an HTTP status, optional per-field validation
// detail) for business/web/mid's Errors middleware to respond correctly
// without needing to know where in the handler chain they originated.
package errs

import "errors"

// Response is the JSON body written back to the client for any handler
// error, trusted or not.
type Response struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Trusted wraps an error a handler anticipated (bad input, not found, a
// conflicting chain state) together with the status code it should
// produce, distinguishing it from an error the middleware should treat as
// unexpected and respond to with a generic 500.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted wraps err as a Trusted error carrying status. Handlers use
// this for any error condition the caller could reasonably trigger.
func NewTrusted(err error, status int) error {
	return &Trusted{err, status}
}

// Error implements the error interface, returning the wrapped error's own
// message — this is what ends up in the service's logs.
func (re *Trusted) Error() string {
	return re.Err.Error()
}

// IsTrusted reports whether err is, or wraps, a *Trusted.
func IsTrusted(err error) bool {
	var re *Trusted
	return errors.As(err, &re)
}

// GetTrusted unwraps err to its *Trusted value, or nil if it isn't one.
func GetTrusted(err error) *Trusted {
	var re *Trusted
	if !errors.As(err, &re) {
		return nil
	}
	return re
}
