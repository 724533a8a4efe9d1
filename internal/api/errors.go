package api

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a TransportError.
type ErrorKind int

const (
	// KindStatus is a response with a non-success status code.
	KindStatus ErrorKind = iota
	// KindNetwork is a request that got no response at all.
	KindNetwork
	// KindDecode is a response whose body is not the expected JSON.
	KindDecode
)

// String makes ErrorKind satisfy the fmt.Stringer interface.
func (k ErrorKind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindNetwork:
		return "network"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// TransportError is any failure between issuing a backend request and
// decoding its response.
type TransportError struct {
	Kind   ErrorKind
	Path   string
	Status int
	Cause  error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("Request failed (%d)", e.Status)
	case KindDecode:
		return fmt.Sprintf("Invalid response from %s: %v", e.Path, e.Cause)
	default:
		if e.Cause == nil {
			return "Request failed"
		}
		return e.Cause.Error()
	}
}

// Unwrap returns the underlying cause, if any.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// InvalidInput is a client-side validation failure. It is raised before
// any request is issued.
type InvalidInput struct {
	Message string
}

func (e *InvalidInput) Error() string {
	return e.Message
}

// ErrInvalidFee rejects a custom fee that is not a positive number.
var ErrInvalidFee = &InvalidInput{Message: "Enter a fee > 0"}

// IsTransportError reports whether err is (or wraps) a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInput.
func IsInvalidInput(err error) bool {
	var ii *InvalidInput
	return errors.As(err, &ii)
}
