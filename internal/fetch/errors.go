package fetch

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingData means the response parsed but lacked the expected field.
	ErrMissingData = errors.New("missing data")
	// ErrKeysExhausted means every credential in the ring answered with a non-success status.
	ErrKeysExhausted = errors.New("all keys exhausted")
)

// TransportError wraps network-level failures: DNS, refused connections,
// timeouts, cancelled contexts. Its message is surfaced verbatim.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx response.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.URL, e.Code)
}

// Status renders the code the way the time widget displays it, e.g. "429 Too Many Requests".
func (e *StatusError) Status() string {
	if text := http.StatusText(e.Code); text != "" {
		return fmt.Sprintf("%d %s", e.Code, text)
	}
	return fmt.Sprintf("%d", e.Code)
}

// DecodeError reports a body that is not the JSON document we expected.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode response: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// IsTransport reports whether err is a network-level failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsStatus reports whether err is a non-success HTTP status.
func IsStatus(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}
