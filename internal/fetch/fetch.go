// Package fetch retrieves single display values from flaky HTTP APIs, failing
// over across alternate API keys when a key is refused.
package fetch

import (
	"context"
	"log"
)

// Result is the outcome of one fetch: a display value or the error that
// replaced it. It is consumed once and not retained.
type Result struct {
	Value string
	Err   error
}

// OK reports whether the fetch produced a value.
func (r Result) OK() bool { return r.Err == nil }

// Success wraps a value.
func Success(value string) Result { return Result{Value: value} }

// Failure wraps an error.
func Failure(err error) Result { return Result{Err: err} }

// Attempt performs one request using key and returns the parsed value.
// Implementations classify their errors with TransportError, StatusError,
// DecodeError and ErrMissingData; Client.GetJSON does the first three.
type Attempt func(ctx context.Context, key string) (string, error)

// WithKeys runs attempt starting from the ring's current key and tries each
// key at most once:
//
//   - a value ends the fetch with success;
//   - a non-success status advances the cursor and tries the next key;
//   - a transport error advances the cursor but ends the fetch immediately,
//     since it is not specific to the key;
//   - missing data or an undecodable body ends the fetch without advancing.
//
// When every key returned a non-success status the result is ErrKeysExhausted.
func WithKeys(ctx context.Context, ring *KeyRing, attempt Attempt) Result {
	for i := 0; i < ring.Len(); i++ {
		idx, key := ring.Current()
		value, err := attempt(ctx, key)
		switch {
		case err == nil:
			return Success(value)
		case IsStatus(err):
			log.Printf("fetch: key #%d refused: %v", idx, err)
			ring.Advance()
		case IsTransport(err):
			ring.Advance()
			return Failure(err)
		default:
			return Failure(err)
		}
	}
	return Failure(ErrKeysExhausted)
}

// Once runs attempt a single time without credentials. Any error, including a
// non-success status, is the failure.
func Once(ctx context.Context, attempt Attempt) Result {
	value, err := attempt(ctx, "")
	if err != nil {
		return Failure(err)
	}
	return Success(value)
}
