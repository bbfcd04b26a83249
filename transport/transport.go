// Package transport defines the byte-stream duplex a driver talks through.
// Drivers own their transport exclusively and use it strictly sequentially.
package transport

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by operations on a closed transport.
	ErrClosed = errors.New("transport is closed")
	// ErrNoEndpoint is returned when a dialer has nowhere to connect.
	ErrNoEndpoint = errors.New("no endpoint provided")
)

// Transport is an opaque byte-stream duplex.
type Transport interface {
	// Send writes data to the backend.
	Send(ctx context.Context, data []byte) error
	// Receive returns the next bytes sent by the backend. It blocks until
	// at least one byte is available.
	Receive(ctx context.Context) ([]byte, error)
	// IsConnected reports whether the stream is usable.
	IsConnected() bool
	// Close releases the stream.
	Close() error
}

// Dialer establishes transports.
type Dialer interface {
	Dial(ctx context.Context) (Transport, error)
}

// DialerFunc adapts a function to Dialer.
type DialerFunc func(ctx context.Context) (Transport, error)

// Dial calls f.
func (f DialerFunc) Dial(ctx context.Context) (Transport, error) {
	return f(ctx)
}

// Error is a failure of a transport operation.
type Error struct {
	Op  string
	Err error
}

// Error returns the error message.
func (e Error) Error() string {
	return fmt.Sprintf("transport %s failed: %s", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError wraps err as a failure of op. It returns nil for a nil err.
func NewError(op string, err error) error {
	if err == nil {
		return nil
	}

	var terr Error
	if errors.As(err, &terr) {
		return err
	}

	return Error{Op: op, Err: err}
}

// IsError reports whether err is a transport failure.
func IsError(err error) bool {
	var terr Error
	return errors.As(err, &terr) || errors.Is(err, ErrClosed)
}
