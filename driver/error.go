package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/transport"
)

var (
	// ErrNotConnected is returned by operations on a driver that is not connected.
	ErrNotConnected = errors.New("not connected")
	// ErrInvalidArgument is returned for empty or malformed input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnexpectedReply is the cause of every ShapeError.
	ErrUnexpectedReply = errors.New("unexpected reply")
	// ErrServer is the cause of every ServerError.
	ErrServer = errors.New("server error")
	// ErrConnectionLost is returned when a command failure closed the
	// connection. The driver is Disconnected afterwards.
	ErrConnectionLost = errors.New("connection lost")
)

// ConnectionError is returned when a driver fails to connect.
type ConnectionError struct {
	Backend string
	Err     error
}

// Error returns the error message.
func (e ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %s", e.Backend, e.Err)
}

func (e ConnectionError) Unwrap() error {
	return e.Err
}

// NewConnectionError returns a new connection error.
func NewConnectionError(backend string, err error) error {
	if err == nil {
		return nil
	}

	return ConnectionError{
		Backend: backend,
		Err:     err,
	}
}

// ServerError is an error reply of the backend.
type ServerError struct {
	Command string
	Message string
}

// Error returns the error message.
func (e ServerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command, e.Message)
}

func (e ServerError) Unwrap() error {
	return ErrServer
}

// ShapeError describes a reply that does not have the shape its command
// produces.
type ShapeError struct {
	Command string
	Text    string
}

// Error returns the error message.
func (e ShapeError) Error() string {
	return fmt.Sprintf("%s to %s: %s", ErrUnexpectedReply, e.Command, e.Text)
}

func (e ShapeError) Unwrap() error {
	return ErrUnexpectedReply
}

// NewShapeError returns a shape error for the reply of command.
func NewShapeError(command, expected string, reply kv.Value) error {
	return ShapeError{
		Command: command,
		Text:    fmt.Sprintf("expected %s, got %s", expected, reply.Type()),
	}
}

// IsShapeError reports whether err is caused by a malformed reply.
func IsShapeError(err error) bool {
	return errors.Is(err, ErrUnexpectedReply)
}

// isFatal reports whether err ends a composite operation.
func isFatal(err error) bool {
	return transport.IsError(err) ||
		errors.Is(err, ErrNotConnected) ||
		errors.Is(err, ErrConnectionLost) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
