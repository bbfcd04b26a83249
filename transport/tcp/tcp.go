// Package tcp provides a Transport over a TCP connection.
package tcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/kvbrowse/kvcore/transport"
)

const (
	defaultDialTimeout = 5 * time.Second
	readBufferSize     = 16 << 10
)

// Config configures a TCP dialer.
type Config struct {
	// Address is the host:port to connect to.
	Address string
	// DialTimeout bounds connection establishment.
	DialTimeout time.Duration
	// IOTimeout bounds each send and receive when the context has no deadline.
	// Zero disables it.
	IOTimeout time.Duration
}

// Dialer connects TCP transports.
type Dialer struct {
	config Config
}

var (
	_ transport.Dialer    = &Dialer{} //nolint:exhaustruct
	_ transport.Transport = &Transport{} //nolint:exhaustruct
)

// NewDialer creates a dialer for config.
func NewDialer(config Config) *Dialer {
	if config.DialTimeout <= 0 {
		config.DialTimeout = defaultDialTimeout
	}

	return &Dialer{config: config}
}

// Dial connects to the configured address.
func (d *Dialer) Dial(ctx context.Context) (transport.Transport, error) {
	if d.config.Address == "" {
		return nil, transport.ErrNoEndpoint
	}

	dialer := net.Dialer{Timeout: d.config.DialTimeout} //nolint:exhaustruct

	conn, err := dialer.DialContext(ctx, "tcp", d.config.Address)
	if err != nil {
		return nil, transport.NewError("dial", fmt.Errorf("failed to connect to %s: %w", d.config.Address, err))
	}

	return New(conn, d.config.IOTimeout), nil
}

// Transport is a TCP byte stream.
type Transport struct {
	conn      net.Conn
	ioTimeout time.Duration
	buf       []byte
	closed    atomic.Bool
}

// New wraps an established connection.
func New(conn net.Conn, ioTimeout time.Duration) *Transport {
	return &Transport{
		conn:      conn,
		ioTimeout: ioTimeout,
		buf:       make([]byte, readBufferSize),
		closed:    atomic.Bool{},
	}
}

// Send writes data.
func (t *Transport) Send(ctx context.Context, data []byte) error {
	if t.closed.Load() {
		return transport.ErrClosed
	}

	if err := t.conn.SetWriteDeadline(t.deadline(ctx)); err != nil {
		return transport.NewError("send", err)
	}

	if _, err := t.conn.Write(data); err != nil {
		t.markBroken(err)
		return transport.NewError("send", err)
	}

	return nil
}

// Receive reads the next available bytes.
func (t *Transport) Receive(ctx context.Context) ([]byte, error) {
	if t.closed.Load() {
		return nil, transport.ErrClosed
	}

	if err := t.conn.SetReadDeadline(t.deadline(ctx)); err != nil {
		return nil, transport.NewError("receive", err)
	}

	n, err := t.conn.Read(t.buf)
	if n > 0 {
		out := make([]byte, n)
		copy(out, t.buf[:n])

		return out, nil
	}

	if err != nil {
		t.markBroken(err)
		return nil, transport.NewError("receive", err)
	}

	return nil, transport.NewError("receive", errEmptyRead)
}

// IsConnected reports whether the connection is still open.
func (t *Transport) IsConnected() bool {
	return !t.closed.Load()
}

// Close closes the connection.
func (t *Transport) Close() error {
	if t.closed.Swap(true) {
		return nil
	}

	if err := t.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}

var errEmptyRead = errors.New("read returned no data")

func (t *Transport) deadline(ctx context.Context) time.Time {
	if deadline, ok := ctx.Deadline(); ok {
		return deadline
	}

	if t.ioTimeout > 0 {
		return time.Now().Add(t.ioTimeout)
	}

	return time.Time{}
}

func (t *Transport) markBroken(err error) {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return
	}

	if t.closed.Swap(true) {
		return
	}

	_ = t.conn.Close()
}
