// Package resp drives the Redis protocol family: Redis, KeyDB, Pika and the
// stores served through the loopback RESP server.
package resp

import (
	"context"
	"errors"
	"fmt"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/kv"
	wire "github.com/kvbrowse/kvcore/protocol/resp"
	"github.com/kvbrowse/kvcore/transport"
)

// ErrUnsupportedKind is returned for kinds not driven over RESP.
var ErrUnsupportedKind = errors.New("backend is not driven over RESP")

// Protocol frames commands as RESP arrays.
type Protocol struct {
	driver.Commands
}

var (
	_ driver.Protocol = Protocol{} //nolint:exhaustruct
	_ driver.Conn     = &Conn{}    //nolint:exhaustruct
	_ driver.Driver   = &Driver{}  //nolint:exhaustruct
)

// NewProtocol returns the RESP strategy.
func NewProtocol() Protocol {
	return Protocol{
		Commands: driver.Commands{
			Scan:  "SCAN",
			TTL:   "TTL",
			Count: "DBSIZE",
			Info:  "INFO",
		},
	}
}

// Name returns "resp".
func (Protocol) Name() string {
	return "resp"
}

// NewConn binds a RESP connection to t.
func (Protocol) NewConn(t transport.Transport) driver.Conn {
	return NewConn(t)
}

// Conn writes RESP requests and decodes one reply per request.
type Conn struct {
	transport transport.Transport
	stream    *transport.Stream
	reader    *wire.Reader
	buf       []byte
}

// NewConn creates a connection over t.
func NewConn(t transport.Transport) *Conn {
	stream := transport.NewStream(t)

	return &Conn{
		transport: t,
		stream:    stream,
		reader:    wire.NewReader(stream),
		buf:       nil,
	}
}

// Do sends args and reads the reply. Error replies are returned as
// kv.Error values. A failed exchange closes the transport: a late reply
// would otherwise be matched to the next command.
func (c *Conn) Do(ctx context.Context, args []string) (kv.Value, error) {
	c.stream.SetContext(ctx)
	c.buf = wire.AppendCommand(c.buf[:0], args)

	if err := c.transport.Send(ctx, c.buf); err != nil {
		c.abandon()
		return kv.Null(), transport.NewError("send", err)
	}

	value, err := c.reader.ReadValue()
	if err != nil {
		c.abandon()
		return kv.Null(), fmt.Errorf("failed to read reply: %w", err)
	}

	return value, nil
}

func (c *Conn) abandon() {
	_ = c.transport.Close()

	c.stream.Reset()
	c.reader = wire.NewReader(c.stream)
}

// Driver is a driver of a RESP speaking backend.
type Driver struct {
	*driver.Base
}

// New creates a disconnected driver of kind over dialer.
func New(kind backend.Kind, dialer transport.Dialer, opts ...driver.Option) (*Driver, error) {
	if backend.TraitsOf(kind).Protocol != backend.ProtocolRESP || kind.String() == "unknown" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	base, err := driver.NewBase(kind, NewProtocol(), dialer, opts...)
	if err != nil {
		return nil, err
	}

	return &Driver{Base: base}, nil
}
