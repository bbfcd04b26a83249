// Package memcached drives memcached servers over the text protocol.
package memcached

import (
	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/protocol/memcache"
	"github.com/kvbrowse/kvcore/transport"
)

// Protocol interprets the logical command set with native memcached
// commands.
type Protocol struct {
	driver.Commands
}

var (
	_ driver.Protocol = Protocol{} //nolint:exhaustruct
	_ driver.Driver   = &Driver{}  //nolint:exhaustruct
)

// NewProtocol returns the memcached strategy.
func NewProtocol() Protocol {
	return Protocol{
		Commands: driver.Commands{
			Scan:  "SCAN",
			TTL:   "TTL",
			Count: "DBSIZE",
			Info:  backend.TraitsOf(backend.Memcached).InfoCommand,
		},
	}
}

// Name returns "memcache".
func (Protocol) Name() string {
	return "memcache"
}

// NewConn binds a memcache connection to t.
func (Protocol) NewConn(t transport.Transport) driver.Conn {
	return memcache.NewConn(t)
}

// Driver is a memcached driver.
type Driver struct {
	*driver.Base
}

// New creates a disconnected memcached driver over dialer.
func New(dialer transport.Dialer, opts ...driver.Option) (*Driver, error) {
	base, err := driver.NewBase(backend.Memcached, NewProtocol(), dialer, opts...)
	if err != nil {
		return nil, err
	}

	return &Driver{Base: base}, nil
}
