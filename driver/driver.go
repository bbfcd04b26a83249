// Package driver executes logical key operations against one backend
// connection. A single generic implementation, Base, is parameterised by a
// Protocol strategy that frames commands for a backend family.
package driver

import (
	"context"

	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/transport"
)

// DefaultPageLimit is the page size used when a request carries none.
const DefaultPageLimit = 10

// Progress checkpoints reported by ListKeysPage.
const (
	ProgressStarted  = 0
	ProgressScanned  = 50
	ProgressCounted  = 75
	ProgressFinished = 100
)

// Driver is the capability set shared by every backend driver.
type Driver interface {
	// Connect establishes the backend connection.
	Connect(ctx context.Context) error
	// Disconnect closes the connection. It never fails.
	Disconnect()
	// Execute runs one command line and returns the raw reply.
	Execute(ctx context.Context, line string) (kv.Value, error)
	// ListKeysPage lists one page of keys enriched with their TTL.
	ListKeysPage(ctx context.Context, req PageRequest, progress ProgressFunc) (Page, error)
}

// Conn executes logical commands over one transport. Implementations keep
// per-connection framing state and are used sequentially.
type Conn interface {
	Do(ctx context.Context, args []string) (kv.Value, error)
}

// Protocol is the per-family strategy of a driver.
type Protocol interface {
	// Name identifies the protocol in logs.
	Name() string
	// NewConn binds the protocol to a freshly dialed transport.
	NewConn(t transport.Transport) Conn

	ScanCommand(cursor uint64, pattern string, limit int) []string
	ParseScan(reply kv.Value) (uint64, []kv.KeyString, error)
	TTLCommand(key kv.KeyString) []string
	ParseTTL(reply kv.Value) (kv.TTL, error)
	CountCommand() []string
	ParseCount(reply kv.Value) (int64, error)
	InfoCommand() []string
	ParseInfo(reply kv.Value) (map[string]string, error)
}

// ProgressFunc receives advisory completion percentages.
type ProgressFunc func(percent int)

// PageRequest selects one page of keys.
type PageRequest struct {
	// Cursor is the opaque position returned by the previous page, 0 to start.
	Cursor uint64
	// Pattern is a glob; empty matches every key.
	Pattern string
	// Limit is the requested page size; zero selects DefaultPageLimit.
	Limit int
}

func (r PageRequest) normalized() PageRequest {
	if r.Pattern == "" {
		r.Pattern = "*"
	}

	if r.Limit <= 0 {
		r.Limit = DefaultPageLimit
	}

	return r
}

// Page is the result of ListKeysPage. Values of Keys are placeholders; load
// them with LoadKey.
type Page struct {
	Request    PageRequest
	NextCursor uint64
	Keys       []kv.KeyValue
	// Total is the number of keys in the database, valid when HasTotal is set.
	Total    int64
	HasTotal bool
	// TTLFailures lists keys whose TTL lookup failed. They are reported with
	// TTL NoExpiration.
	TTLFailures []kv.KeyString
	// Interrupted is set when the listing stopped early. Keys not yet
	// enriched carry an unknown TTL and the count step is skipped.
	Interrupted bool
	// Err carries a failure of the count step. The keys stay usable.
	Err error
}

// State is the connection lifecycle state.
type State int32

const (
	// StateDisconnected is the initial and final state.
	StateDisconnected State = iota
	// StateConnecting is held while dialing.
	StateConnecting
	// StateConnected allows command execution.
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// DatabaseInfo describes the selected database.
type DatabaseInfo struct {
	Name string
	Keys int64
}
