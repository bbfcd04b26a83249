// Package events defines the request and response objects exchanged with a
// driver worker. Every request carries the Sender that issued it and is
// answered by exactly one response of the matching kind carrying the same
// Sender.
package events

import (
	"sync/atomic"

	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/kv"
)

// Sender is the correlation token of a request.
type Sender uint64

//nolint:gochecknoglobals
var lastSender atomic.Uint64

// NewSender returns a process-unique sender token.
func NewSender() Sender {
	return Sender(lastSender.Add(1))
}

// Request is a unit of work for a driver.
type Request interface {
	Sender() Sender
	// Fail builds the response of the request reporting err.
	Fail(err error) Response
}

// Response answers one Request.
type Response interface {
	Sender() Sender
	// Failure returns the carried error, nil on success.
	Failure() error
}

// Progress is an advisory completion notification.
type Progress struct {
	From    Sender
	Percent int
}

// LoadDatabaseContentRequest asks for one page of keys.
type LoadDatabaseContentRequest struct {
	From Sender
	Page driver.PageRequest
}

// LoadDatabaseContentResponse carries the listed page.
type LoadDatabaseContentResponse struct {
	Request LoadDatabaseContentRequest
	Page    driver.Page
	Err     error
}

// ExecuteRequest runs a raw command line.
type ExecuteRequest struct {
	From    Sender
	Command string
}

// ExecuteResponse carries the raw reply.
type ExecuteResponse struct {
	Request ExecuteRequest
	Result  kv.Value
	Err     error
}

// LoadKeyRequest loads the value of a key.
type LoadKeyRequest struct {
	From         Sender
	Key          kv.Key
	ExpectedType kv.Type
}

// LoadKeyResponse carries the loaded pair.
type LoadKeyResponse struct {
	Request LoadKeyRequest
	Pair    kv.KeyValue
	Err     error
}

// CreateKeyRequest stores a pair.
type CreateKeyRequest struct {
	From Sender
	Pair kv.KeyValue
}

// CreateKeyResponse reports the store.
type CreateKeyResponse struct {
	Request CreateKeyRequest
	Err     error
}

// DeleteKeyRequest removes a key.
type DeleteKeyRequest struct {
	From Sender
	Key  kv.Key
}

// DeleteKeyResponse reports whether the key existed.
type DeleteKeyResponse struct {
	Request DeleteKeyRequest
	Deleted bool
	Err     error
}

// RenameKeyRequest renames a key.
type RenameKeyRequest struct {
	From   Sender
	Key    kv.Key
	NewKey kv.KeyString
}

// RenameKeyResponse carries the renamed key.
type RenameKeyResponse struct {
	Request RenameKeyRequest
	Key     kv.Key
	Err     error
}

// ServerInfoRequest asks for server statistics.
type ServerInfoRequest struct {
	From Sender
}

// ServerInfoResponse carries the statistics and the current database.
type ServerInfoResponse struct {
	Request  ServerInfoRequest
	Info     map[string]string
	Database driver.DatabaseInfo
	Err      error
}

// ConnectRequest connects the driver.
type ConnectRequest struct {
	From Sender
}

// ConnectResponse reports the connection attempt.
type ConnectResponse struct {
	Request ConnectRequest
	Err     error
}

// DisconnectRequest disconnects the driver.
type DisconnectRequest struct {
	From Sender
}

// DisconnectResponse confirms the disconnect. It carries an error only when
// the request was not processed.
type DisconnectResponse struct {
	Request DisconnectRequest
	Err     error
}

var (
	_ Request = LoadDatabaseContentRequest{} //nolint:exhaustruct
	_ Request = ExecuteRequest{}             //nolint:exhaustruct
	_ Request = LoadKeyRequest{}             //nolint:exhaustruct
	_ Request = CreateKeyRequest{}           //nolint:exhaustruct
	_ Request = DeleteKeyRequest{}           //nolint:exhaustruct
	_ Request = RenameKeyRequest{}           //nolint:exhaustruct
	_ Request = ServerInfoRequest{}          //nolint:exhaustruct
	_ Request = ConnectRequest{}             //nolint:exhaustruct
	_ Request = DisconnectRequest{}          //nolint:exhaustruct
)

func (r LoadDatabaseContentRequest) Sender() Sender { return r.From }
func (r ExecuteRequest) Sender() Sender             { return r.From }
func (r LoadKeyRequest) Sender() Sender             { return r.From }
func (r CreateKeyRequest) Sender() Sender           { return r.From }
func (r DeleteKeyRequest) Sender() Sender           { return r.From }
func (r RenameKeyRequest) Sender() Sender           { return r.From }
func (r ServerInfoRequest) Sender() Sender          { return r.From }
func (r ConnectRequest) Sender() Sender             { return r.From }
func (r DisconnectRequest) Sender() Sender          { return r.From }

func (r LoadDatabaseContentRequest) Fail(err error) Response {
	return LoadDatabaseContentResponse{Request: r, Page: driver.Page{Request: r.Page}, Err: err} //nolint:exhaustruct
}

func (r ExecuteRequest) Fail(err error) Response {
	return ExecuteResponse{Request: r, Result: kv.Null(), Err: err}
}

func (r LoadKeyRequest) Fail(err error) Response {
	return LoadKeyResponse{Request: r, Pair: kv.KeyOnly(r.Key), Err: err}
}

func (r CreateKeyRequest) Fail(err error) Response {
	return CreateKeyResponse{Request: r, Err: err}
}

func (r DeleteKeyRequest) Fail(err error) Response {
	return DeleteKeyResponse{Request: r, Deleted: false, Err: err}
}

func (r RenameKeyRequest) Fail(err error) Response {
	return RenameKeyResponse{Request: r, Key: r.Key, Err: err}
}

func (r ServerInfoRequest) Fail(err error) Response {
	return ServerInfoResponse{Request: r, Info: nil, Database: driver.DatabaseInfo{}, Err: err} //nolint:exhaustruct
}

func (r ConnectRequest) Fail(err error) Response {
	return ConnectResponse{Request: r, Err: err}
}

func (r DisconnectRequest) Fail(err error) Response {
	return DisconnectResponse{Request: r, Err: err}
}

func (r LoadDatabaseContentResponse) Sender() Sender { return r.Request.From }
func (r ExecuteResponse) Sender() Sender             { return r.Request.From }
func (r LoadKeyResponse) Sender() Sender             { return r.Request.From }
func (r CreateKeyResponse) Sender() Sender           { return r.Request.From }
func (r DeleteKeyResponse) Sender() Sender           { return r.Request.From }
func (r RenameKeyResponse) Sender() Sender           { return r.Request.From }
func (r ServerInfoResponse) Sender() Sender          { return r.Request.From }
func (r ConnectResponse) Sender() Sender             { return r.Request.From }
func (r DisconnectResponse) Sender() Sender          { return r.Request.From }

func (r LoadDatabaseContentResponse) Failure() error { return r.Err }
func (r ExecuteResponse) Failure() error             { return r.Err }
func (r LoadKeyResponse) Failure() error             { return r.Err }
func (r CreateKeyResponse) Failure() error           { return r.Err }
func (r DeleteKeyResponse) Failure() error           { return r.Err }
func (r RenameKeyResponse) Failure() error           { return r.Err }
func (r ServerInfoResponse) Failure() error          { return r.Err }
func (r ConnectResponse) Failure() error             { return r.Err }
func (r DisconnectResponse) Failure() error          { return r.Err }
