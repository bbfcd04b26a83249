package loopback

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/kvbrowse/kvcore/protocol/resp"
	"github.com/kvbrowse/kvcore/transport"
)

// ErrNoReply is returned by Receive when no request is awaiting a reply.
var ErrNoReply = errors.New("no reply pending")

// Transport hands requests to a Server and queues its replies.
type Transport struct {
	server *Server
	mu     sync.Mutex
	// partial holds the bytes of a request frame not yet complete.
	partial []byte
	replies []byte
	closed  bool
}

var _ transport.Transport = &Transport{} //nolint:exhaustruct

// Dialer returns a dialer producing transports bound to s.
func (s *Server) Dialer() transport.Dialer {
	return transport.DialerFunc(func(context.Context) (transport.Transport, error) {
		return &Transport{
			server:  s,
			mu:      sync.Mutex{},
			partial: nil,
			replies: nil,
			closed:  false,
		}, nil
	})
}

// Send executes every complete request frame in data.
func (t *Transport) Send(ctx context.Context, data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return transport.ErrClosed
	}

	t.partial = append(t.partial, data...)

	for len(t.partial) > 0 {
		reader := bytes.NewReader(t.partial)
		decoder := resp.NewReader(reader)

		args, err := decoder.ReadCommand()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil
		}

		if err != nil {
			t.partial = nil
			return transport.NewError("send", fmt.Errorf("failed to decode request: %w", err))
		}

		t.partial = t.partial[len(t.partial)-reader.Len()-decoder.Buffered():]
		t.replies = resp.AppendValue(t.replies, t.server.Handle(ctx, args))
	}

	return nil
}

// Receive returns the queued replies.
func (t *Transport) Receive(ctx context.Context) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, transport.ErrClosed
	}

	if err := ctx.Err(); err != nil {
		return nil, transport.NewError("receive", err)
	}

	if len(t.replies) == 0 {
		return nil, transport.NewError("receive", ErrNoReply)
	}

	out := t.replies
	t.replies = nil

	return out, nil
}

// IsConnected reports whether the transport is open.
func (t *Transport) IsConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return !t.closed
}

// Close closes the transport. The server and its engine stay open.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.partial = nil
	t.replies = nil

	return nil
}
