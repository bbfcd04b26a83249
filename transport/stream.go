package transport

import (
	"context"
)

// Stream adapts a Transport to io.Reader so protocol decoders can frame
// replies. Bytes received but not yet read are kept between calls.
type Stream struct {
	transport Transport
	ctx       context.Context //nolint:containedctx // Context of the request currently being read.
	pending   []byte
}

// NewStream creates a reader over t.
func NewStream(t Transport) *Stream {
	return &Stream{
		transport: t,
		ctx:       context.Background(),
		pending:   nil,
	}
}

// SetContext sets the context used by subsequent reads.
func (s *Stream) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// Reset drops unread bytes.
func (s *Stream) Reset() {
	s.pending = nil
}

// Read implements io.Reader.
func (s *Stream) Read(p []byte) (int, error) {
	for len(s.pending) == 0 {
		data, err := s.transport.Receive(s.ctx)
		if err != nil {
			return 0, NewError("receive", err)
		}

		s.pending = data
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]

	return n, nil
}
