package testing

import (
	"context"
	"sync"

	"github.com/kvbrowse/kvcore/transport"
)

type transportResponse struct {
	data []byte
	err  error
}

// Responder produces the reply to one sent request. It returns []byte,
// string, error or nil (no reply).
type Responder func(request []byte) any

// MockTransport is a scripted implementation of transport.Transport.
// Each Receive call returns the next queued response.
type MockTransport struct {
	mu sync.Mutex
	// Sent is a slice of sent requests.
	// It could be used to compare outgoing requests with expected.
	Sent      [][]byte
	responses []transportResponse
	responder Responder
	sendErr   error
	connected bool
	closed    int
	t         T
}

var _ transport.Transport = &MockTransport{} //nolint:exhaustruct

// NewMockTransport creates a connected MockTransport by given responses.
// Each response could be one of three types: []byte, string or error.
func NewMockTransport(t T, responses ...any) *MockTransport {
	t.Helper()

	mock := &MockTransport{
		mu:        sync.Mutex{},
		Sent:      [][]byte{},
		responses: []transportResponse{},
		responder: nil,
		sendErr:   nil,
		connected: true,
		closed:    0,
		t:         t,
	}

	mock.Push(responses...)

	return mock
}

// NewRespondingTransport creates a connected MockTransport that computes a
// reply for every request with responder.
func NewRespondingTransport(t T, responder Responder) *MockTransport {
	t.Helper()

	mock := NewMockTransport(t)
	mock.responder = responder

	return mock
}

// Push queues more responses.
func (m *MockTransport) Push(responses ...any) {
	m.t.Helper()

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, response := range responses {
		m.push(response)
	}
}

func (m *MockTransport) push(response any) {
	switch resp := response.(type) {
	case nil:
	case []byte:
		m.responses = append(m.responses, transportResponse{data: resp, err: nil})
	case string:
		m.responses = append(m.responses, transportResponse{data: []byte(resp), err: nil})
	case error:
		m.responses = append(m.responses, transportResponse{data: nil, err: resp})
	default:
		m.t.Fatalf("unsupported type: %T", response)
	}
}

// FailSends makes every subsequent Send return err.
func (m *MockTransport) FailSends(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sendErr = err
}

// Send records data.
func (m *MockTransport) Send(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sent := make([]byte, len(data))
	copy(sent, data)
	m.Sent = append(m.Sent, sent)

	if m.sendErr != nil {
		return m.sendErr
	}

	if m.responder != nil {
		m.push(m.responder(sent))
	}

	return nil
}

// Receive returns the next queued response.
func (m *MockTransport) Receive(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	if len(m.responses) == 0 {
		m.t.Fatalf("list of responses is empty")
		return nil, transport.ErrClosed
	}

	response := m.responses[0]
	m.responses = m.responses[1:]

	return response.data, response.err
}

// IsConnected reports the scripted connection state.
func (m *MockTransport) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.connected
}

// SetConnected changes the reported connection state.
func (m *MockTransport) SetConnected(connected bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = connected
}

// Close marks the transport as disconnected.
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.connected = false
	m.closed++

	return nil
}

// SentCount returns the number of Send calls.
func (m *MockTransport) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.Sent)
}

// SentStrings returns the sent requests as strings.
func (m *MockTransport) SentStrings() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.Sent))
	for _, data := range m.Sent {
		out = append(out, string(data))
	}

	return out
}

// Closed returns the number of Close calls.
func (m *MockTransport) Closed() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closed
}

// Pending returns the number of responses not yet received.
func (m *MockTransport) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.responses)
}

// Dialer returns a dialer handing out m.
func (m *MockTransport) Dialer() transport.Dialer {
	return transport.DialerFunc(func(context.Context) (transport.Transport, error) {
		m.SetConnected(true)
		return m, nil
	})
}

// FailingDialer returns a dialer that always fails with err.
func FailingDialer(err error) transport.Dialer {
	return transport.DialerFunc(func(context.Context) (transport.Transport, error) {
		return nil, err
	})
}
