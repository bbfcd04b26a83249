package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/command"
	"github.com/kvbrowse/kvcore/internal/metrics"
	"github.com/kvbrowse/kvcore/internal/options"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/operation"
	"github.com/kvbrowse/kvcore/translator"
	"github.com/kvbrowse/kvcore/transport"
)

// Page outcomes recorded in metrics.
const (
	outcomeComplete    = "complete"
	outcomePartial     = "partial"
	outcomeEmpty       = "empty"
	outcomeInterrupted = "interrupted"
	outcomeFailed      = "failed"
)

// Base is the generic driver. It owns one transport, serialises commands
// on it and composes multi-step operations from protocol commands.
type Base struct {
	kind       backend.Kind
	traits     backend.Traits
	translator translator.Translator
	protocol   Protocol
	dialer     transport.Dialer
	logger     *zap.Logger
	metrics    *metrics.Collectors
	database   string

	mu          sync.Mutex
	state       atomic.Int32
	interrupted atomic.Bool
	transport   transport.Transport
	conn        Conn
}

var (
	_ Driver = &Base{} //nolint:exhaustruct
)

// NewBase creates a disconnected driver of kind speaking protocol over
// transports produced by dialer.
func NewBase(kind backend.Kind, protocol Protocol, dialer transport.Dialer, opts ...Option) (*Base, error) {
	tr, err := translator.New(kind)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	o := options.ApplyOptions(defaultBaseOptions, opts)

	return &Base{
		kind:        kind,
		traits:      backend.TraitsOf(kind),
		translator:  tr,
		protocol:    protocol,
		dialer:      dialer,
		logger:      o.logger.With(zap.Stringer("backend", kind)),
		metrics:     o.metrics,
		database:    o.database,
		mu:          sync.Mutex{},
		state:       atomic.Int32{},
		interrupted: atomic.Bool{},
		transport:   nil,
		conn:        nil,
	}, nil
}

// Kind returns the backend kind.
func (b *Base) Kind() backend.Kind {
	return b.kind
}

// Translator returns the command translator of the backend.
func (b *Base) Translator() translator.Translator {
	return b.translator
}

// State returns the connection state.
func (b *Base) State() State {
	return State(b.state.Load())
}

// IsConnected reports whether commands can be executed.
func (b *Base) IsConnected() bool {
	return b.State() == StateConnected
}

// SetInterrupted requests or clears cooperative cancellation of the running
// composite operation. It is safe to call from any goroutine.
func (b *Base) SetInterrupted(interrupted bool) {
	b.interrupted.Store(interrupted)
}

// IsInterrupted reports whether an interruption is pending.
func (b *Base) IsInterrupted() bool {
	return b.interrupted.Load()
}

// NsSeparator returns the namespace separator of key names.
func (b *Base) NsSeparator() string {
	return b.traits.NsSeparator
}

// Delimiter returns the line delimiter of command output.
func (b *Base) Delimiter() string {
	return b.traits.Delimiter
}

func (b *Base) setState(state State) {
	previous := State(b.state.Swap(int32(state)))

	switch {
	case previous != StateConnected && state == StateConnected:
		b.metrics.Connected(b.kind.String(), 1)
	case previous == StateConnected && state != StateConnected:
		b.metrics.Connected(b.kind.String(), -1)
	}
}

// Connect dials the backend. Calling it on a connected driver is a no-op;
// after a failure it may be called again.
func (b *Base) Connect(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.State() == StateConnected {
		return nil
	}

	b.setState(StateConnecting)

	t, err := b.dialer.Dial(ctx)
	if err != nil {
		b.setState(StateDisconnected)
		b.logger.Warn("connection failed", zap.Error(err))

		return NewConnectionError(b.kind.String(), err)
	}

	b.transport = t
	b.conn = b.protocol.NewConn(t)
	b.setState(StateConnected)

	b.logger.Info("connected", zap.String("protocol", b.protocol.Name()))

	return nil
}

// Disconnect closes the transport. Close failures are logged only.
func (b *Base) Disconnect() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closeTransport()
	b.logger.Info("disconnected")
}

func (b *Base) closeTransport() {
	if b.transport != nil {
		if err := b.transport.Close(); err != nil {
			b.logger.Warn("failed to close transport", zap.Error(err))
		}
	}

	b.transport = nil
	b.conn = nil
	b.setState(StateDisconnected)
}

// Execute runs a command line and returns the raw reply. An error reply of
// the backend is returned both as the value and as a ServerError.
func (b *Base) Execute(ctx context.Context, line string) (kv.Value, error) {
	if strings.TrimSpace(line) == "" {
		return kv.Null(), fmt.Errorf("%w: empty command", ErrInvalidArgument)
	}

	if !b.IsConnected() {
		return kv.Null(), ErrNotConnected
	}

	args, err := command.Split(line)
	if err != nil {
		return kv.Null(), fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return b.Do(ctx, args)
}

// Do runs one tokenized command.
func (b *Base) Do(ctx context.Context, args []string) (kv.Value, error) {
	if len(args) == 0 {
		return kv.Null(), fmt.Errorf("%w: empty command", ErrInvalidArgument)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.State() != StateConnected {
		return kv.Null(), ErrNotConnected
	}

	name := strings.ToLower(args[0])
	started := time.Now()

	reply, err := b.conn.Do(ctx, args)
	elapsed := time.Since(started)

	switch {
	case err != nil:
		b.metrics.ObserveCommand(b.kind.String(), name, metrics.StatusFailed, elapsed)
		b.logger.Debug("command failed", zap.String("command", name), zap.Duration("elapsed", elapsed), zap.Error(err))

		if !b.transport.IsConnected() {
			b.logger.Warn("connection lost", zap.Error(err))
			b.closeTransport()

			return kv.Null(), fmt.Errorf("failed to execute %s: %w: %w", name, ErrConnectionLost, err)
		}

		return kv.Null(), fmt.Errorf("failed to execute %s: %w", name, err)
	case reply.Type() == kv.TypeError:
		b.metrics.ObserveCommand(b.kind.String(), name, metrics.StatusServerError, elapsed)
		message, _ := reply.Str()
		b.logger.Debug("command error reply", zap.String("command", name), zap.String("reply", message))

		return reply, ServerError{Command: name, Message: message}
	default:
		b.metrics.ObserveCommand(b.kind.String(), name, metrics.StatusOK, elapsed)

		fields := []zap.Field{
			zap.String("command", name),
			zap.Int("args", len(args)-1),
			zap.Stringer("reply", reply.Type()),
			zap.Duration("elapsed", elapsed),
		}
		if typ, ok := b.translator.Verbs().Lookup(args[0]); ok {
			fields = append(fields, zap.Stringer("operation", typ))
		}

		b.logger.Debug("command executed", fields...)

		return reply, nil
	}
}

// run sends a key operation as arguments built from the raw key bytes. The
// command line form is only logged: tokenizing it back would turn a binary
// key into its hex text.
func (b *Base) run(ctx context.Context, op operation.Operation) (kv.Value, error) {
	line, err := b.translator.Translate(op)
	if err != nil {
		return kv.Null(), fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	args, err := b.translator.Args(op)
	if err != nil {
		return kv.Null(), fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	b.logger.Debug("key operation", zap.Stringer("operation", op.Type()), zap.String("command", line))

	return b.Do(ctx, args)
}

// LoadKey loads the value of key. A missing key yields a pair without value.
func (b *Base) LoadKey(ctx context.Context, key kv.Key, expectedType kv.Type) (kv.KeyValue, error) {
	reply, err := b.run(ctx, operation.Get(key, expectedType))
	if err != nil {
		return kv.KeyOnly(key), err
	}

	if reply.IsNull() {
		return kv.KeyOnly(key), nil
	}

	return kv.NewKeyValue(key, reply), nil
}

// CreateKey stores pair.
func (b *Base) CreateKey(ctx context.Context, pair kv.KeyValue) error {
	if len(pair.Key().KeyString().Data()) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}

	_, err := b.run(ctx, operation.Set(pair))

	return err
}

// DeleteKey removes key and reports whether it existed.
func (b *Base) DeleteKey(ctx context.Context, key kv.Key) (bool, error) {
	reply, err := b.run(ctx, operation.Delete(key))
	if err != nil {
		return false, err
	}

	n, ok := reply.Int()
	if !ok {
		return false, NewShapeError("delete", "integer", reply)
	}

	return n > 0, nil
}

// RenameKey renames key to newKey and returns the renamed key.
func (b *Base) RenameKey(ctx context.Context, key kv.Key, newKey kv.KeyString) (kv.Key, error) {
	if len(newKey.Data()) == 0 {
		return key, fmt.Errorf("%w: empty new key", ErrInvalidArgument)
	}

	if _, err := b.run(ctx, operation.Rename(key, newKey)); err != nil {
		return key, err
	}

	return key.WithKeyString(newKey), nil
}

// KeyTTL returns the remaining lifetime of key.
func (b *Base) KeyTTL(ctx context.Context, key kv.KeyString) (kv.TTL, error) {
	reply, err := b.Do(ctx, b.protocol.TTLCommand(key))
	if err != nil {
		return kv.UnknownTTL(), err
	}

	return b.protocol.ParseTTL(reply)
}

// DBKeysCount returns the number of keys of the current database.
func (b *Base) DBKeysCount(ctx context.Context) (int64, error) {
	reply, err := b.Do(ctx, b.protocol.CountCommand())
	if err != nil {
		return 0, err
	}

	return b.protocol.ParseCount(reply)
}

// ServerInfo returns the server statistics as field/value pairs.
func (b *Base) ServerInfo(ctx context.Context) (map[string]string, error) {
	reply, err := b.Do(ctx, b.protocol.InfoCommand())
	if err != nil {
		return nil, err
	}

	return b.protocol.ParseInfo(reply)
}

// CurrentDatabaseInfo returns the selected database with its key count.
func (b *Base) CurrentDatabaseInfo(ctx context.Context) (DatabaseInfo, error) {
	count, err := b.DBKeysCount(ctx)
	if err != nil {
		return DatabaseInfo{Name: b.database, Keys: 0}, err
	}

	return DatabaseInfo{Name: b.database, Keys: count}, nil
}

// ListKeysPage lists one page of keys. It scans, looks up every key's TTL
// and counts the database, reporting progress at fixed checkpoints.
//
// A failed TTL lookup marks the key NoExpiration and records it in
// TTLFailures. A failed count is carried in Page.Err. A malformed scan reply
// yields an empty page. Transport failures abort the listing; progress still
// ends at ProgressFinished. An
// interruption observed between TTL lookups stops enrichment and skips the
// count.
func (b *Base) ListKeysPage(ctx context.Context, req PageRequest, progress ProgressFunc) (Page, error) {
	report := func(percent int) {
		if progress != nil {
			progress(percent)
		}
	}

	if !b.IsConnected() {
		return Page{Request: req}, ErrNotConnected //nolint:exhaustruct
	}

	req = req.normalized()
	page := Page{Request: req} //nolint:exhaustruct

	report(ProgressStarted)

	keys, err := b.scan(ctx, req)

	switch {
	case err == nil:
	case IsShapeError(err):
		b.logger.Warn("malformed scan reply, returning empty page", zap.Error(err))
		b.metrics.ObservePage(b.kind.String(), outcomeEmpty)
		report(ProgressFinished)

		return page, nil
	default:
		b.metrics.ObservePage(b.kind.String(), outcomeFailed)
		report(ProgressFinished)

		return page, fmt.Errorf("failed to list keys: %w", err)
	}

	page.NextCursor = keys.next
	report(ProgressScanned)

	page.Keys = make([]kv.KeyValue, 0, len(keys.keys))

	for i, key := range keys.keys {
		if b.interrupted.CompareAndSwap(true, false) {
			page.Interrupted = true

			for _, rest := range keys.keys[i:] {
				page.Keys = append(page.Keys, placeholder(rest, kv.UnknownTTL()))
			}

			break
		}

		ttl, err := b.KeyTTL(ctx, key)
		if err != nil {
			if isFatal(err) {
				b.metrics.ObservePage(b.kind.String(), outcomeFailed)
				report(ProgressFinished)

				return page, fmt.Errorf("failed to load ttl of %s: %w", key.HumanReadable(), err)
			}

			b.logger.Debug("ttl lookup failed", zap.String("key", key.HumanReadable()), zap.Error(err))

			ttl = kv.NoExpiration()
			page.TTLFailures = append(page.TTLFailures, key)
		}

		page.Keys = append(page.Keys, placeholder(key, ttl))
	}

	if !page.Interrupted {
		count, err := b.DBKeysCount(ctx)
		if err != nil {
			page.Err = fmt.Errorf("failed to count keys: %w", err)
		} else {
			page.Total = count
			page.HasTotal = true
		}
	}

	report(ProgressCounted)
	report(ProgressFinished)

	b.metrics.ObservePage(b.kind.String(), pageOutcome(page))

	return page, nil
}

type scanResult struct {
	next uint64
	keys []kv.KeyString
}

func (b *Base) scan(ctx context.Context, req PageRequest) (scanResult, error) {
	reply, err := b.Do(ctx, b.protocol.ScanCommand(req.Cursor, req.Pattern, req.Limit))
	if err != nil {
		var serverErr ServerError
		if errors.As(err, &serverErr) {
			return scanResult{}, ShapeError{Command: "scan", Text: serverErr.Message}
		}

		return scanResult{}, err
	}

	next, keys, err := b.protocol.ParseScan(reply)
	if err != nil {
		return scanResult{}, err
	}

	return scanResult{next: next, keys: keys}, nil
}

func placeholder(key kv.KeyString, ttl kv.TTL) kv.KeyValue {
	return kv.NewKeyValue(kv.NewKey(key, ttl), kv.EmptyOf(kv.TypeString))
}

func pageOutcome(page Page) string {
	switch {
	case page.Interrupted:
		return outcomeInterrupted
	case page.Err != nil || len(page.TTLFailures) > 0:
		return outcomePartial
	default:
		return outcomeComplete
	}
}
