// Package proxy runs a driver behind request and response channels so that
// callers never block on backend round trips.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kvbrowse/kvcore/driver"
	"github.com/kvbrowse/kvcore/events"
	"github.com/kvbrowse/kvcore/internal/options"
	"github.com/kvbrowse/kvcore/kv"
)

var (
	// ErrStopped is returned for requests submitted to or queued in a
	// stopped worker.
	ErrStopped = errors.New("worker is stopped")
	// ErrUnsupportedRequest is carried by responses to unknown request types.
	ErrUnsupportedRequest = errors.New("unsupported request")
)

// Driver is the driver surface the worker dispatches to.
type Driver interface {
	driver.Driver
	SetInterrupted(interrupted bool)
	LoadKey(ctx context.Context, key kv.Key, expectedType kv.Type) (kv.KeyValue, error)
	CreateKey(ctx context.Context, pair kv.KeyValue) error
	DeleteKey(ctx context.Context, key kv.Key) (bool, error)
	RenameKey(ctx context.Context, key kv.Key, newKey kv.KeyString) (kv.Key, error)
	ServerInfo(ctx context.Context) (map[string]string, error)
	CurrentDatabaseInfo(ctx context.Context) (driver.DatabaseInfo, error)
}

var _ Driver = &driver.Base{} //nolint:exhaustruct

type workerOptions struct {
	logger    *zap.Logger
	queueSize int
}

func defaultWorkerOptions() workerOptions {
	return workerOptions{
		logger:    zap.NewNop(),
		queueSize: 16, //nolint:mnd
	}
}

// Option configures a worker.
type Option = options.OptionCallback[workerOptions]

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(opts *workerOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithQueueSize sets the capacity of the request, response and progress
// channels.
func WithQueueSize(size int) Option {
	return func(opts *workerOptions) {
		if size > 0 {
			opts.queueSize = size
		}
	}
}

// Worker owns one driver and processes its requests strictly in order on a
// single goroutine.
type Worker struct {
	driver    Driver
	logger    *zap.Logger
	requests  chan events.Request
	responses chan events.Response
	progress  chan events.Progress
	done      chan struct{}
	cancel    context.CancelFunc
	group     *errgroup.Group
	stopOnce  sync.Once
	stopErr   error
}

// Start launches a worker for d. The worker stops when ctx is cancelled or
// Stop is called.
func Start(ctx context.Context, d Driver, opts ...Option) *Worker {
	o := options.ApplyOptions(defaultWorkerOptions, opts)

	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)

	w := &Worker{
		driver:    d,
		logger:    o.logger,
		requests:  make(chan events.Request, o.queueSize),
		responses: make(chan events.Response, o.queueSize),
		progress:  make(chan events.Progress, o.queueSize),
		done:      make(chan struct{}),
		cancel:    cancel,
		group:     group,
		stopOnce:  sync.Once{},
		stopErr:   nil,
	}

	group.Go(func() error {
		return w.run(ctx)
	})

	return w
}

// Responses delivers one response per processed request. It is closed when
// the worker stops.
func (w *Worker) Responses() <-chan events.Response {
	return w.responses
}

// Progress delivers advisory progress notifications. Notifications are
// dropped when nobody reads them. It is closed when the worker stops.
func (w *Worker) Progress() <-chan events.Progress {
	return w.progress
}

// Submit queues req. It blocks while the queue is full.
func (w *Worker) Submit(ctx context.Context, req events.Request) error {
	select {
	case <-w.done:
		return ErrStopped
	default:
	}

	select {
	case w.requests <- req:
		return nil
	case <-w.done:
		return ErrStopped
	case <-ctx.Done():
		return fmt.Errorf("failed to submit request: %w", ctx.Err())
	}
}

// Interrupt asks the running composite operation to stop at its next step.
func (w *Worker) Interrupt() {
	w.driver.SetInterrupted(true)
}

// Stop cancels the worker and waits for it to exit. Queued requests are
// answered with ErrStopped while buffer space remains.
func (w *Worker) Stop() error {
	w.stopOnce.Do(func() {
		w.cancel()
		w.stopErr = w.group.Wait()
	})

	return w.stopErr
}

func (w *Worker) run(ctx context.Context) error {
	defer close(w.progress)
	defer close(w.responses)
	defer close(w.done)

	for {
		select {
		case <-ctx.Done():
			w.drain()
			return nil
		case req := <-w.requests:
			w.respond(ctx, w.handle(ctx, req))
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case req := <-w.requests:
			select {
			case w.responses <- req.Fail(ErrStopped):
			default:
				w.logger.Debug("dropped response of stopped worker", zap.Uint64("sender", uint64(req.Sender())))
			}
		default:
			return
		}
	}
}

func (w *Worker) respond(ctx context.Context, resp events.Response) {
	select {
	case w.responses <- resp:
	case <-ctx.Done():
		w.logger.Debug("dropped response", zap.Uint64("sender", uint64(resp.Sender())))
	}
}

func (w *Worker) publish(progress events.Progress) {
	select {
	case w.progress <- progress:
	default:
	}
}

func (w *Worker) handle(ctx context.Context, req events.Request) events.Response {
	switch r := req.(type) {
	case events.LoadDatabaseContentRequest:
		page, err := w.driver.ListKeysPage(ctx, r.Page, func(percent int) {
			w.publish(events.Progress{From: r.From, Percent: percent})
		})

		return events.LoadDatabaseContentResponse{Request: r, Page: page, Err: err}
	case events.ExecuteRequest:
		result, err := w.driver.Execute(ctx, r.Command)
		return events.ExecuteResponse{Request: r, Result: result, Err: err}
	case events.LoadKeyRequest:
		pair, err := w.driver.LoadKey(ctx, r.Key, r.ExpectedType)
		return events.LoadKeyResponse{Request: r, Pair: pair, Err: err}
	case events.CreateKeyRequest:
		return events.CreateKeyResponse{Request: r, Err: w.driver.CreateKey(ctx, r.Pair)}
	case events.DeleteKeyRequest:
		deleted, err := w.driver.DeleteKey(ctx, r.Key)
		return events.DeleteKeyResponse{Request: r, Deleted: deleted, Err: err}
	case events.RenameKeyRequest:
		key, err := w.driver.RenameKey(ctx, r.Key, r.NewKey)
		return events.RenameKeyResponse{Request: r, Key: key, Err: err}
	case events.ServerInfoRequest:
		return w.serverInfo(ctx, r)
	case events.ConnectRequest:
		return events.ConnectResponse{Request: r, Err: w.driver.Connect(ctx)}
	case events.DisconnectRequest:
		w.driver.Disconnect()
		return events.DisconnectResponse{Request: r, Err: nil}
	default:
		return req.Fail(fmt.Errorf("%w: %T", ErrUnsupportedRequest, req))
	}
}

// serverInfo carries a database lookup failure next to the statistics.
func (w *Worker) serverInfo(ctx context.Context, r events.ServerInfoRequest) events.Response {
	info, err := w.driver.ServerInfo(ctx)
	if err != nil {
		return r.Fail(err)
	}

	db, err := w.driver.CurrentDatabaseInfo(ctx)

	return events.ServerInfoResponse{Request: r, Info: info, Database: db, Err: err}
}
