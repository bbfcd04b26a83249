package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore"
	"github.com/kvbrowse/kvcore/command"
	"github.com/kvbrowse/kvcore/config"
	"github.com/kvbrowse/kvcore/events"
	"github.com/kvbrowse/kvcore/internal/log"
	"github.com/kvbrowse/kvcore/proxy"
	"github.com/kvbrowse/kvcore/translator"
)

var errNoResponse = errors.New("worker stopped without responding")

// session is one connected backend behind a worker.
type session struct {
	settings   config.Settings
	logger     *zap.Logger
	worker     *proxy.Worker
	sender     events.Sender
	translator translator.Translator
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "kvcore",
		Short:         "Browse and edit key-value backends",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a config file")
	flags.String("backend", "redis", "Backend kind: redis, keydb, pika, memcached, rocksdb, leveldb, lmdb, etcd, tarantool")
	flags.String("address", "", "host:port of a network backend")
	flags.String("url", "", "redis:// URL, implies the goredis transport")
	flags.String("username", "", "User name")
	flags.String("password", "", "Password")
	flags.Int("db", 0, "Redis database number")
	flags.StringSlice("endpoints", nil, "etcd endpoints")
	flags.String("space", "kv", "Tarantool space")
	flags.String("path", "", "Data directory of embedded stores, in memory when empty")
	flags.String("transport", config.TransportAuto, "RESP transport: auto, tcp or goredis")
	flags.Duration("dial-timeout", 5*time.Second, "Connection timeout")
	flags.Duration("io-timeout", 30*time.Second, "Per command timeout")
	flags.Int("page-size", 10, "Keys per page")
	flags.String("env", "dev", "Logging preset: dev or prod")
	flags.String("log-level", "warn", "Minimum log level")

	root.AddCommand(
		newScanCommand(),
		newExecCommand(),
		newGetCommand(),
		newSetCommand(),
		newDeleteCommand(),
		newRenameCommand(),
		newInfoCommand(),
	)

	return root
}

// withSession connects, runs fn and tears everything down.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to read config flag: %w", err)
	}

	settings, err := config.Load(file, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := log.WithLevel(settings.Env, settings.LogLevel)
	if err != nil {
		return err
	}

	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	conn, err := kvcore.Open(ctx, settings, kvcore.WithLogger(logger))
	if err != nil {
		return err
	}

	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn("failed to close connection", zap.Error(err))
		}
	}()

	worker := proxy.Start(ctx, conn, proxy.WithLogger(logger))

	defer func() {
		if err := worker.Stop(); err != nil {
			logger.Warn("worker stopped with error", zap.Error(err))
		}
	}()

	s := &session{
		settings:   settings,
		logger:     logger,
		worker:     worker,
		sender:     events.NewSender(),
		translator: conn.Translator(),
	}

	if _, err := s.call(ctx, events.ConnectRequest{From: s.sender}); err != nil {
		return err
	}

	return fn(ctx, s)
}

// isRead reports whether line runs the load verb of the backend.
func (s *session) isRead(line string) bool {
	name, err := command.Name(line)

	return err == nil && s.translator.IsLoadCommand(name)
}

// call submits req and waits for its response. The carried error is
// returned alongside the response.
func (s *session) call(ctx context.Context, req events.Request) (events.Response, error) {
	if err := s.worker.Submit(ctx, req); err != nil {
		return nil, err
	}

	progress := s.worker.Progress()

	for {
		select {
		case resp, ok := <-s.worker.Responses():
			if !ok {
				return nil, errNoResponse
			}

			if resp.Sender() != req.Sender() {
				continue
			}

			return resp, resp.Failure()
		case p, ok := <-progress:
			if !ok {
				progress = nil
				continue
			}

			s.logger.Debug("progress", zap.Int("percent", p.Percent))
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to wait for response: %w", ctx.Err())
		}
	}
}
