// Package loopback serves an engine.Engine in-process over RESP so that
// embedded and client-library backends are driven like any network store.
package loopback

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/engine"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/operation"
)

const defaultScanCount = 10

// Server executes RESP commands against an engine. Key operations use the
// verbs of the backend kind; the listing and inspection commands (SCAN,
// KEYS, TTL, EXPIRE, DBSIZE, INFO, PING, EXISTS) are shared by all kinds.
type Server struct {
	engine engine.Engine
	kind   backend.Kind
	verbs  backend.Verbs
	logger *zap.Logger
}

// NewServer creates a server for kind over e.
func NewServer(e engine.Engine, kind backend.Kind, logger *zap.Logger) (*Server, error) {
	verbs, ok := backend.VerbsOf(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %d", backend.ErrUnknownKind, int(kind))
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{engine: e, kind: kind, verbs: verbs, logger: logger}, nil
}

// Close closes the engine.
func (s *Server) Close() error {
	return s.engine.Close() //nolint:wrapcheck
}

func errorReply(format string, args ...any) kv.Value {
	return kv.Error("ERR " + fmt.Sprintf(format, args...))
}

func wrongArgs(name string) kv.Value {
	return errorReply("wrong number of arguments for '%s' command", strings.ToLower(name))
}

// Handle executes one command and returns its reply. Failures are reported
// as error replies.
func (s *Server) Handle(ctx context.Context, args []string) kv.Value {
	if len(args) == 0 {
		return errorReply("empty command")
	}

	name := args[0]

	if typ, ok := s.lookupVerb(name); ok {
		return s.handleKeyOperation(ctx, typ, args)
	}

	switch strings.ToUpper(name) {
	case "PING":
		if len(args) > 1 {
			return kv.StringOf(strings.Join(args[1:], " "))
		}

		return kv.StringOf("PONG")
	case "SCAN":
		return s.scan(ctx, args)
	case "KEYS":
		return s.keys(ctx, args)
	case "TTL":
		return s.ttl(ctx, args)
	case "EXPIRE":
		return s.expire(ctx, args)
	case "EXISTS":
		return s.exists(ctx, args)
	case "DBSIZE":
		return s.dbSize(ctx)
	case "INFO":
		return s.info(ctx)
	default:
		return errorReply("unknown command '%s'", name)
	}
}

// lookupVerb matches the verbs of the kind regardless of case.
func (s *Server) lookupVerb(name string) (operation.Type, bool) {
	for _, candidate := range []string{name, strings.ToUpper(name), strings.ToLower(name)} {
		if typ, ok := s.verbs.Lookup(candidate); ok {
			return typ, true
		}
	}

	return 0, false
}

func (s *Server) handleKeyOperation(ctx context.Context, typ operation.Type, args []string) kv.Value {
	switch typ {
	case operation.TypeGet:
		if len(args) != 2 { //nolint:mnd
			return wrongArgs(args[0])
		}

		value, err := s.engine.Get(ctx, []byte(args[1]))
		if errors.Is(err, engine.ErrNotFound) {
			return kv.Null()
		}

		if err != nil {
			return s.failure(args[0], err)
		}

		return kv.String(value)
	case operation.TypeSet:
		if len(args) < 3 { //nolint:mnd
			return wrongArgs(args[0])
		}

		// Values split on whitespace by the caller are stored rejoined.
		value := strings.Join(args[2:], " ")
		if err := s.engine.Set(ctx, []byte(args[1]), []byte(value)); err != nil {
			return s.failure(args[0], err)
		}

		return kv.StringOf("OK")
	case operation.TypeDelete:
		if len(args) < 2 { //nolint:mnd
			return wrongArgs(args[0])
		}

		var deleted int64

		for _, key := range args[1:] {
			ok, err := s.engine.Delete(ctx, []byte(key))
			if err != nil {
				return s.failure(args[0], err)
			}

			if ok {
				deleted++
			}
		}

		return kv.Integer(deleted)
	case operation.TypeRename:
		if len(args) != 3 { //nolint:mnd
			return wrongArgs(args[0])
		}

		err := s.engine.Rename(ctx, []byte(args[1]), []byte(args[2]))
		if errors.Is(err, engine.ErrNotFound) {
			return errorReply("no such key")
		}

		if err != nil {
			return s.failure(args[0], err)
		}

		return kv.StringOf("OK")
	default:
		return errorReply("unsupported operation %s", typ)
	}
}

func (s *Server) scan(ctx context.Context, args []string) kv.Value {
	if len(args) < 2 || len(args)%2 != 0 {
		return wrongArgs(args[0])
	}

	cursor, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return errorReply("invalid cursor")
	}

	pattern, count := "*", defaultScanCount

	for i := 2; i < len(args); i += 2 {
		switch strings.ToUpper(args[i]) {
		case "MATCH":
			pattern = args[i+1]
		case "COUNT":
			count, err = strconv.Atoi(args[i+1])
			if err != nil || count < 1 {
				return errorReply("value is not an integer or out of range")
			}
		default:
			return errorReply("syntax error")
		}
	}

	next, keys, err := engine.Page(ctx, s.engine, cursor, pattern, count)
	if err != nil {
		return s.failure(args[0], err)
	}

	items := make([]kv.Value, 0, len(keys))
	for _, key := range keys {
		items = append(items, kv.String(key))
	}

	return kv.Array(kv.StringOf(strconv.FormatUint(next, 10)), kv.Array(items...))
}

func (s *Server) keys(ctx context.Context, args []string) kv.Value {
	if len(args) != 2 { //nolint:mnd
		return wrongArgs(args[0])
	}

	var items []kv.Value

	err := s.engine.Keys(ctx, func(key []byte) bool {
		if engine.Match(args[1], key) {
			items = append(items, kv.String(key))
		}

		return true
	})
	if err != nil {
		return s.failure(args[0], err)
	}

	return kv.Array(items...)
}

func (s *Server) ttl(ctx context.Context, args []string) kv.Value {
	if len(args) != 2 { //nolint:mnd
		return wrongArgs(args[0])
	}

	ttl, err := s.engine.TTL(ctx, []byte(args[1]))
	if errors.Is(err, engine.ErrNotFound) {
		return kv.Integer(kv.LegacyExpiredTTL)
	}

	if err != nil {
		return s.failure(args[0], err)
	}

	return kv.Integer(ttl.Legacy())
}

func (s *Server) expire(ctx context.Context, args []string) kv.Value {
	if len(args) != 3 { //nolint:mnd
		return wrongArgs(args[0])
	}

	seconds, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return errorReply("value is not an integer or out of range")
	}

	err = s.engine.Expire(ctx, []byte(args[1]), time.Duration(seconds)*time.Second)

	switch {
	case errors.Is(err, engine.ErrNotFound):
		return kv.Integer(0)
	case err != nil:
		return s.failure(args[0], err)
	default:
		return kv.Integer(1)
	}
}

func (s *Server) exists(ctx context.Context, args []string) kv.Value {
	if len(args) < 2 { //nolint:mnd
		return wrongArgs(args[0])
	}

	var found int64

	for _, key := range args[1:] {
		_, err := s.engine.Get(ctx, []byte(key))

		switch {
		case err == nil:
			found++
		case !errors.Is(err, engine.ErrNotFound):
			return s.failure(args[0], err)
		}
	}

	return kv.Integer(found)
}

func (s *Server) dbSize(ctx context.Context) kv.Value {
	count, err := s.engine.Count(ctx)
	if err != nil {
		return s.failure("DBSIZE", err)
	}

	return kv.Integer(count)
}

// info renders the engine description the way INFO does: a section header
// followed by "field:value" lines.
func (s *Server) info(ctx context.Context) kv.Value {
	info, err := s.engine.Info(ctx)
	if err != nil {
		return s.failure("INFO", err)
	}

	fields := make([]string, 0, len(info))
	for field := range info {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	var sb strings.Builder

	sb.WriteString("# Server\r\n")
	sb.WriteString("backend:" + s.kind.String() + "\r\n")

	for _, field := range fields {
		sb.WriteString(field + ":" + info[field] + "\r\n")
	}

	return kv.StringOf(sb.String())
}

func (s *Server) failure(command string, err error) kv.Value {
	s.logger.Debug("command failed", zap.String("command", command), zap.Error(err))
	return errorReply("%s", err.Error())
}
