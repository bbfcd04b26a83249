// Package translator maps key operations to a backend's command syntax.
// One implementation serves every backend; the backends differ only in the
// verb table bound at construction.
package translator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kvbrowse/kvcore/backend"
	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/operation"
)

var (
	// ErrUnknownOperation is returned when the operation type has no verb.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrUnknownBackend is returned when a kind has no verb table.
	ErrUnknownBackend = errors.New("no translator for backend")
)

// Translator converts between the entity model and command strings.
type Translator interface {
	// LoadKeyCommand returns the command loading key. The expected type is
	// accepted for all backends; text protocols ignore it.
	LoadKeyCommand(key kv.Key, expectedType kv.Type) string
	// CreateKeyCommand returns the command storing pair.
	CreateKeyCommand(pair kv.KeyValue) string
	// DeleteKeyCommand returns the command removing key.
	DeleteKeyCommand(key kv.Key) string
	// RenameKeyCommand returns the command renaming key to newKey.
	RenameKeyCommand(key kv.Key, newKey kv.KeyString) string
	// IsLoadCommand reports whether a parsed command name is the load verb.
	IsLoadCommand(name string) bool
	// Translate returns the command of a generic operation.
	Translate(op operation.Operation) (string, error)
	// Args returns the arguments of a generic operation built from the raw
	// key and value bytes, ready to be sent without tokenizing.
	Args(op operation.Operation) ([]string, error)
	// Verbs returns the verb table.
	Verbs() backend.Verbs
}

// Text is a translator for text command protocols.
type Text struct {
	verbs backend.Verbs
}

var (
	_ Translator = Text{} //nolint:exhaustruct
)

// NewText creates a translator with a fixed verb table.
func NewText(verbs backend.Verbs) Text {
	return Text{verbs: verbs}
}

// New returns the translator of kind.
func New(kind backend.Kind) (Text, error) {
	verbs, ok := backend.VerbsOf(kind)
	if !ok {
		return Text{}, fmt.Errorf("%w: %s", ErrUnknownBackend, kind) //nolint:exhaustruct
	}

	return NewText(verbs), nil
}

// Verbs returns the verb table.
func (t Text) Verbs() backend.Verbs {
	return t.verbs
}

// LoadKeyCommand emits "<get> <key>".
func (t Text) LoadKeyCommand(key kv.Key, _ kv.Type) string {
	return join(t.verbs.Get, key.KeyString().ForCommandLine())
}

// CreateKeyCommand emits "<set> <key> <value>".
func (t Text) CreateKeyCommand(pair kv.KeyValue) string {
	return join(t.verbs.Set, pair.Key().KeyString().ForCommandLine(), pair.ValueForCommandLine())
}

// DeleteKeyCommand emits "<delete> <key>".
func (t Text) DeleteKeyCommand(key kv.Key) string {
	return join(t.verbs.Delete, key.KeyString().ForCommandLine())
}

// RenameKeyCommand emits "<rename> <key> <new key>".
func (t Text) RenameKeyCommand(key kv.Key, newKey kv.KeyString) string {
	return join(t.verbs.Rename, key.KeyString().ForCommandLine(), newKey.ForCommandLine())
}

// IsLoadCommand reports whether name equals the get verb.
func (t Text) IsLoadCommand(name string) bool {
	return name == t.verbs.Get
}

// Translate dispatches on the operation type.
func (t Text) Translate(op operation.Operation) (string, error) {
	switch op.Type() {
	case operation.TypeGet:
		return t.LoadKeyCommand(op.Key(), op.ExpectedType()), nil
	case operation.TypeSet:
		return t.CreateKeyCommand(op.Pair()), nil
	case operation.TypeDelete:
		return t.DeleteKeyCommand(op.Key()), nil
	case operation.TypeRename:
		return t.RenameKeyCommand(op.Key(), op.NewKey()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, op.Type())
	}
}

// Args emits the verb followed by the raw key, then the raw value for set
// or the raw new key for rename. Binary keys are passed through unchanged,
// where the command line form would turn them into their hex text.
func (t Text) Args(op operation.Operation) ([]string, error) {
	verb, ok := t.verbs.For(op.Type())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, op.Type())
	}

	args := []string{verb, op.Key().KeyString().Raw()}

	switch op.Type() {
	case operation.TypeSet:
		args = append(args, rawValue(op.Pair()))
	case operation.TypeRename:
		args = append(args, op.NewKey().Raw())
	case operation.TypeGet, operation.TypeDelete:
	}

	return args, nil
}

func rawValue(pair kv.KeyValue) string {
	value := pair.Value().UnwrapOr(kv.Null())

	if data, ok := value.Bytes(); ok {
		return string(data)
	}

	if value.IsNull() {
		return ""
	}

	return value.String(" ")
}

func join(parts ...string) string {
	return strings.Join(parts, " ")
}
