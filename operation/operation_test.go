package operation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvbrowse/kvcore/kv"
	"github.com/kvbrowse/kvcore/operation"
)

func TestGet(t *testing.T) {
	t.Parallel()

	key := kv.KeyOf("test-key")
	op := operation.Get(key, kv.TypeString)

	assert.Equal(t, operation.TypeGet, op.Type())
	assert.True(t, key.Equals(op.Key()))
	assert.Equal(t, kv.TypeString, op.ExpectedType())
	assert.False(t, op.Pair().Value().IsSome())
}

func TestSet(t *testing.T) {
	t.Parallel()

	key := kv.KeyOf("test-key")
	pair := kv.NewKeyValue(key, kv.StringOf("test-value"))
	op := operation.Set(pair)

	assert.Equal(t, operation.TypeSet, op.Type())
	assert.True(t, key.Equals(op.Key()))
	assert.True(t, pair.Equals(op.Pair()))
	assert.Equal(t, kv.TypeString, op.ExpectedType())
}

func TestDelete(t *testing.T) {
	t.Parallel()

	key := kv.KeyOf("test-key")
	op := operation.Delete(key)

	assert.Equal(t, operation.TypeDelete, op.Type())
	assert.True(t, key.Equals(op.Key()))
	assert.False(t, op.Pair().Value().IsSome())
	assert.Empty(t, op.NewKey().Raw())
}

func TestRename(t *testing.T) {
	t.Parallel()

	key := kv.KeyOf("old")
	op := operation.Rename(key, kv.KeyStringOf("new"))

	assert.Equal(t, operation.TypeRename, op.Type())
	assert.True(t, key.Equals(op.Key()))
	assert.Equal(t, "new", op.NewKey().Raw())
}
