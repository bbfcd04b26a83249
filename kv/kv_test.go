package kv_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvbrowse/kvcore/keycodec"
	"github.com/kvbrowse/kvcore/kv"
)

func TestKeyString_Classification(t *testing.T) {
	t.Parallel()

	binary := kv.NewKeyString([]byte{0x00, 0x01, 0x02})
	assert.Equal(t, keycodec.Binary, binary.Type())
	assert.Equal(t, "000102", binary.HumanReadable())
	assert.Equal(t, `"000102"`, binary.ForCommandLine())

	text := kv.KeyStringOf("user:1")
	assert.Equal(t, keycodec.Text, text.Type())
	assert.Equal(t, "user:1", text.ForCommandLine())

	spaced := kv.KeyStringOf("my key")
	assert.Equal(t, `"my key"`, spaced.ForCommandLine())
}

func TestKeyString_SetDataReclassifies(t *testing.T) {
	t.Parallel()

	key := kv.KeyStringOf("plain")
	require.Equal(t, keycodec.Text, key.Type())

	key.SetData([]byte{0x01})
	assert.Equal(t, keycodec.Binary, key.Type())

	key.SetData([]byte("plain again"))
	assert.Equal(t, keycodec.Text, key.Type())
}

func TestKeyString_DataIsCopy(t *testing.T) {
	t.Parallel()

	key := kv.KeyStringOf("abc")
	data := key.Data()
	data[0] = 'z'

	assert.Equal(t, "abc", key.Raw())
}

func TestKey_Equality(t *testing.T) {
	t.Parallel()

	k1 := kv.NewKey(kv.KeyStringOf("user:1"), kv.Seconds(10))
	k2 := kv.NewKey(kv.KeyStringOf("user:1"), kv.NoExpiration())
	k3 := kv.NewKey(kv.KeyStringOf("user:1"), kv.Seconds(10))

	assert.True(t, k1.EqualsKey(k2))
	assert.False(t, k1.Equals(k2))
	assert.True(t, k1.Equals(k3))
	assert.False(t, k1.EqualsKey(kv.KeyOf("user:2")))
}

func TestKey_DefaultTTL(t *testing.T) {
	t.Parallel()

	assert.True(t, kv.KeyOf("a").TTL().IsNoExpiration())

	var zero kv.Key
	assert.True(t, zero.TTL().IsNoExpiration())
}

func TestTTL_FromLegacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		legacy   int64
		expected kv.TTL
	}{
		{"no expiration", -1, kv.NoExpiration()},
		{"expired", -2, kv.Expired()},
		{"zero seconds", 0, kv.Seconds(0)},
		{"seconds", 42, kv.Seconds(42)},
		{"other negative", -7, kv.UnknownTTL()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, kv.FromLegacy(tt.legacy))
		})
	}
}

func TestTTL_SentinelsNeverCollide(t *testing.T) {
	t.Parallel()

	assert.False(t, kv.Seconds(1).Equals(kv.NoExpiration()))
	assert.False(t, kv.Seconds(2).Equals(kv.Expired()))
	assert.False(t, kv.NoExpiration().Equals(kv.UnknownTTL()))

	seconds, ok := kv.Seconds(5).Seconds()
	assert.True(t, ok)
	assert.Equal(t, int64(5), seconds)

	_, ok = kv.NoExpiration().Seconds()
	assert.False(t, ok)
}

func TestTTL_Conversions(t *testing.T) {
	t.Parallel()

	ttl := kv.FromDuration(90 * time.Second)
	d, ok := ttl.Duration()
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, d)

	assert.Equal(t, int64(90), ttl.Legacy())
	assert.Equal(t, int64(kv.LegacyNoTTL), kv.NoExpiration().Legacy())
	assert.Equal(t, int64(kv.LegacyExpiredTTL), kv.Expired().Legacy())
	assert.Equal(t, int64(kv.LegacyNoTTL), kv.UnknownTTL().Legacy())

	assert.Equal(t, "90s", ttl.String())
	assert.Equal(t, "no expiration", kv.NoExpiration().String())
	assert.Equal(t, "expired", kv.Expired().String())
	assert.Equal(t, "unknown", kv.UnknownTTL().String())
}

func TestValue_Rendering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		value       kv.Value
		human       string
		commandLine string
	}{
		{"null", kv.Null(), "(nil)", "(nil)"},
		{"string", kv.StringOf("hello world"), "hello world", "hello world"},
		{"binary string", kv.String([]byte{0x00, 0x0a}), "\x00\n", `"000a"`},
		{"integer", kv.Integer(-3), "-3", "-3"},
		{"float", kv.Float(1.5), "1.5", "1.5"},
		{"bool", kv.Bool(true), "true", "true"},
		{"array", kv.Array(kv.StringOf("a"), kv.Integer(1)), "a 1", "a 1"},
		{
			"nested binary", kv.Array(kv.StringOf("a"), kv.String([]byte{0x01})),
			"a \x01", `a "01"`,
		},
		{
			"map", kv.Map(kv.MapEntry{Key: kv.StringOf("f"), Value: kv.StringOf("v")}),
			"f v", "f v",
		},
		{"set", kv.Set(kv.StringOf("x")), "x", "x"},
		{"error", kv.Error("ERR bad"), "ERR bad", "ERR bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.human, tt.value.String(" "))
			assert.Equal(t, tt.commandLine, tt.value.ForCommandLine(" "))
		})
	}
}

func TestValue_Equals(t *testing.T) {
	t.Parallel()

	assert.True(t, kv.Null().Equals(kv.Null()))
	assert.True(t, kv.StringOf("a").Equals(kv.String([]byte("a"))))
	assert.False(t, kv.StringOf("1").Equals(kv.Integer(1)))
	assert.False(t, kv.StringOf("a").Equals(kv.Error("a")))
	assert.True(t, kv.Array(kv.Integer(1), kv.Integer(2)).Equals(kv.Array(kv.Integer(1), kv.Integer(2))))
	assert.False(t, kv.Array(kv.Integer(1), kv.Integer(2)).Equals(kv.Array(kv.Integer(2), kv.Integer(1))))
	assert.True(t, kv.Set(kv.Integer(1), kv.Integer(2)).Equals(kv.Set(kv.Integer(2), kv.Integer(1))))
	assert.False(t, kv.Set(kv.Integer(1), kv.Integer(1)).Equals(kv.Set(kv.Integer(1), kv.Integer(2))))
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	n, ok := kv.StringOf("12").Int()
	assert.True(t, ok)
	assert.Equal(t, int64(12), n)

	_, ok = kv.StringOf("x").Int()
	assert.False(t, ok)

	items, ok := kv.Array(kv.Integer(1)).Items()
	assert.True(t, ok)
	assert.Len(t, items, 1)

	_, ok = kv.Integer(1).Items()
	assert.False(t, ok)

	assert.Equal(t, 3, kv.StringOf("abc").Len())
	assert.Equal(t, kv.TypeString, kv.EmptyOf(kv.TypeString).Type())
	assert.Equal(t, 0, kv.EmptyOf(kv.TypeString).Len())
}

func TestKeyValue_Type(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kv.TypeNull, kv.KeyOnly(kv.KeyOf("a")).Type())
	assert.Equal(t, kv.TypeString, kv.NewKeyValue(kv.KeyOf("a"), kv.StringOf("b")).Type())
}

func TestKeyValue_ValueString(t *testing.T) {
	t.Parallel()

	text := kv.NewKeyValue(kv.KeyOf("a"), kv.StringOf("hello world"))
	assert.Equal(t, "hello world", text.ValueString())
	assert.Equal(t, "hello world", text.ValueForCommandLine())

	binary := kv.NewKeyValue(kv.KeyOf("a"), kv.Array(kv.String([]byte{0x00}), kv.StringOf("b")))
	assert.Equal(t, "002062", binary.ValueString())
	assert.Equal(t, `"00" b`, binary.ValueForCommandLine())
}

func TestKeyValue_RenderingDoesNotMutate(t *testing.T) {
	t.Parallel()

	pair := kv.NewKeyValue(kv.KeyOf("k"), kv.String([]byte{0x01}))
	before := pair

	_ = pair.ValueString()
	_ = pair.ValueForCommandLine()
	_ = pair.Key().KeyString().ForCommandLine()

	assert.True(t, before.Equals(pair))
}

func TestKeyValue_Equals(t *testing.T) {
	t.Parallel()

	key := kv.KeyOf("k")

	assert.True(t, kv.KeyOnly(key).Equals(kv.KeyOnly(key)))
	assert.False(t, kv.KeyOnly(key).Equals(kv.NewKeyValue(key, kv.Null())))
	assert.True(t, kv.NewKeyValue(key, kv.StringOf("v")).Equals(kv.NewKeyValue(key, kv.StringOf("v"))))
	assert.False(t, kv.NewKeyValue(key, kv.StringOf("v")).Equals(kv.NewKeyValue(key, kv.StringOf("w"))))
	assert.False(t, kv.NewKeyValue(key, kv.StringOf("v")).Equals(
		kv.NewKeyValue(key.WithTTL(kv.Seconds(1)), kv.StringOf("v"))))
	assert.True(t, kv.NewKeyValue(key, kv.StringOf("v")).EqualsKey(key.WithTTL(kv.Seconds(1))))
}
