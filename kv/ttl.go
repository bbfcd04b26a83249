package kv

import (
	"strconv"
	"time"
)

// TTLKind tags the state held by a TTL.
type TTLKind int

const (
	// TTLNoExpiration marks a key that exists and never expires.
	TTLNoExpiration TTLKind = iota
	// TTLSeconds marks a key expiring after a number of seconds.
	TTLSeconds
	// TTLExpired marks a key that is expired or does not exist.
	TTLExpired
	// TTLUnknown marks a key whose lifetime was never resolved.
	TTLUnknown
)

const (
	// LegacyNoTTL is the numeric wire value for "no expiration".
	LegacyNoTTL = -1
	// LegacyExpiredTTL is the numeric wire value for "expired or missing".
	LegacyExpiredTTL = -2
)

// TTL is a key lifetime. The zero value is NoExpiration.
type TTL struct {
	kind    TTLKind
	seconds int64
}

// Seconds returns a TTL of n seconds. Negative n yields Unknown.
func Seconds(n int64) TTL {
	if n < 0 {
		return UnknownTTL()
	}

	return TTL{kind: TTLSeconds, seconds: n}
}

// NoExpiration returns the TTL of a key that never expires.
func NoExpiration() TTL {
	return TTL{kind: TTLNoExpiration, seconds: 0}
}

// Expired returns the TTL of an expired or missing key.
func Expired() TTL {
	return TTL{kind: TTLExpired, seconds: 0}
}

// UnknownTTL returns the TTL of a key whose lifetime was not resolved.
func UnknownTTL() TTL {
	return TTL{kind: TTLUnknown, seconds: 0}
}

// FromLegacy converts the numeric TTL reply used by Redis-like servers.
func FromLegacy(n int64) TTL {
	switch {
	case n == LegacyNoTTL:
		return NoExpiration()
	case n == LegacyExpiredTTL:
		return Expired()
	case n >= 0:
		return Seconds(n)
	default:
		return UnknownTTL()
	}
}

// FromDuration converts a duration, rounding down to whole seconds.
func FromDuration(d time.Duration) TTL {
	return Seconds(int64(d / time.Second))
}

// Kind returns the TTL tag.
func (t TTL) Kind() TTLKind {
	return t.kind
}

// Seconds returns the number of seconds and true for TTLSeconds.
func (t TTL) Seconds() (int64, bool) {
	return t.seconds, t.kind == TTLSeconds
}

// Duration returns the lifetime as a duration and true for TTLSeconds.
func (t TTL) Duration() (time.Duration, bool) {
	return time.Duration(t.seconds) * time.Second, t.kind == TTLSeconds
}

// IsNoExpiration reports whether the key never expires.
func (t TTL) IsNoExpiration() bool {
	return t.kind == TTLNoExpiration
}

// IsExpired reports whether the key is expired or missing.
func (t TTL) IsExpired() bool {
	return t.kind == TTLExpired
}

// IsUnknown reports whether the lifetime was never resolved.
func (t TTL) IsUnknown() bool {
	return t.kind == TTLUnknown
}

// Legacy converts back to the numeric domain. Unknown maps to LegacyNoTTL.
func (t TTL) Legacy() int64 {
	switch t.kind {
	case TTLSeconds:
		return t.seconds
	case TTLExpired:
		return LegacyExpiredTTL
	case TTLNoExpiration, TTLUnknown:
		return LegacyNoTTL
	default:
		return LegacyNoTTL
	}
}

// Equals compares tags and, for TTLSeconds, the number of seconds.
func (t TTL) Equals(other TTL) bool {
	return t == other
}

func (t TTL) String() string {
	switch t.kind {
	case TTLSeconds:
		return strconv.FormatInt(t.seconds, 10) + "s"
	case TTLNoExpiration:
		return "no expiration"
	case TTLExpired:
		return "expired"
	case TTLUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}
