// Package testing provides scripted doubles of the kvcore interfaces.
// It is used for testing purposes.
package testing

// T is the subset of testing.TB the doubles report through.
type T interface {
	Helper()
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
}
