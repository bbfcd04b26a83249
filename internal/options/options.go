// Package options implements functional options shared by drivers, workers
// and entry points.
package options

// OptionConstructor returns the defaults an option set starts from.
type OptionConstructor[T any] func() T

// OptionCallback mutates one field of an option set.
type OptionCallback[T any] func(*T)

// ApplyOptions builds the defaults and applies cbs in order, so a later
// callback overrides an earlier one. A nil constructor starts from the zero
// value and nil callbacks are skipped.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}
