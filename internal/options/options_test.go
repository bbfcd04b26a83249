package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvbrowse/kvcore/internal/options"
)

type dialOptions struct {
	address  string
	database string
	retries  int
}

func defaultDialOptions() dialOptions {
	return dialOptions{address: "127.0.0.1:6379", database: "db0", retries: 1}
}

func withDatabase(name string) options.OptionCallback[dialOptions] {
	return func(opts *dialOptions) { opts.database = name }
}

func withRetries(n int) options.OptionCallback[dialOptions] {
	return func(opts *dialOptions) { opts.retries = n }
}

func TestApplyOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor options.OptionConstructor[dialOptions]
		callbacks   []options.OptionCallback[dialOptions]
		expected    dialOptions
	}{
		{
			name:        "defaults",
			constructor: defaultDialOptions,
			callbacks:   nil,
			expected:    dialOptions{address: "127.0.0.1:6379", database: "db0", retries: 1},
		},
		{
			name:        "nil constructor starts from zero",
			constructor: nil,
			callbacks:   []options.OptionCallback[dialOptions]{withRetries(3)},
			expected:    dialOptions{address: "", database: "", retries: 3},
		},
		{
			name:        "later callback wins",
			constructor: defaultDialOptions,
			callbacks: []options.OptionCallback[dialOptions]{
				withDatabase("db1"), withRetries(2), withDatabase("db5"),
			},
			expected: dialOptions{address: "127.0.0.1:6379", database: "db5", retries: 2},
		},
		{
			name:        "nil callback is skipped",
			constructor: defaultDialOptions,
			callbacks:   []options.OptionCallback[dialOptions]{nil, withRetries(0)},
			expected:    dialOptions{address: "127.0.0.1:6379", database: "db0", retries: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, options.ApplyOptions(tt.constructor, tt.callbacks))
		})
	}
}
