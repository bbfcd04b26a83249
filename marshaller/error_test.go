package marshaller //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	t.Parallel()

	rootErr := errors.New("bad input")

	tests := []struct {
		name     string
		wrap     func(Format, error) error
		format   Format
		expected string
	}{
		{"marshal yaml", errMarshal, FormatYAML, "failed to encode yaml: bad input"},
		{"unmarshal msgpack", errUnmarshal, FormatMsgpack, "failed to decode msgpack: bad input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, tt.wrap(tt.format, nil))

			err := tt.wrap(tt.format, rootErr)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			require.ErrorIs(t, err, rootErr)
		})
	}

	var marshalErr MarshalError
	require.ErrorAs(t, errMarshal(FormatYAML, rootErr), &marshalErr)
	assert.Equal(t, FormatYAML, marshalErr.Format)

	var unmarshalErr UnmarshalError
	require.ErrorAs(t, errUnmarshal(FormatMsgpack, rootErr), &unmarshalErr)
	assert.Equal(t, FormatMsgpack, unmarshalErr.Format)
}
