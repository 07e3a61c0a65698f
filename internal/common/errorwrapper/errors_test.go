package errorwrapper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		want    string
	}{
		{name: "wraps error", err: ErrNotFound, message: "loading listing", want: "loading listing: not found"},
		{name: "nil error", err: nil, message: "loading listing", want: "loading listing: <nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(tt.err, tt.message)
			assert.EqualError(t, got, tt.want)
			if tt.err != nil {
				assert.ErrorIs(t, got, tt.err)
			}
		})
	}
}

func TestNewError(t *testing.T) {
	cause := errors.New("boom")
	err := NewError("reading %s: %w", "dump.txt", cause)

	assert.EqualError(t, err, "reading dump.txt: boom")
	assert.ErrorIs(t, err, cause)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("port", 0, "must be between 1 and 65535")

	assert.EqualError(t, err, "validation error: field 'port' with value '0': must be between 1 and 65535")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var ve *ValidationError
	wrapped := WrapError(err, "invalid parser config")
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "port", ve.Field)
}
