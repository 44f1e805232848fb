package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNotFound,
		ErrRateLimited,
		ErrNotConfigured,
		ErrInvalidInput,
	}

	for i, err1 := range all {
		for j, err2 := range all {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"%v should not match %v", err1, err2)
			}
		}
	}
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNotFound, "not found"},
		{ErrRateLimited, "rate limited"},
		{ErrNotConfigured, "not configured"},
		{ErrInvalidInput, "invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetching author a1: %w", ErrNotFound)

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrRateLimited))
	assert.Contains(t, wrapped.Error(), "not found")
}
