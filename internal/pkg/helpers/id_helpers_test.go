package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntPrefix(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"42", 42, true},
		{"  7", 7, true},
		{"12abc", 12, true},
		{"-3", -3, true},
		{"+5x", 5, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"99999999999999999999", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseIntPrefix(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLookupKey(t *testing.T) {
	assert.Equal(t, int64(9999999), LookupKey("9999999"))
	assert.Equal(t, int64(4), LookupKey("4th"))
	assert.Equal(t, "canada", LookupKey("canada"))
}
