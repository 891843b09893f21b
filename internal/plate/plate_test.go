package plate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"abc123":       "ABC123",
		"  ab 123 cd ": "AB123CD",
		"ab\t12\n3":    "AB123",
		"":             "",
		"ñu-12":        "ÑU-12",
	}
	for in, want := range tests {
		assert.Equal(t, want, Normalize(in), in)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("ABC123"))
	assert.True(t, Valid("AB-123-CD"))
	assert.False(t, Valid(""))
	assert.False(t, Valid("ABC 123"))
	assert.False(t, Valid("ABC/123"))
	assert.False(t, Valid("ABCDEFGHIJKLMNOPQ"))
}
