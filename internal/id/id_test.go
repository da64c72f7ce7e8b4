package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := New()
		assert.False(t, seen[s], "IDs must not repeat")
		seen[s] = true
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(New()))
	assert.False(t, IsValid("not-an-id"))
	assert.False(t, IsValid(""))
}
