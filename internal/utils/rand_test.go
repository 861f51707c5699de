package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandStringBytesMaskImpr(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := RandStringBytesMaskImpr(8)
		assert.Len(t, id, 8)
		for _, ch := range id {
			assert.Contains(t, letterBytes, string(ch))
		}
		seen[id] = true
	}
	// Collisions over 100 draws from 62^8 would mean a broken generator.
	assert.Len(t, seen, 100)
}
