package confirmation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 200; i++ {
		number, err := Generate()
		require.NoError(t, err)
		assert.True(t, IsValid(number), "unexpected format: %s", number)

		_, dup := seen[number]
		assert.False(t, dup, "duplicate confirmation number %s", number)
		seen[number] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("BK-7KQ2M9XA"))
	assert.False(t, IsValid("BK-7KQ2M9X"))
	assert.False(t, IsValid("BK-0KQ2M9XA"))
	assert.False(t, IsValid("bk-7KQ2M9XA"))
	assert.False(t, IsValid("65f1c0a2e4b0a1b2c3d4e5f6"))
}
