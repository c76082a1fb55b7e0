package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuard(t *testing.T) {
	assert := assert.New(t)

	t.Run("normal playback advances the known-good position", func(t *testing.T) {
		g := NewGuard(10)
		assert.Equal(1.0, g.Observe(1))
		assert.Equal(2.5, g.Observe(2.5))
		assert.Equal(2.5, g.Position())
	})

	t.Run("forward jumps beyond tolerance are clamped", func(t *testing.T) {
		g := NewGuard(60)
		g.Observe(5)
		assert.Equal(5.0, g.Observe(30))
		assert.Equal(5.0, g.Position())

		// Small steps inside the tolerance still advance.
		assert.Equal(6.9, g.Observe(6.9))
	})

	t.Run("repeated and out-of-order callbacks are idempotent", func(t *testing.T) {
		g := NewGuard(60)
		g.Observe(4)
		assert.Equal(4.0, g.Observe(4))
		assert.Equal(4.0, g.Observe(2)) // rewind never lowers known-good
		assert.Equal(4.0, g.Observe(40))
		assert.Equal(4.0, g.Observe(40))
		assert.Equal(4.0, g.Position())
	})

	t.Run("completion only at the end", func(t *testing.T) {
		g := NewGuard(6)
		for _, p := range []float64{1, 2.5, 4, 5.5} {
			g.Observe(p)
		}
		assert.False(g.Completed())
		g.Observe(6)
		assert.True(g.Completed())
	})

	t.Run("a straight seek to the end never completes", func(t *testing.T) {
		g := NewGuard(600)
		g.Observe(600)
		assert.False(g.Completed())
		assert.Equal(0.0, g.Position())
	})
}
