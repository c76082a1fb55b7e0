package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/fit-training-service/internal/domain"
)

func TestEvaluator(t *testing.T) {
	assert := assert.New(t)
	e := NewEvaluator(domain.Questions())

	t.Run("all correct scores exactly 100 and passes", func(t *testing.T) {
		res := e.Score(map[int]int{1: 1, 2: 2, 3: 2})
		assert.Equal(100.0, res.Score)
		assert.True(res.Passed)
	})

	t.Run("one wrong scores about 66.7 and fails", func(t *testing.T) {
		res := e.Score(map[int]int{1: 0, 2: 2, 3: 2})
		assert.InDelta(66.7, res.Score, 0.1)
		assert.False(res.Passed)
	})

	t.Run("only an exact 100 passes", func(t *testing.T) {
		for _, answers := range []map[int]int{
			{1: 0, 2: 0, 3: 0},
			{1: 1, 2: 2, 3: 0},
			{1: 1, 2: 0, 3: 2},
		} {
			res := e.Score(answers)
			assert.False(res.Passed)
			assert.Less(res.Score, 100.0)
		}
	})

	t.Run("scoring is idempotent", func(t *testing.T) {
		answers := map[int]int{1: 1, 2: 0, 3: 2}
		first := e.Score(answers)
		assert.Equal(first, e.Score(answers))
	})

	t.Run("completeness requires an entry per question", func(t *testing.T) {
		assert.False(e.Complete(map[int]int{}))
		assert.False(e.Complete(map[int]int{1: 1, 2: 2}))
		assert.True(e.Complete(map[int]int{1: 1, 2: 2, 3: 2}))
	})
}
