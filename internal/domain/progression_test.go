package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	assert := assert.New(t)

	t.Run("happy path walks the full order", func(t *testing.T) {
		status := StatusRegistered

		status, ok := Advance(status, EventVideoCompleted)
		assert.True(ok)
		assert.Equal(StatusVideoWatched, status)

		status, ok = Advance(status, EventQuizPassed)
		assert.True(ok)
		assert.Equal(StatusQuizPassed, status)

		status, ok = Advance(status, EventFitTestRecorded)
		assert.True(ok)
		assert.Equal(StatusFitTested, status)
	})

	t.Run("events from the wrong status are silent no-ops", func(t *testing.T) {
		for _, tc := range []struct {
			from  TraineeStatus
			event ProgressionEvent
		}{
			{StatusRegistered, EventQuizPassed},
			{StatusRegistered, EventFitTestRecorded},
			{StatusVideoWatched, EventVideoCompleted},
			{StatusVideoWatched, EventFitTestRecorded},
			{StatusQuizPassed, EventVideoCompleted},
			{StatusQuizPassed, EventQuizPassed},
			{StatusFitTested, EventVideoCompleted},
			{StatusFitTested, EventQuizPassed},
			{StatusFitTested, EventFitTestRecorded},
		} {
			got, ok := Advance(tc.from, tc.event)
			assert.False(ok, "%s + %s should not fire", tc.from, tc.event)
			assert.Equal(tc.from, got)
		}
	})

	t.Run("transitions never regress", func(t *testing.T) {
		for from := range statusRank {
			for _, event := range []ProgressionEvent{EventVideoCompleted, EventQuizPassed, EventFitTestRecorded} {
				got, _ := Advance(from, event)
				assert.GreaterOrEqual(got.Rank(), from.Rank())
			}
		}
	})
}

func TestDeriveStages(t *testing.T) {
	cases := []struct {
		status TraineeStatus
		want   StageStates
	}{
		{StatusRegistered, StageStates{
			Video:     StageState{Unlocked: true, Completed: false},
			Quiz:      StageState{Unlocked: false, Completed: false},
			FitTicket: StageState{Unlocked: false, Completed: false},
		}},
		{StatusVideoWatched, StageStates{
			Video:     StageState{Unlocked: true, Completed: true},
			Quiz:      StageState{Unlocked: true, Completed: false},
			FitTicket: StageState{Unlocked: false, Completed: false},
		}},
		{StatusQuizPassed, StageStates{
			Video:     StageState{Unlocked: true, Completed: true},
			Quiz:      StageState{Unlocked: true, Completed: true},
			FitTicket: StageState{Unlocked: true, Completed: false},
		}},
		{StatusFitTested, StageStates{
			Video:     StageState{Unlocked: true, Completed: true},
			Quiz:      StageState{Unlocked: true, Completed: true},
			FitTicket: StageState{Unlocked: true, Completed: true},
		}},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStages(tc.status))
		})
	}
}

func TestStatusOrder(t *testing.T) {
	assert := assert.New(t)

	assert.True(StatusFitTested.AtLeast(StatusRegistered))
	assert.True(StatusQuizPassed.AtLeast(StatusQuizPassed))
	assert.False(StatusRegistered.AtLeast(StatusVideoWatched))
	assert.False(TraineeStatus("BOGUS").AtLeast(StatusRegistered))
	assert.Equal(-1, TraineeStatus("BOGUS").Rank())
}
