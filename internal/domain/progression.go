package domain

// ProgressionEvent identifies the trigger for a status transition.
type ProgressionEvent string

const (
	EventVideoCompleted  ProgressionEvent = "video_completed"
	EventQuizPassed      ProgressionEvent = "quiz_passed"
	EventFitTestRecorded ProgressionEvent = "fit_test_recorded"
)

// transitions maps each event to the single status it is valid from. An event
// fired from any other status is a no-op.
var transitions = map[ProgressionEvent]struct {
	from TraineeStatus
	to   TraineeStatus
}{
	EventVideoCompleted:  {from: StatusRegistered, to: StatusVideoWatched},
	EventQuizPassed:      {from: StatusVideoWatched, to: StatusQuizPassed},
	EventFitTestRecorded: {from: StatusQuizPassed, to: StatusFitTested},
}

// Advance applies event to current. The second return value reports whether
// the transition fired; when false the returned status equals current, so the
// call is always safe to apply.
func Advance(current TraineeStatus, event ProgressionEvent) (TraineeStatus, bool) {
	t, ok := transitions[event]
	if !ok || t.from != current {
		return current, false
	}
	return t.to, true
}

// StageState describes whether a training stage is reachable and finished.
type StageState struct {
	Unlocked  bool `json:"unlocked"`
	Completed bool `json:"completed"`
}

// StageStates captures the derived stage table for one trainee.
type StageStates struct {
	Video     StageState `json:"video"`
	Quiz      StageState `json:"quiz"`
	FitTicket StageState `json:"fit_ticket"`
}

// DeriveStages computes the stage-unlock table from the current status. The
// result is never stored; callers recompute it on demand.
func DeriveStages(status TraineeStatus) StageStates {
	return StageStates{
		Video: StageState{
			Unlocked:  true,
			Completed: status.AtLeast(StatusVideoWatched),
		},
		Quiz: StageState{
			Unlocked:  status.AtLeast(StatusVideoWatched),
			Completed: status.AtLeast(StatusQuizPassed),
		},
		FitTicket: StageState{
			Unlocked:  status.AtLeast(StatusQuizPassed),
			Completed: status == StatusFitTested,
		},
	}
}
