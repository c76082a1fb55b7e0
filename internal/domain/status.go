package domain

// TraineeStatus enumerates lifecycle states for a trainee. The order below is
// total: a record only ever advances forward through it, never back.
type TraineeStatus string

const (
	StatusRegistered   TraineeStatus = "REGISTERED"
	StatusVideoWatched TraineeStatus = "VIDEO_WATCHED"
	StatusQuizPassed   TraineeStatus = "QUIZ_PASSED"
	StatusFitTested    TraineeStatus = "FIT_TESTED"
)

var statusRank = map[TraineeStatus]int{
	StatusRegistered:   0,
	StatusVideoWatched: 1,
	StatusQuizPassed:   2,
	StatusFitTested:    3,
}

// Rank returns the position of the status in the progression order, or -1 for
// an unknown value.
func (s TraineeStatus) Rank() int {
	if r, ok := statusRank[s]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether s has reached or passed other in the progression
// order. Unknown statuses never satisfy AtLeast.
func (s TraineeStatus) AtLeast(other TraineeStatus) bool {
	sr, or := s.Rank(), other.Rank()
	return sr >= 0 && or >= 0 && sr >= or
}

// IsValidStatus reports whether the value is a known status.
func IsValidStatus(value string) bool {
	_, ok := statusRank[TraineeStatus(value)]
	return ok
}
