package dto

// VideoStartRequest opens a viewing session.
type VideoStartRequest struct {
	DurationSeconds float64 `json:"duration_seconds"`
}

// VideoProgressRequest reports one playback callback.
type VideoProgressRequest struct {
	PositionSeconds float64 `json:"position_seconds"`
}

// VideoProgressResponse carries the position the player must hold.
type VideoProgressResponse struct {
	AllowedPositionSeconds float64 `json:"allowed_position_seconds"`
}

// QuizQuestionResponse is a question without its correct index.
type QuizQuestionResponse struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// QuizAnswer pairs a question with the selected option index.
type QuizAnswer struct {
	QuestionID    int `json:"question_id"`
	SelectedIndex int `json:"selected_index"`
}

// QuizSubmitRequest carries one complete answer set.
type QuizSubmitRequest struct {
	Answers []QuizAnswer `json:"answers"`
}

// AnswerMap flattens the submission for scoring.
func (r QuizSubmitRequest) AnswerMap() map[int]int {
	out := make(map[int]int, len(r.Answers))
	for _, a := range r.Answers {
		out[a.QuestionID] = a.SelectedIndex
	}
	return out
}

// QuizResultResponse reports a scored attempt.
type QuizResultResponse struct {
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}
