// Package quiz scores a completed answer set against the question bank.
package quiz

import "github.com/spec-kit/fit-training-service/internal/domain"

// PassScore is the only score that passes; partial credit never does.
const PassScore = 100.0

// Evaluator scores answer sets against a fixed question bank.
type Evaluator struct {
	bank []domain.Question
}

// NewEvaluator builds an evaluator over the given bank.
func NewEvaluator(bank []domain.Question) *Evaluator {
	return &Evaluator{bank: bank}
}

// Result is the outcome of scoring one submission.
type Result struct {
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}

// Complete reports whether answers contains an entry for every question in
// the bank. Submission must stay disabled until it does.
func (e *Evaluator) Complete(answers map[int]int) bool {
	for _, q := range e.bank {
		if _, ok := answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Score evaluates the answer set. Scoring is a pure function of the answers:
// re-scoring an unchanged set yields the same percentage.
func (e *Evaluator) Score(answers map[int]int) Result {
	if len(e.bank) == 0 {
		return Result{}
	}
	correct := 0
	for _, q := range e.bank {
		if idx, ok := answers[q.ID]; ok && idx == q.CorrectIndex {
			correct++
		}
	}
	score := float64(correct) / float64(len(e.bank)) * 100
	return Result{Score: score, Passed: score == PassScore}
}

// QuestionCount returns the bank size.
func (e *Evaluator) QuestionCount() int {
	return len(e.bank)
}

// Questions returns a copy of the bank.
func (e *Evaluator) Questions() []domain.Question {
	out := make([]domain.Question, len(e.bank))
	copy(out, e.bank)
	return out
}
