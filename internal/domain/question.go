package domain

// Question is a quiz item: prompt, ordered options and the index of the
// correct option. Static reference data.
type Question struct {
	ID           int      `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

var questionBank = []Question{
	{
		ID:   1,
		Text: "Which of the following is the correct order for donning (putting on) PPE?",
		Options: []string{
			"Gloves, Gown, Mask, Eye Protection",
			"Gown, Mask, Eye Protection, Gloves",
			"Mask, Gown, Gloves, Eye Protection",
			"Eye Protection, Mask, Gown, Gloves",
		},
		CorrectIndex: 1,
	},
	{
		ID:   2,
		Text: "How long should you perform hand hygiene with an alcohol-based hand rub?",
		Options: []string{
			"5-10 seconds",
			"At least 60 seconds",
			"20-30 seconds",
			"Until your hands are dry, regardless of time",
		},
		CorrectIndex: 2,
	},
	{
		ID:   3,
		Text: "N95 respirators must be fit-tested at least:",
		Options: []string{
			"Once every 5 years",
			"Monthly",
			"Annually",
			"Only when hired",
		},
		CorrectIndex: 2,
	},
}

// Questions returns the full quiz bank.
func Questions() []Question {
	out := make([]Question, len(questionBank))
	copy(out, questionBank)
	return out
}
