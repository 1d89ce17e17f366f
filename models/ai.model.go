package models

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// HintRequest allows empty code and test cases. An empty submission is
// the "getting started" case, not an invalid one.
type HintRequest struct {
	UserCode            string         `json:"user_code"`
	ExerciseDescription string         `json:"exercise_description"`
	TestCases           string         `json:"test_cases"`
	Error               *string        `json:"error"`
	DifficultyLevel     string         `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	PreviousHints       []HintResponse `json:"previous_hints"`
}

// HintResponse is the tutor output. ConfidenceScore is always kept
// inside [0.1, 1.0].
type HintResponse struct {
	Hint              string   `json:"hint"`
	Explanation       string   `json:"explanation"`
	CodeSnippet       *string  `json:"code_snippet"`
	NextSteps         []string `json:"next_steps"`
	ConfidenceScore   float64  `json:"confidence_score"`
	DetectedIssueType *string  `json:"detected_issue_type"`
}
