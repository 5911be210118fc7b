package entity

// ValidationResult is the issue-list verdict on a generated response.
// IsValid is true iff Issues is empty. Suggestions are index-correlated
// with the check that raised them; hallucination findings append issues
// without a paired suggestion.
type ValidationResult struct {
	IsValid           bool     `json:"is_valid"`
	Issues            []string `json:"issues"`
	Suggestions       []string `json:"suggestions"`
	AuthenticityScore float64  `json:"authenticity_score"`
}

// ComponentScores are the four independent 0-100 quality sub-scores.
type ComponentScores struct {
	Content    int `json:"content"`
	Structure  int `json:"structure"`
	Impact     int `json:"impact"`
	Engagement int `json:"engagement"`
}

// ResponseAnalysis is the weighted-score view of response quality. It is
// deliberately independent of ValidationResult: the two can disagree and
// downstream callers rely on each signal separately.
type ResponseAnalysis struct {
	OverallScore           float64         `json:"overall_score"`
	ComponentScores        ComponentScores `json:"component_scores"`
	SatisfactionPrediction float64         `json:"satisfaction_prediction"`
	Recommendations        []string        `json:"recommendations"`
}
