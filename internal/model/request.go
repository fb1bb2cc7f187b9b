package model

// GenerateDescriptionRequest asks the AI generator for an experience description.
type GenerateDescriptionRequest struct {
	Position string   `json:"position" validate:"required"`
	Company  string   `json:"company" validate:"required"`
	Keywords []string `json:"keywords"`
	Existing string   `json:"existing"`
}

// GeneratedText wraps generated content returned to the editor.
type GeneratedText struct {
	Text string `json:"text"`
}

// AnalyzeRequest carries the job description an ATS analysis runs against.
type AnalyzeRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,min=20"`
}

// SubmitAnswersRequest maps question ids to the selected option index.
type SubmitAnswersRequest struct {
	Answers map[string]int `json:"answers" validate:"required"`
}

// PathAvailability is the answer to a link path check.
type PathAvailability struct {
	Path      string `json:"path"`
	Valid     bool   `json:"valid"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
