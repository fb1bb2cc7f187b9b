package model

import "time"

// Cover letter tones understood by the built-in generator.
const (
	ToneProfessional = "professional"
	ToneEnthusiastic = "enthusiastic"
	ToneConcise      = "concise"
)

// CoverLetterBuilder holds the inputs the generator turns into letter content.
type CoverLetterBuilder struct {
	CompanyName    string   `json:"companyName" validate:"required"`
	Position       string   `json:"position" validate:"required"`
	HiringManager  string   `json:"hiringManager"`
	Tone           string   `json:"tone" validate:"omitempty,oneof=professional enthusiastic concise"`
	Highlights     []string `json:"highlights"`
	JobDescription string   `json:"jobDescription"`
}

// CoverLetter pairs the builder inputs with the edited letter content.
type CoverLetter struct {
	ID       string `json:"id,omitempty"`
	ClientID string `json:"clientId,omitempty"`
	Title    string `json:"title"`
	CoverLetterBuilder
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}
