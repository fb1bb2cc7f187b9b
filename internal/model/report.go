package model

import "time"

// Score labels shared by ATS and resume score reports.
const (
	LabelExcellent = "Excellent"
	LabelGood      = "Good"
	LabelFair      = "Fair"
	LabelNeedsWork = "Needs Work"
)

// CategoryScore is one rubric line of a report.
type CategoryScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Max   int    `json:"max"`
}

// ATSReport is the outcome of matching a resume against a job description.
type ATSReport struct {
	ID              string          `json:"id,omitempty"`
	Total           int             `json:"total"`
	Label           string          `json:"label"`
	Categories      []CategoryScore `json:"categories"`
	MatchedKeywords []string        `json:"matchedKeywords"`
	MissingKeywords []string        `json:"missingKeywords"`
	Suggestions     []string        `json:"suggestions"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ScoreReport is the outcome of the resume quality rubric.
type ScoreReport struct {
	ID          string          `json:"id,omitempty"`
	Total       int             `json:"total"`
	Label       string          `json:"label"`
	Categories  []CategoryScore `json:"categories"`
	Suggestions []string        `json:"suggestions"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// AssessmentResult is a graded skills quiz.
type AssessmentResult struct {
	ID        string    `json:"id,omitempty"`
	Category  string    `json:"category"`
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	Score     int       `json:"score"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
}

// Dashboard aggregates an owner's analytics.
type Dashboard struct {
	LinkCount         int                `json:"linkCount"`
	TotalViews        int64              `json:"totalViews"`
	Links             []LinkViews        `json:"links"`
	LatestATS         *ATSReport         `json:"latestAts,omitempty"`
	AverageATS        float64            `json:"averageAts"`
	LatestScore       *ScoreReport       `json:"latestScore,omitempty"`
	Assessments       []AssessmentResult `json:"assessments"`
	AverageAssessment float64            `json:"averageAssessment"`
}

// LinkViews is the per-link view counter shown on the dashboard.
type LinkViews struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Consistent reports whether every category is within [0, max] and the
// categories sum to total.
func Consistent(total int, categories []CategoryScore) bool {
	sum := 0
	for _, c := range categories {
		if c.Score < 0 || c.Score > c.Max {
			return false
		}
		sum += c.Score
	}
	return sum == total
}

func (r *ATSReport) Consistent() bool { return Consistent(r.Total, r.Categories) }

func (r *ScoreReport) Consistent() bool { return Consistent(r.Total, r.Categories) }
