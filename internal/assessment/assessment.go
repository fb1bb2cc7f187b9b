// Package assessment grades fixed multiple-choice skill quizzes.
package assessment

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"resumeapi/internal/model"
)

var ErrUnknownCategory = errors.New("unknown assessment category")

// Categories lists the available quizzes in alphabetical order.
func Categories() []string {
	out := make([]string, 0, len(banks))
	for c := range banks {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Questions returns a copy of a category's questions.
func Questions(category string) ([]Question, error) {
	qs, ok := banks[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	out := make([]Question, len(qs))
	copy(out, qs)
	return out, nil
}

// Score is round(correct/total*100) with halves rounded away from zero.
func Score(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// Level maps a score to a proficiency label.
func Level(score int) string {
	switch {
	case score >= 80:
		return "Expert"
	case score >= 60:
		return "Advanced"
	case score >= 40:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// Grade scores answers keyed by question id. Unanswered and unknown
// question ids count as incorrect.
func Grade(category string, answers map[string]int) (model.AssessmentResult, error) {
	qs, ok := banks[category]
	if !ok {
		return model.AssessmentResult{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	correct := 0
	for _, q := range qs {
		if a, ok := answers[q.ID]; ok && a == q.Answer {
			correct++
		}
	}
	score := Score(correct, len(qs))
	return model.AssessmentResult{
		Category: category,
		Correct:  correct,
		Total:    len(qs),
		Score:    score,
		Label:    Level(score),
	}, nil
}
