// Package scoring implements the ATS match and resume quality rubrics.
// Every report satisfies Total == sum of category scores, each category
// within [0, Max].
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"resumeapi/internal/model"
)

// Category maxima.
const (
	ATSKeywordsMax   = 40
	ATSSectionsMax   = 20
	ATSFormattingMax = 20
	ATSContactMax    = 10
	ATSLengthMax     = 10

	ScoreCompletenessMax = 30
	ScoreExperienceMax   = 25
	ScoreSkillsMax       = 15
	ScoreEducationMax    = 10
	ScoreImpactMax       = 20
)

// Label maps a 0..100 total to its band.
func Label(total int) string {
	switch {
	case total >= 85:
		return model.LabelExcellent
	case total >= 70:
		return model.LabelGood
	case total >= 50:
		return model.LabelFair
	default:
		return model.LabelNeedsWork
	}
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

func ratio(n, d, max int) int {
	if d <= 0 {
		return 0
	}
	return clamp(int(math.Round(float64(n)/float64(d)*float64(max))), max)
}

func sum(cats []model.CategoryScore) int {
	total := 0
	for _, c := range cats {
		total += c.Score
	}
	return total
}

func weak(c model.CategoryScore) bool {
	return c.Score*10 < c.Max*7
}

// resumeText concatenates every piece of text a reader would see.
func resumeText(r model.Resume) string {
	var b strings.Builder
	add := func(parts ...string) {
		for _, p := range parts {
			if p != "" {
				b.WriteString(p)
				b.WriteByte('\n')
			}
		}
	}
	if p := r.PersonalInfo; p != nil {
		add(p.FullName, p.Title, p.Summary, p.Location)
	}
	for _, e := range r.Experiences {
		add(e.Position, e.Company, e.Location, e.Description)
		add(e.Achievements...)
	}
	for _, e := range r.Education {
		add(e.Degree, e.Field, e.Institution, e.Description)
	}
	for _, s := range r.Skills {
		add(s.Name, s.Category)
	}
	for _, c := range r.Certifications {
		add(c.Name, c.Issuer)
	}
	for _, s := range r.CustomSections {
		add(s.Title)
		for _, it := range s.Items {
			add(it.Title, it.Subtitle, it.Description)
		}
	}
	return b.String()
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}(-\d{2})?$`)

// quantified reports whether an achievement carries a number or percentage.
func quantified(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0 || strings.Contains(s, "%")
}

func hasContactLink(r model.Resume) bool {
	return (r.PersonalInfo != nil && r.PersonalInfo.Website != "") || len(r.SocialLinks) > 0
}

// AnalyzeATS scores how well a resume matches a job description.
func AnalyzeATS(r model.Resume, jobDescription string) model.ATSReport {
	keywords := Keywords(jobDescription, MaxKeywords)
	words := map[string]struct{}{}
	for _, tok := range Tokenize(resumeText(r)) {
		words[tok] = struct{}{}
	}

	matched := make([]string, 0, len(keywords))
	missing := make([]string, 0)
	for _, k := range keywords {
		if _, ok := words[k]; ok {
			matched = append(matched, k)
		} else {
			missing = append(missing, k)
		}
	}

	cats := []model.CategoryScore{
		{Name: "keywords", Score: ratio(len(matched), len(keywords), ATSKeywordsMax), Max: ATSKeywordsMax},
		{Name: "sections", Score: atsSections(r), Max: ATSSectionsMax},
		{Name: "formatting", Score: atsFormatting(r), Max: ATSFormattingMax},
		{Name: "contact", Score: atsContact(r), Max: ATSContactMax},
		{Name: "length", Score: atsLength(len(Tokenize(resumeText(r)))), Max: ATSLengthMax},
	}

	var suggestions []string
	for _, c := range cats {
		if !weak(c) {
			continue
		}
		switch c.Name {
		case "keywords":
			top := missing
			if len(top) > 5 {
				top = top[:5]
			}
			if len(top) > 0 {
				suggestions = append(suggestions, "Work these job keywords into your resume: "+strings.Join(top, ", "))
			} else {
				suggestions = append(suggestions, "Paste a longer job description to extract keywords")
			}
		case "sections":
			suggestions = append(suggestions, "Add a summary, work experience, education and skills so parsers find every standard section")
		case "formatting":
			suggestions = append(suggestions, "Use YYYY-MM dates and list achievements as short bullet points")
		case "contact":
			suggestions = append(suggestions, "Include email, phone, location and a profile link")
		case "length":
			suggestions = append(suggestions, "Aim for roughly 300 to 900 words of content")
		}
	}

	total := sum(cats)
	return model.ATSReport{
		Total:           total,
		Label:           Label(total),
		Categories:      cats,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Suggestions:     nonNil(suggestions),
	}
}

func atsSections(r model.Resume) int {
	score := 0
	if r.PersonalInfo != nil && r.PersonalInfo.Summary != "" {
		score += 4
	}
	if len(r.Experiences) > 0 {
		score += 6
	}
	if len(r.Education) > 0 {
		score += 4
	}
	if len(r.Skills) > 0 {
		score += 6
	}
	return score
}

func atsFormatting(r model.Resume) int {
	if len(r.Experiences) == 0 && len(r.Education) == 0 {
		return 0
	}

	score := 0
	dates, valid, withDay := 0, 0, 0
	check := func(d string) {
		if d == "" {
			return
		}
		dates++
		if dateRe.MatchString(d) {
			valid++
			if len(d) == len("2006-01-02") {
				withDay++
			}
		}
	}
	for _, e := range r.Experiences {
		check(e.StartDate)
		check(e.EndDate)
	}
	for _, e := range r.Education {
		check(e.StartDate)
		check(e.EndDate)
	}
	if dates > 0 && valid == dates {
		score += 5
	}
	if dates > 0 && (withDay == 0 || withDay == valid) {
		score += 5
	}

	bullets, longDesc := false, false
	for _, e := range r.Experiences {
		if len(e.Achievements) > 0 {
			bullets = true
		}
		if len(e.Description) > 1200 {
			longDesc = true
		}
	}
	if bullets {
		score += 5
	}
	if !longDesc {
		score += 5
	}
	return score
}

func atsContact(r model.Resume) int {
	score := 0
	if p := r.PersonalInfo; p != nil {
		if p.Email != "" {
			score += 4
		}
		if p.Phone != "" {
			score += 2
		}
		if p.Location != "" {
			score += 2
		}
	}
	if hasContactLink(r) {
		score += 2
	}
	return score
}

func atsLength(words int) int {
	switch {
	case words >= 300 && words <= 900:
		return 10
	case words >= 150 && words <= 1200:
		return 6
	case words > 0:
		return 3
	default:
		return 0
	}
}

// ScoreResume grades resume quality independent of any job.
func ScoreResume(r model.Resume) model.ScoreReport {
	cats := []model.CategoryScore{
		{Name: "completeness", Score: completeness(r), Max: ScoreCompletenessMax},
		{Name: "experience", Score: experience(r), Max: ScoreExperienceMax},
		{Name: "skills", Score: skills(len(r.Skills)), Max: ScoreSkillsMax},
		{Name: "education", Score: education(r), Max: ScoreEducationMax},
		{Name: "impact", Score: impact(r), Max: ScoreImpactMax},
	}

	var suggestions []string
	for _, c := range cats {
		if !weak(c) {
			continue
		}
		switch c.Name {
		case "completeness":
			suggestions = append(suggestions, "Fill in your summary, contact details and at least one entry per section")
		case "experience":
			suggestions = append(suggestions, "Describe each position; recruiters skim the first three")
		case "skills":
			suggestions = append(suggestions, fmt.Sprintf("List at least 8 skills (you have %d)", len(r.Skills)))
		case "education":
			suggestions = append(suggestions, "Add your degree, field of study and dates")
		case "impact":
			suggestions = append(suggestions, "Quantify achievements with numbers, e.g. \"reduced costs by 20%\"")
		}
	}

	total := sum(cats)
	return model.ScoreReport{
		Total:       total,
		Label:       Label(total),
		Categories:  cats,
		Suggestions: nonNil(suggestions),
	}
}

func completeness(r model.Resume) int {
	score := 0
	if p := r.PersonalInfo; p != nil {
		if p.FullName != "" && p.Email != "" {
			score += 6
		}
		if p.Summary != "" {
			score += 6
		}
		if p.Phone != "" {
			score += 2
		}
	}
	if len(r.Experiences) > 0 {
		score += 6
	}
	if len(r.Education) > 0 {
		score += 4
	}
	if len(r.Skills) > 0 {
		score += 4
	}
	if hasContactLink(r) {
		score += 2
	}
	return score
}

func experience(r model.Resume) int {
	n := len(r.Experiences)
	if n == 0 {
		return 0
	}
	described := 0
	for _, e := range r.Experiences {
		if e.Description != "" || len(e.Achievements) > 0 {
			described++
		}
	}
	return clamp(min(n, 3)*5+ratio(described, n, 10), ScoreExperienceMax)
}

func skills(n int) int {
	switch {
	case n >= 8:
		return 15
	case n >= 5:
		return 11
	case n >= 3:
		return 7
	case n >= 1:
		return 3
	default:
		return 0
	}
}

func education(r model.Resume) int {
	if len(r.Education) == 0 {
		return 0
	}
	score := 6
	for _, e := range r.Education {
		if e.Field != "" {
			score += 2
			break
		}
	}
	for _, e := range r.Education {
		if e.StartDate != "" || e.EndDate != "" {
			score += 2
			break
		}
	}
	return score
}

func impact(r model.Resume) int {
	count := 0
	for _, e := range r.Experiences {
		for _, a := range e.Achievements {
			if quantified(a) {
				count++
			}
		}
	}
	return clamp(count*4, ScoreImpactMax)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
