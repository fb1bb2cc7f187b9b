package ai

import (
	"fmt"
	"strings"

	"resumeapi/internal/model"
)

// ExperiencePrompt asks for a short description of a position.
func ExperiencePrompt(req model.GenerateDescriptionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a 2-3 sentence resume description for the position %q at %q.\n", req.Position, req.Company)
	b.WriteString("Use active voice, start with a strong verb and avoid first person.\n")
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, "Naturally include these keywords: %s.\n", strings.Join(req.Keywords, ", "))
	}
	if s := strings.TrimSpace(req.Existing); s != "" {
		fmt.Fprintf(&b, "Improve this draft instead of starting over:\n%s\n", s)
	}
	return b.String()
}

// CoverLetterPrompt asks for a full letter body from the builder inputs and
// the applicant's resume.
func CoverLetterPrompt(in model.CoverLetterBuilder, r model.Resume) string {
	var b strings.Builder
	tone := in.Tone
	if tone == "" {
		tone = model.ToneProfessional
	}
	fmt.Fprintf(&b, "Write a %s cover letter for the %s position at %s.\n", tone, in.Position, in.CompanyName)
	if in.HiringManager != "" {
		fmt.Fprintf(&b, "Address it to %s.\n", in.HiringManager)
	}
	if p := r.PersonalInfo; p != nil {
		fmt.Fprintf(&b, "Applicant: %s", p.FullName)
		if p.Title != "" {
			fmt.Fprintf(&b, ", %s", p.Title)
		}
		b.WriteString(".\n")
		if p.Summary != "" {
			fmt.Fprintf(&b, "Applicant summary: %s\n", p.Summary)
		}
	}
	if len(r.Experiences) > 0 {
		e := r.Experiences[0]
		fmt.Fprintf(&b, "Most recent role: %s at %s.\n", e.Position, e.Company)
	}
	if names := skillNames(r.Skills, 8); len(names) > 0 {
		fmt.Fprintf(&b, "Key skills: %s.\n", strings.Join(names, ", "))
	}
	if len(in.Highlights) > 0 {
		fmt.Fprintf(&b, "Highlight: %s.\n", strings.Join(in.Highlights, "; "))
	}
	if jd := strings.TrimSpace(in.JobDescription); jd != "" {
		fmt.Fprintf(&b, "Job description:\n%s\n", jd)
	}
	b.WriteString("Keep it under 350 words, three to four paragraphs, ending with a sign-off.\n")
	return b.String()
}

func skillNames(skills []model.Skill, limit int) []string {
	out := make([]string, 0, min(len(skills), limit))
	for _, s := range skills {
		if len(out) == limit {
			break
		}
		out = append(out, s.Name)
	}
	return out
}
