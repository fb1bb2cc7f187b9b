package ai

import (
	"context"
	"fmt"
	"strings"

	"resumeapi/internal/model"
)

// Writer produces resume copy. With a nil Generator it falls back to the
// built-in templates, which are deterministic.
type Writer struct {
	gen Generator
}

func NewWriter(gen Generator) *Writer {
	return &Writer{gen: gen}
}

// Hosted reports whether a model backs the writer.
func (w *Writer) Hosted() bool { return w.gen != nil }

func (w *Writer) ExperienceDescription(ctx context.Context, req model.GenerateDescriptionRequest) (string, error) {
	if w.gen == nil {
		return StaticDescription(req), nil
	}
	return w.gen.Generate(ctx, ExperiencePrompt(req))
}

func (w *Writer) CoverLetter(ctx context.Context, in model.CoverLetterBuilder, r model.Resume) (string, error) {
	if w.gen == nil {
		return StaticCoverLetter(in, r), nil
	}
	return w.gen.Generate(ctx, CoverLetterPrompt(in, r))
}

// StaticDescription builds a description without a model.
func StaticDescription(req model.GenerateDescriptionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Served as %s at %s", req.Position, req.Company)
	if len(req.Keywords) > 0 {
		fmt.Fprintf(&b, ", working with %s", joinList(req.Keywords))
	}
	b.WriteString(".")
	if s := strings.TrimSpace(req.Existing); s != "" {
		b.WriteString(" ")
		b.WriteString(sentence(s))
	}
	return b.String()
}

var openings = map[string]string{
	model.ToneProfessional: "I am writing to apply for the %s position at %s.",
	model.ToneEnthusiastic: "I was thrilled to see the %s opening at %s and would love to join your team!",
	model.ToneConcise:      "Please consider me for the %s role at %s.",
}

var closings = map[string]string{
	model.ToneProfessional: "Thank you for your time and consideration. I look forward to discussing how I can contribute.",
	model.ToneEnthusiastic: "I would be delighted to talk about how I can help. Thank you so much for considering my application!",
	model.ToneConcise:      "Thank you for your consideration.",
}

// StaticCoverLetter fills the tone template with builder inputs and resume facts.
func StaticCoverLetter(in model.CoverLetterBuilder, r model.Resume) string {
	tone := in.Tone
	if _, ok := openings[tone]; !ok {
		tone = model.ToneProfessional
	}

	manager := in.HiringManager
	if manager == "" {
		manager = "Hiring Manager"
	}

	paragraphs := []string{
		"Dear " + manager + ",",
		fmt.Sprintf(openings[tone], in.Position, in.CompanyName),
	}

	var body []string
	if len(r.Experiences) > 0 {
		e := r.Experiences[0]
		body = append(body, fmt.Sprintf("In my role as %s at %s, I have built the experience this position calls for.", e.Position, e.Company))
	}
	if names := skillNames(r.Skills, 5); len(names) > 0 {
		body = append(body, fmt.Sprintf("My skills include %s.", joinList(names)))
	}
	for _, h := range in.Highlights {
		if h = strings.TrimSpace(h); h != "" {
			body = append(body, sentence(h))
		}
	}
	if len(body) > 0 {
		paragraphs = append(paragraphs, strings.Join(body, " "))
	}

	paragraphs = append(paragraphs, closings[tone])

	signature := "Sincerely,"
	if r.PersonalInfo != nil && r.PersonalInfo.FullName != "" {
		signature += "\n" + r.PersonalInfo.FullName
	}
	paragraphs = append(paragraphs, signature)

	return strings.Join(paragraphs, "\n\n")
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}

func sentence(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return s
	}
	return s + "."
}
