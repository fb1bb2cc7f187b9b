package service

import (
	"context"
	"fmt"
	"time"

	"resumeapi/internal/ai"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// CoverLetterService manages cover letters and writes their content from
// the builder inputs.
type CoverLetterService interface {
	SectionService[model.CoverLetter]
	Generate(ctx context.Context, owner string, in model.CoverLetterBuilder) (*model.GeneratedText, error)
}

// ResumeReader loads an owner's full resume.
type ResumeReader interface {
	Get(ctx context.Context, owner string) (*model.Resume, error)
}

type coverLetterService struct {
	*sectionService[model.CoverLetter]
	writer  *ai.Writer
	resumes ResumeReader
}

func NewCoverLetterService(repo repository.CoverLetterRepository, writer *ai.Writer, resumes ResumeReader) CoverLetterService {
	return &coverLetterService{
		sectionService: newSectionService(repo, ids[model.CoverLetter]{
			get: func(c *model.CoverLetter) (string, string) { return c.ID, c.ClientID },
			set: func(c *model.CoverLetter, id, cid string) { c.ID, c.ClientID = id, cid },
			prepare: func(c *model.CoverLetter) {
				if c.Tone == "" {
					c.Tone = model.ToneProfessional
				}
				if c.Title == "" {
					c.Title = c.Position + " at " + c.CompanyName
				}
				if c.Highlights == nil {
					c.Highlights = []string{}
				}
				c.UpdatedAt = time.Now().UTC()
			},
		}),
		writer:  writer,
		resumes: resumes,
	}
}

func (s *coverLetterService) Generate(ctx context.Context, owner string, in model.CoverLetterBuilder) (*model.GeneratedText, error) {
	if err := model.Validate(&in); err != nil {
		return nil, invalid(err)
	}
	if in.Tone == "" {
		in.Tone = model.ToneProfessional
	}

	r, err := s.resumes.Get(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("load resume: %w", err)
	}
	text, err := s.writer.CoverLetter(ctx, in, *r)
	if err != nil {
		return nil, fmt.Errorf("generate cover letter: %w", err)
	}
	return &model.GeneratedText{Text: text}, nil
}
