package service

import (
	"context"
	"fmt"

	"resumeapi/internal/ai"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// ExperienceService manages work experience entries and drafts their
// descriptions.
type ExperienceService interface {
	SectionService[model.WorkExperience]
	GenerateDescription(ctx context.Context, req model.GenerateDescriptionRequest) (*model.GeneratedText, error)
}

type experienceService struct {
	*sectionService[model.WorkExperience]
	writer *ai.Writer
}

func NewExperienceService(repo repository.ExperienceRepository, writer *ai.Writer) ExperienceService {
	return &experienceService{
		sectionService: newSectionService(repo, ids[model.WorkExperience]{
			get: func(e *model.WorkExperience) (string, string) { return e.ID, e.ClientID },
			set: func(e *model.WorkExperience, id, cid string) { e.ID, e.ClientID = id, cid },
			prepare: func(e *model.WorkExperience) {
				if e.Current {
					e.EndDate = ""
				}
				if e.Achievements == nil {
					e.Achievements = []string{}
				}
			},
		}),
		writer: writer,
	}
}

func (s *experienceService) GenerateDescription(ctx context.Context, req model.GenerateDescriptionRequest) (*model.GeneratedText, error) {
	if err := model.Validate(&req); err != nil {
		return nil, invalid(err)
	}
	text, err := s.writer.ExperienceDescription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate description: %w", err)
	}
	return &model.GeneratedText{Text: text}, nil
}
