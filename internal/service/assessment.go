package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resumeapi/internal/assessment"
	"resumeapi/internal/events"
	"resumeapi/internal/metrics"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// AssessmentService serves skill quizzes and stores graded results.
type AssessmentService interface {
	Categories() []string
	Questions(category string) ([]assessment.Question, error)
	Submit(ctx context.Context, owner, category string, req model.SubmitAnswersRequest) (*model.AssessmentResult, error)
	Results(ctx context.Context, owner string) ([]model.AssessmentResult, error)
}

type assessmentService struct {
	repo    repository.AssessmentRepository
	events  events.Publisher
	metrics *metrics.Metrics
}

func NewAssessmentService(repo repository.AssessmentRepository, pub events.Publisher, m *metrics.Metrics) AssessmentService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &assessmentService{repo: repo, events: pub, metrics: m}
}

func (s *assessmentService) Categories() []string {
	return assessment.Categories()
}

func (s *assessmentService) Questions(category string) ([]assessment.Question, error) {
	qs, err := assessment.Questions(category)
	if errors.Is(err, assessment.ErrUnknownCategory) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return qs, err
}

func (s *assessmentService) Submit(ctx context.Context, owner, category string, req model.SubmitAnswersRequest) (*model.AssessmentResult, error) {
	if err := model.Validate(&req); err != nil {
		return nil, invalid(err)
	}
	result, err := assessment.Grade(category, req.Answers)
	if errors.Is(err, assessment.ErrUnknownCategory) {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, owner, &result)
	if err != nil {
		return nil, fmt.Errorf("save assessment result: %w", err)
	}

	s.metrics.AssessmentSubmitted(category)
	s.events.Publish(ctx, events.Event{
		Type:       events.AssessmentSubmitted,
		Owner:      owner,
		OccurredAt: time.Now().UTC(),
		Data:       map[string]any{"category": category, "score": stored.Score},
	})
	return stored, nil
}

func (s *assessmentService) Results(ctx context.Context, owner string) ([]model.AssessmentResult, error) {
	return s.repo.List(ctx, owner)
}
