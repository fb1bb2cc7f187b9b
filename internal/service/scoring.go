package service

import (
	"context"
	"fmt"
	"time"

	"resumeapi/internal/events"
	"resumeapi/internal/metrics"
	"resumeapi/internal/model"
	"resumeapi/internal/repository"
	"resumeapi/internal/scoring"
)

// ScoringService runs the ATS and resume quality rubrics and keeps their history.
type ScoringService interface {
	AnalyzeATS(ctx context.Context, owner string, req model.AnalyzeRequest) (*model.ATSReport, error)
	ScoreResume(ctx context.Context, owner string) (*model.ScoreReport, error)
	ATSReports(ctx context.Context, owner string) ([]model.ATSReport, error)
	ScoreReports(ctx context.Context, owner string) ([]model.ScoreReport, error)
}

type scoringService struct {
	resumes ResumeReader
	ats     repository.ATSReportRepository
	scores  repository.ScoreReportRepository
	events  events.Publisher
	metrics *metrics.Metrics
}

func NewScoringService(resumes ResumeReader, ats repository.ATSReportRepository, scores repository.ScoreReportRepository, pub events.Publisher, m *metrics.Metrics) ScoringService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &scoringService{resumes: resumes, ats: ats, scores: scores, events: pub, metrics: m}
}

func (s *scoringService) AnalyzeATS(ctx context.Context, owner string, req model.AnalyzeRequest) (*model.ATSReport, error) {
	if err := model.Validate(&req); err != nil {
		return nil, invalid(err)
	}
	r, err := s.resumes.Get(ctx, owner)
	if err != nil {
		return nil, err
	}

	report := scoring.AnalyzeATS(*r, req.JobDescription)
	stored, err := s.ats.Create(ctx, owner, &report)
	if err != nil {
		return nil, fmt.Errorf("save ats report: %w", err)
	}

	s.metrics.ATSAnalyzed()
	s.events.Publish(ctx, events.Event{
		Type:       events.ATSAnalyzed,
		Owner:      owner,
		OccurredAt: time.Now().UTC(),
		Data:       map[string]any{"total": stored.Total, "label": stored.Label},
	})
	return stored, nil
}

func (s *scoringService) ScoreResume(ctx context.Context, owner string) (*model.ScoreReport, error) {
	r, err := s.resumes.Get(ctx, owner)
	if err != nil {
		return nil, err
	}

	report := scoring.ScoreResume(*r)
	stored, err := s.scores.Create(ctx, owner, &report)
	if err != nil {
		return nil, fmt.Errorf("save score report: %w", err)
	}

	s.events.Publish(ctx, events.Event{
		Type:       events.ResumeScored,
		Owner:      owner,
		OccurredAt: time.Now().UTC(),
		Data:       map[string]any{"total": stored.Total, "label": stored.Label},
	})
	return stored, nil
}

func (s *scoringService) ATSReports(ctx context.Context, owner string) ([]model.ATSReport, error) {
	return s.ats.List(ctx, owner)
}

func (s *scoringService) ScoreReports(ctx context.Context, owner string) ([]model.ScoreReport, error) {
	return s.scores.List(ctx, owner)
}
