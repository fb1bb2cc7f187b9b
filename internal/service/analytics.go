package service

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"resumeapi/internal/model"
	"resumeapi/internal/repository"
)

// AnalyticsService builds the owner dashboard.
type AnalyticsService interface {
	Dashboard(ctx context.Context, owner string) (*model.Dashboard, error)
}

type analyticsService struct {
	links       repository.LinkRepository
	ats         repository.ATSReportRepository
	scores      repository.ScoreReportRepository
	assessments repository.AssessmentRepository
}

func NewAnalyticsService(links repository.LinkRepository, ats repository.ATSReportRepository, scores repository.ScoreReportRepository, assessments repository.AssessmentRepository) AnalyticsService {
	return &analyticsService{links: links, ats: ats, scores: scores, assessments: assessments}
}

func (s *analyticsService) Dashboard(ctx context.Context, owner string) (*model.Dashboard, error) {
	var (
		links       []model.ResumeLink
		atsReports  []model.ATSReport
		scores      []model.ScoreReport
		assessments []model.AssessmentResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		links, err = s.links.List(gctx, owner)
		return wrapErr("links", err)
	})
	g.Go(func() (err error) {
		atsReports, err = s.ats.List(gctx, owner)
		return wrapErr("ats reports", err)
	})
	g.Go(func() (err error) {
		scores, err = s.scores.List(gctx, owner)
		return wrapErr("score reports", err)
	})
	g.Go(func() (err error) {
		assessments, err = s.assessments.List(gctx, owner)
		return wrapErr("assessments", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &model.Dashboard{
		LinkCount:   len(links),
		Links:       make([]model.LinkViews, 0, len(links)),
		Assessments: assessments,
	}
	for _, l := range links {
		d.TotalViews += l.Views
		d.Links = append(d.Links, model.LinkViews{Path: l.Path, Views: l.Views})
	}

	// History lists are newest first.
	if len(atsReports) > 0 {
		d.LatestATS = &atsReports[0]
		total := 0
		for _, r := range atsReports {
			total += r.Total
		}
		d.AverageATS = average(total, len(atsReports))
	}
	if len(scores) > 0 {
		d.LatestScore = &scores[0]
	}
	if len(assessments) > 0 {
		total := 0
		for _, a := range assessments {
			total += a.Score
		}
		d.AverageAssessment = average(total, len(assessments))
	}
	if d.Assessments == nil {
		d.Assessments = []model.AssessmentResult{}
	}
	return d, nil
}

// average rounds to one decimal place.
func average(total, n int) float64 {
	return math.Round(float64(total)/float64(n)*10) / 10
}

func wrapErr(what string, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}
