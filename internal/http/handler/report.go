package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/adapter"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
	"resumeapi/internal/wire"
)

type reportHandlers struct {
	scoring     service.ScoringService
	assessments service.AssessmentService
	analytics   service.AnalyticsService
	privacy     service.PrivacyService
}

// analyzeATS scores the resume against a job description.
//
// @Summary Run an ATS analysis
// @Tags scoring
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/v1/ats/analyze [post]
func (h reportHandlers) analyzeATS(c *fiber.Ctx) error {
	var req model.AnalyzeRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	rep, err := h.scoring.AnalyzeATS(c.UserContext(), owner(c), req)
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.ATSReportToWire(*rep)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, out)
}

func (h reportHandlers) atsReports(c *fiber.Ctx) error {
	reps, err := h.scoring.ATSReports(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.ATSReportsToWire(reps)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

func (h reportHandlers) score(c *fiber.Ctx) error {
	rep, err := h.scoring.ScoreResume(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.ScoreReportToWire(*rep)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, out)
}

func (h reportHandlers) scoreReports(c *fiber.Ctx) error {
	reps, err := h.scoring.ScoreReports(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.ScoreReportsToWire(reps)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

func (h reportHandlers) categories(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, h.assessments.Categories())
}

func (h reportHandlers) questions(c *fiber.Ctx) error {
	qs, err := h.assessments.Questions(c.Params("category"))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, qs)
}

func (h reportHandlers) submit(c *fiber.Ctx) error {
	var req model.SubmitAnswersRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	res, err := h.assessments.Submit(c.UserContext(), owner(c), c.Params("category"), req)
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.AssessmentResultToWire(*res)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, out)
}

func (h reportHandlers) results(c *fiber.Ctx) error {
	res, err := h.assessments.Results(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.AssessmentResultsToWire(res)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

func (h reportHandlers) dashboard(c *fiber.Ctx) error {
	d, err := h.analytics.Dashboard(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, d)
}

func (h reportHandlers) getPrivacy(c *fiber.Ctx) error {
	p, err := h.privacy.Get(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, adapter.PrivacyToWire(*p))
}

func (h reportHandlers) updatePrivacy(c *fiber.Ctx) error {
	var in wire.PrivacySettings
	if err := decode(c, &in); err != nil {
		return invalidBody(c)
	}
	p, err := h.privacy.Update(c.UserContext(), owner(c), adapter.PrivacyFromWire(in))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, adapter.PrivacyToWire(*p))
}
