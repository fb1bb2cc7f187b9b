package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/adapter"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
	"resumeapi/internal/wire"
)

type resumeHandlers struct {
	personal    service.PersonalInfoService
	resumes     service.ResumeService
	experiences service.ExperienceService
	letters     service.CoverLetterService
}

func (h resumeHandlers) getPersonalInfo(c *fiber.Ctx) error {
	info, err := h.personal.Get(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, adapter.PersonalInfoToWire(*info))
}

func (h resumeHandlers) savePersonalInfo(c *fiber.Ctx) error {
	var in wire.PersonalInfo
	if err := decode(c, &in); err != nil {
		return invalidBody(c)
	}
	info, err := h.personal.Save(c.UserContext(), owner(c), adapter.PersonalInfoFromWire(in))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, adapter.PersonalInfoToWire(*info))
}

// getResume returns every section of the caller's resume.
//
// @Summary Get the full resume
// @Tags resume
// @Produce json
// @Security BearerAuth
// @Router /api/v1/resume [get]
func (h resumeHandlers) getResume(c *fiber.Ctx) error {
	r, err := h.resumes.Get(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.ResumeToWire(*r)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// exportResume returns the JSON export document.
//
// @Summary Export the resume as a JSON document
// @Tags resume
// @Produce json
// @Param template query string false "template id"
// @Security BearerAuth
// @Router /api/v1/resume/export [get]
func (h resumeHandlers) exportResume(c *fiber.Ctx) error {
	doc, err := h.resumes.Export(c.UserContext(), owner(c), c.Query("template"))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, doc)
}

// importResume replaces the resume with an uploaded export document.
//
// @Summary Import a JSON export document
// @Tags resume
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/v1/resume/import [post]
func (h resumeHandlers) importResume(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return invalidBody(c)
	}
	r, err := h.resumes.Import(c.UserContext(), owner(c), c.Body())
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.ResumeToWire(*r)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

func (h resumeHandlers) renderResume(c *fiber.Ctx) error {
	html, err := h.resumes.Render(c.UserContext(), owner(c), c.Params("template"))
	if err != nil {
		return serviceError(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}

// exportPDF prints the resume and returns a presigned download URL.
//
// @Summary Export the resume as PDF
// @Tags resume
// @Produce json
// @Param template path string true "template id"
// @Security BearerAuth
// @Router /api/v1/resume/pdf/{template} [post]
func (h resumeHandlers) exportPDF(c *fiber.Ctx) error {
	out, err := h.resumes.ExportPDF(c.UserContext(), owner(c), c.Params("template"))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, out)
}

func (h resumeHandlers) generateDescription(c *fiber.Ctx) error {
	var req model.GenerateDescriptionRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	out, err := h.experiences.GenerateDescription(c.UserContext(), req)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

func (h resumeHandlers) generateCoverLetter(c *fiber.Ctx) error {
	var req model.CoverLetterBuilder
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	out, err := h.letters.Generate(c.UserContext(), owner(c), req)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}
