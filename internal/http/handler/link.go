package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/adapter"
	"resumeapi/internal/model"
	"resumeapi/internal/service"
	"resumeapi/internal/wire"
)

// PasswordHeader carries the password of a protected shared link.
const PasswordHeader = "X-Link-Password"

type linkHandlers struct {
	links service.LinkService
}

type sharedResume struct {
	Path     string      `json:"path"`
	Template string      `json:"template"`
	Resume   wire.Resume `json:"resume"`
}

type suggestion struct {
	Path string `json:"path"`
}

func (h linkHandlers) list(c *fiber.Ctx) error {
	links, err := h.links.List(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.ResumeLinksToWire(links)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

// create publishes a new shareable link.
//
// @Summary Create a resume link
// @Tags links
// @Accept json
// @Produce json
// @Security BearerAuth
// @Router /api/v1/links [post]
func (h linkHandlers) create(c *fiber.Ctx) error {
	var req model.CreateLinkRequest
	if err := decode(c, &req); err != nil {
		return invalidBody(c)
	}
	l, err := h.links.Create(c.UserContext(), owner(c), req)
	if err != nil {
		return serviceError(c, err)
	}
	out, err := adapter.ResumeLinkToWire(*l)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, out)
}

func (h linkHandlers) delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}
	if err := h.links.Delete(c.UserContext(), owner(c), id); err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, true)
}

// check reports whether a path is well formed and free. An invalid path is
// an answer, not an error.
func (h linkHandlers) check(c *fiber.Ctx) error {
	out, err := h.links.CheckAvailability(c.UserContext(), c.Params("path"))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

func (h linkHandlers) suggest(c *fiber.Ctx) error {
	path, err := h.links.Suggest(c.UserContext(), c.Query("seed"))
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, suggestion{Path: path})
}

// resolve is the public view of a shared resume.
//
// @Summary Resolve a shared resume link
// @Tags public
// @Produce json
// @Param path path string true "link path"
// @Param X-Link-Password header string false "link password"
// @Router /r/{path} [get]
func (h linkHandlers) resolve(c *fiber.Ctx) error {
	shared, err := h.links.Resolve(c.UserContext(), c.Params("path"), c.Get(PasswordHeader))
	if err != nil {
		return serviceError(c, err)
	}
	r, err := adapter.ResumeToWire(shared.Resume)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, sharedResume{Path: shared.Path, Template: shared.Template, Resume: r})
}

func (h linkHandlers) renderShared(c *fiber.Ctx) error {
	html, err := h.links.RenderShared(c.UserContext(), c.Params("path"), c.Get(PasswordHeader), c.Query("template"))
	if err != nil {
		return serviceError(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}
