package handler

import (
	"github.com/gofiber/fiber/v2"

	"resumeapi/internal/service"
)

// codec converts one section record between the plain model and its wire form.
type codec[P, W any] struct {
	toWire   func(P) (W, error)
	fromWire func(W) P
}

func (c codec[P, W]) all(in []P) ([]W, error) {
	out := make([]W, 0, len(in))
	for _, p := range in {
		w, err := c.toWire(p)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// sectionHandlers serves the CRUD surface shared by every resume section.
type sectionHandlers[P, W any] struct {
	svc   service.SectionService[P]
	codec codec[P, W]
}

func registerSection[P, W any](r fiber.Router, prefix string, svc service.SectionService[P], cd codec[P, W]) {
	h := sectionHandlers[P, W]{svc: svc, codec: cd}
	r.Get(prefix, h.list)
	r.Post(prefix, h.add)
	r.Put(prefix, h.updateBatch)
	r.Get(prefix+"/:id", h.get)
	r.Delete(prefix+"/:id", h.delete)
}

func (h sectionHandlers[P, W]) list(c *fiber.Ctx) error {
	items, err := h.svc.List(c.UserContext(), owner(c))
	if err != nil {
		return serviceError(c, err)
	}
	out, err := h.codec.all(items)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

func (h sectionHandlers[P, W]) get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}
	item, err := h.svc.Get(c.UserContext(), owner(c), id)
	if err != nil {
		return serviceError(c, err)
	}
	out, err := h.codec.toWire(*item)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, out)
}

func (h sectionHandlers[P, W]) add(c *fiber.Ctx) error {
	var in W
	if err := decode(c, &in); err != nil {
		return invalidBody(c)
	}
	item, err := h.svc.Add(c.UserContext(), owner(c), h.codec.fromWire(in))
	if err != nil {
		return serviceError(c, err)
	}
	out, err := h.codec.toWire(*item)
	if err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusCreated, out)
}

func (h sectionHandlers[P, W]) updateBatch(c *fiber.Ctx) error {
	var in []W
	if err := decode(c, &in); err != nil {
		return invalidBody(c)
	}
	items := make([]P, 0, len(in))
	for _, w := range in {
		items = append(items, h.codec.fromWire(w))
	}
	if err := h.svc.UpdateBatch(c.UserContext(), owner(c), items); err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, true)
}

func (h sectionHandlers[P, W]) delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return invalidID(c)
	}
	if err := h.svc.Delete(c.UserContext(), owner(c), id); err != nil {
		return serviceError(c, err)
	}
	return respond(c, fiber.StatusOK, true)
}
