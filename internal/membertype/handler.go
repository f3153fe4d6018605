// Package membertype serves the read-mostly /member-types resource.
package membertype

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/respond"
	"github.com/wichananm65/social-graph-backend/internal/service"
)

type Handler struct {
	service *service.Service
}

type changeMemberTypeRequest struct {
	Discount        *int `json:"discount" validate:"omitempty,min=0,max=100"`
	MonthPostsLimit *int `json:"monthPostsLimit" validate:"omitempty,min=0"`
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/member-types", h.getMemberTypes)
	r.Get("/member-types/:id", h.getMemberType)
	r.Patch("/member-types/:id", h.updateMemberType)
}

func (h *Handler) getMemberTypes(c *fiber.Ctx) error {
	preds, err := respond.Predicates(c, "memberType.list")
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.service.ListMemberTypes(c.UserContext(), preds...))
}

func (h *Handler) getMemberType(c *fiber.Ctx) error {
	mt, err := h.service.GetMemberType(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(mt)
}

func (h *Handler) updateMemberType(c *fiber.Ctx) error {
	var req changeMemberTypeRequest
	if err := respond.Bind(c, "memberType.update", &req); err != nil {
		return respond.Error(c, err)
	}
	mt, err := h.service.UpdateMemberType(c.UserContext(), c.Params("id"), domain.MemberTypePatch{
		Discount:        req.Discount,
		MonthPostsLimit: req.MonthPostsLimit,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(mt)
}
