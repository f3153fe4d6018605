// Package profile serves the /profiles resource.
package profile

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/respond"
	"github.com/wichananm65/social-graph-backend/internal/service"
)

type Handler struct {
	service *service.Service
}

type createProfileRequest struct {
	Avatar       string `json:"avatar" validate:"required"`
	Sex          string `json:"sex" validate:"required"`
	Birthday     *int64 `json:"birthday" validate:"required"`
	Country      string `json:"country" validate:"required"`
	Street       string `json:"street" validate:"required"`
	City         string `json:"city" validate:"required"`
	MemberTypeID string `json:"memberTypeId" validate:"required"`
	UserID       string `json:"userId" validate:"required"`
}

type changeProfileRequest struct {
	Avatar       *string `json:"avatar"`
	Sex          *string `json:"sex"`
	Birthday     *int64  `json:"birthday"`
	Country      *string `json:"country"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	MemberTypeID *string `json:"memberTypeId"`
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/profiles", h.getProfiles)
	r.Post("/profiles", h.createProfile)
	r.Get("/profiles/:id", h.getProfile)
	r.Patch("/profiles/:id", h.updateProfile)
	r.Delete("/profiles/:id", h.deleteProfile)
}

func (h *Handler) getProfiles(c *fiber.Ctx) error {
	preds, err := respond.Predicates(c, "profile.list")
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.service.ListProfiles(c.UserContext(), preds...))
}

func (h *Handler) getProfile(c *fiber.Ctx) error {
	p, err := h.service.GetProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) createProfile(c *fiber.Ctx) error {
	var req createProfileRequest
	if err := respond.Bind(c, "profile.create", &req); err != nil {
		return respond.Error(c, err)
	}
	p, err := h.service.CreateProfile(c.UserContext(), domain.CreateProfileInput{
		Avatar:       req.Avatar,
		Sex:          req.Sex,
		Birthday:     *req.Birthday,
		Country:      req.Country,
		Street:       req.Street,
		City:         req.City,
		MemberTypeID: req.MemberTypeID,
		UserID:       req.UserID,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) updateProfile(c *fiber.Ctx) error {
	var req changeProfileRequest
	if err := respond.Bind(c, "profile.update", &req); err != nil {
		return respond.Error(c, err)
	}
	p, err := h.service.UpdateProfile(c.UserContext(), c.Params("id"), domain.ProfilePatch{
		Avatar:       req.Avatar,
		Sex:          req.Sex,
		Birthday:     req.Birthday,
		Country:      req.Country,
		Street:       req.Street,
		City:         req.City,
		MemberTypeID: req.MemberTypeID,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) deleteProfile(c *fiber.Ctx) error {
	p, err := h.service.DeleteProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(p)
}
