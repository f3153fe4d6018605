// Package user serves the /users resource, including the subscription
// endpoints.
package user

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/respond"
	"github.com/wichananm65/social-graph-backend/internal/service"
)

type Handler struct {
	service *service.Service
}

type createUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
}

type changeUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// subscribeRequest names the other side of a subscription; the path id is
// always the subscriber.
type subscribeRequest struct {
	UserID string `json:"userId" validate:"required"`
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/users", h.getUsers)
	r.Post("/users", h.createUser)
	r.Get("/users/:id", h.getUser)
	r.Patch("/users/:id", h.updateUser)
	r.Delete("/users/:id", h.deleteUser)
	r.Post("/users/:id/subscribeTo", h.subscribeTo)
	r.Post("/users/:id/unsubscribeFrom", h.unsubscribeFrom)
	r.Get("/users/:id/subscribers", h.getSubscribers)
	r.Get("/users/:id/subscribed-to", h.getSubscribedTo)
}

func (h *Handler) getUsers(c *fiber.Ctx) error {
	preds, err := respond.Predicates(c, "user.list")
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.service.ListUsers(c.UserContext(), preds...))
}

func (h *Handler) getUser(c *fiber.Ctx) error {
	u, err := h.service.GetUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(u)
}

func (h *Handler) createUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := respond.Bind(c, "user.create", &req); err != nil {
		return respond.Error(c, err)
	}
	u, err := h.service.CreateUser(c.UserContext(), domain.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(u)
}

func (h *Handler) updateUser(c *fiber.Ctx) error {
	var req changeUserRequest
	if err := respond.Bind(c, "user.update", &req); err != nil {
		return respond.Error(c, err)
	}
	u, err := h.service.UpdateUser(c.UserContext(), c.Params("id"), domain.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(u)
}

func (h *Handler) deleteUser(c *fiber.Ctx) error {
	u, err := h.service.DeleteUser(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(u)
}

func (h *Handler) subscribeTo(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := respond.Bind(c, "user.subscribe", &req); err != nil {
		return respond.Error(c, err)
	}
	target, err := h.service.Subscribe(c.UserContext(), c.Params("id"), req.UserID)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(target)
}

func (h *Handler) unsubscribeFrom(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := respond.Bind(c, "user.unsubscribe", &req); err != nil {
		return respond.Error(c, err)
	}
	target, err := h.service.Unsubscribe(c.UserContext(), c.Params("id"), req.UserID)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(target)
}

func (h *Handler) getSubscribers(c *fiber.Ctx) error {
	users, err := h.service.Subscribers(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(users)
}

func (h *Handler) getSubscribedTo(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.service.GetUser(c.UserContext(), id); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.service.SubscribedTo(c.UserContext(), id))
}
