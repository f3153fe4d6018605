// Package post serves the /posts resource.
package post

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/respond"
	"github.com/wichananm65/social-graph-backend/internal/service"
)

type Handler struct {
	service *service.Service
}

type createPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	UserID  string `json:"userId" validate:"required"`
}

type changePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func NewHandler(service *service.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/posts", h.getPosts)
	r.Post("/posts", h.createPost)
	r.Get("/posts/:id", h.getPost)
	r.Patch("/posts/:id", h.updatePost)
	r.Delete("/posts/:id", h.deletePost)
}

func (h *Handler) getPosts(c *fiber.Ctx) error {
	preds, err := respond.Predicates(c, "post.list")
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(h.service.ListPosts(c.UserContext(), preds...))
}

func (h *Handler) getPost(c *fiber.Ctx) error {
	p, err := h.service.GetPost(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) createPost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := respond.Bind(c, "post.create", &req); err != nil {
		return respond.Error(c, err)
	}
	p, err := h.service.CreatePost(c.UserContext(), domain.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) updatePost(c *fiber.Ctx) error {
	var req changePostRequest
	if err := respond.Bind(c, "post.update", &req); err != nil {
		return respond.Error(c, err)
	}
	p, err := h.service.UpdatePost(c.UserContext(), c.Params("id"), domain.PostPatch{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) deletePost(c *fiber.Ctx) error {
	p, err := h.service.DeletePost(c.UserContext(), c.Params("id"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(p)
}
