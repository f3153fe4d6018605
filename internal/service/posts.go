package service

import (
	"context"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
)

// ListPosts returns the posts matching preds in creation order.
func (s *Service) ListPosts(ctx context.Context, preds ...store.Predicate) []domain.Post {
	return s.posts.FindMany(preds...)
}

// GetPost returns the post with id or a NotFound error.
func (s *Service) GetPost(ctx context.Context, id string) (domain.Post, error) {
	return s.posts.Get(id)
}

// CreatePost stores a post once its author is known to exist.
func (s *Service) CreatePost(ctx context.Context, in domain.CreatePostInput) (domain.Post, error) {
	if err := s.check.CheckPostCreate(in); err != nil {
		return domain.Post{}, err
	}
	return s.posts.Create(domain.Post{
		Title:   in.Title,
		Content: in.Content,
		UserID:  in.UserID,
	})
}

// UpdatePost merges patch into the post; the author never changes.
func (s *Service) UpdatePost(ctx context.Context, id string, patch domain.PostPatch) (domain.Post, error) {
	if err := s.check.CheckID("post.update", id); err != nil {
		return domain.Post{}, err
	}
	return s.posts.Update(id, func(p *domain.Post) error {
		patch.Apply(p)
		return nil
	})
}

// DeletePost removes a single post.
func (s *Service) DeletePost(ctx context.Context, id string) (domain.Post, error) {
	if err := s.check.CheckID("post.delete", id); err != nil {
		return domain.Post{}, err
	}
	return s.posts.Delete(id)
}
