package service

import (
	"context"
	"errors"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
)

// ListUsers returns the users matching preds in creation order.
func (s *Service) ListUsers(ctx context.Context, preds ...store.Predicate) []domain.User {
	return s.users.FindMany(preds...)
}

// GetUser returns the user with id or a NotFound error.
func (s *Service) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.users.Get(id)
}

// CreateUser stores a new user with an empty subscriber list.
func (s *Service) CreateUser(ctx context.Context, in domain.CreateUserInput) (domain.User, error) {
	return s.users.Create(domain.User{
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		SubscriberIDs: []string{},
	})
}

// UpdateUser checks only the id syntax; a missing user surfaces as the
// collection's NotFound.
func (s *Service) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (domain.User, error) {
	if err := s.check.CheckID("user.update", id); err != nil {
		return domain.User{}, err
	}
	return s.users.Update(id, func(u *domain.User) error {
		patch.Apply(u)
		return nil
	})
}

// UserPosts lists the posts authored by userID.
func (s *Service) UserPosts(ctx context.Context, userID string) []domain.Post {
	return s.posts.FindMany(store.Eq("userId", userID))
}

// UserProfile returns nil when the user has no profile.
func (s *Service) UserProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profiles.FindOne(store.Eq("userId", userID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UserMemberType resolves the member type through the user's profile. It
// returns nil when the user has no profile.
func (s *Service) UserMemberType(ctx context.Context, userID string) (*domain.MemberType, error) {
	p, err := s.UserProfile(ctx, userID)
	if err != nil || p == nil {
		return nil, err
	}
	mt, err := s.memberTypes.Get(p.MemberTypeID)
	if err != nil {
		return nil, err
	}
	return &mt, nil
}
