package service

import (
	"context"
	"errors"
	"slices"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
	"go.uber.org/zap"
)

// DeleteUser removes a user together with the records that depend on it:
//
//  1. the id must be a valid UUID (BadRequest)
//  2. the user must exist (NotFound)
//  3. its profile, if any, is deleted
//  4. its posts are deleted
//  5. its id is removed from every other user's subscriber list
//  6. the user itself is deleted
//
// The steps run as independent collection operations. A failure after step 2
// is returned as an Internal error and whatever was already removed stays
// removed.
func (s *Service) DeleteUser(ctx context.Context, id string) (domain.User, error) {
	const op = "user.delete"
	if err := s.check.CheckID(op, id); err != nil {
		return domain.User{}, err
	}
	if _, err := s.users.Get(id); err != nil {
		return domain.User{}, err
	}
	log := s.log.With(zap.String("user_id", id))

	profile, err := s.profiles.FindOne(store.Eq("userId", id))
	switch {
	case err == nil:
		if _, err := s.profiles.Delete(profile.ID); err != nil {
			return domain.User{}, domain.Internal(op+".profile", err)
		}
		log.Debug("cascade: profile deleted", zap.String("profile_id", profile.ID))
	case !errors.Is(err, domain.ErrNotFound):
		return domain.User{}, domain.Internal(op+".profile", err)
	}

	posts := s.posts.FindMany(store.Eq("userId", id))
	postIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		postIDs = append(postIDs, p.ID)
	}
	if err := s.forEach(ctx, postIDs, func(postID string) error {
		_, err := s.posts.Delete(postID)
		return err
	}); err != nil {
		return domain.User{}, domain.Internal(op+".posts", err)
	}
	log.Debug("cascade: posts deleted", zap.Int("count", len(postIDs)))

	targets := s.users.FindMany(store.Contains("subscriberIds", id))
	targetIDs := make([]string, 0, len(targets))
	for _, t := range targets {
		targetIDs = append(targetIDs, t.ID)
	}
	if err := s.forEach(ctx, targetIDs, func(targetID string) error {
		_, err := s.users.Update(targetID, func(u *domain.User) error {
			u.SubscriberIDs = slices.DeleteFunc(u.SubscriberIDs, func(sid string) bool {
				return sid == id
			})
			return nil
		})
		return err
	}); err != nil {
		return domain.User{}, domain.Internal(op+".subscriptions", err)
	}
	log.Debug("cascade: subscriptions removed", zap.Int("count", len(targetIDs)))

	deleted, err := s.users.Delete(id)
	if err != nil {
		return domain.User{}, domain.Internal(op, err)
	}
	log.Info("user deleted")
	return deleted, nil
}
