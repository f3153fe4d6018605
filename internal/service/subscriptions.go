package service

import (
	"context"
	"errors"
	"slices"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
	"go.uber.org/zap"
)

// Subscribe records that subscriberID follows targetID by appending
// subscriberID to the target's subscriber list. Repeated calls append again.
// The appended id is the stored subscriber's own id, never the argument.
func (s *Service) Subscribe(ctx context.Context, subscriberID, targetID string) (domain.User, error) {
	const op = "user.subscribe"
	subscriber, err := s.users.Get(subscriberID)
	if err != nil {
		return domain.User{}, domain.NotFound(op, "subscriber %s is not found", subscriberID)
	}
	target, err := s.users.Update(targetID, func(u *domain.User) error {
		u.SubscriberIDs = append(u.SubscriberIDs, subscriber.ID)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.NotFound(op, "user %s is not found", targetID)
		}
		return domain.User{}, err
	}
	return target, nil
}

// Unsubscribe removes every occurrence of subscriberID from the target's
// subscriber list. It fails with BadRequest when either user is missing or
// subscriberID was never subscribed.
func (s *Service) Unsubscribe(ctx context.Context, subscriberID, targetID string) (domain.User, error) {
	const op = "user.unsubscribe"
	if _, err := s.users.Get(subscriberID); err != nil {
		return domain.User{}, domain.BadRequest(op, "subscriber %s is not found", subscriberID)
	}
	target, err := s.users.Update(targetID, func(u *domain.User) error {
		if !u.HasSubscriber(subscriberID) {
			return domain.BadRequest(op, "user %s is not subscribed to %s", subscriberID, targetID)
		}
		u.SubscriberIDs = slices.DeleteFunc(u.SubscriberIDs, func(id string) bool {
			return id == subscriberID
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.BadRequest(op, "user %s is not found", targetID)
		}
		return domain.User{}, err
	}
	return target, nil
}

// SubscribedTo lists the users userID has subscribed to, i.e. every user
// whose subscriber list holds userID.
func (s *Service) SubscribedTo(ctx context.Context, userID string) []domain.User {
	return s.users.FindMany(store.Contains("subscriberIds", userID))
}

// Subscribers dereferences the subscriber list of userID in order. Duplicate
// entries yield duplicate users; ids that no longer resolve are skipped.
func (s *Service) Subscribers(ctx context.Context, userID string) ([]domain.User, error) {
	u, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(u.SubscriberIDs))
	for _, id := range u.SubscriberIDs {
		sub, err := s.users.Get(id)
		if err != nil {
			s.log.Warn("dangling subscriber id",
				zap.String("user_id", userID),
				zap.String("subscriber_id", id),
			)
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}
