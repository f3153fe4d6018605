package service

import (
	"context"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
)

// ListProfiles returns the profiles matching preds in creation order.
func (s *Service) ListProfiles(ctx context.Context, preds ...store.Predicate) []domain.Profile {
	return s.profiles.FindMany(preds...)
}

// GetProfile returns the profile with id or a NotFound error.
func (s *Service) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	return s.profiles.Get(id)
}

// CreateProfile stores a profile for a user that has none. Check and insert
// run under one lock so two concurrent creates cannot both succeed.
func (s *Service) CreateProfile(ctx context.Context, in domain.CreateProfileInput) (domain.Profile, error) {
	s.profileMu.Lock()
	defer s.profileMu.Unlock()

	if err := s.check.CheckProfileCreate(in); err != nil {
		return domain.Profile{}, err
	}
	return s.profiles.Create(domain.Profile{
		Avatar:       in.Avatar,
		Sex:          in.Sex,
		Birthday:     in.Birthday,
		Country:      in.Country,
		Street:       in.Street,
		City:         in.City,
		MemberTypeID: in.MemberTypeID,
		UserID:       in.UserID,
	})
}

// UpdateProfile merges patch into the profile, validating a new member type.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (domain.Profile, error) {
	if err := s.check.CheckID("profile.update", id); err != nil {
		return domain.Profile{}, err
	}
	if err := s.check.CheckProfilePatch(patch); err != nil {
		return domain.Profile{}, err
	}
	return s.profiles.Update(id, func(p *domain.Profile) error {
		patch.Apply(p)
		return nil
	})
}

// DeleteProfile removes a single profile.
func (s *Service) DeleteProfile(ctx context.Context, id string) (domain.Profile, error) {
	if err := s.check.CheckID("profile.delete", id); err != nil {
		return domain.Profile{}, err
	}
	return s.profiles.Delete(id)
}
