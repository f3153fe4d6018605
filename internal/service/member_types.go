package service

import (
	"context"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
)

// ListMemberTypes returns the member types matching preds.
func (s *Service) ListMemberTypes(ctx context.Context, preds ...store.Predicate) []domain.MemberType {
	return s.memberTypes.FindMany(preds...)
}

// GetMemberType returns the member type with id or a NotFound error.
func (s *Service) GetMemberType(ctx context.Context, id string) (domain.MemberType, error) {
	return s.memberTypes.Get(id)
}

// UpdateMemberType merges patch into the member type. Its id is a short name,
// so there is no syntax check.
func (s *Service) UpdateMemberType(ctx context.Context, id string, patch domain.MemberTypePatch) (domain.MemberType, error) {
	return s.memberTypes.Update(id, func(m *domain.MemberType) error {
		patch.Apply(m)
		return nil
	})
}
