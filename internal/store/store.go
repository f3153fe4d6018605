package store

import "github.com/wichananm65/social-graph-backend/internal/domain"

// Store owns one collection per entity kind. Collections are independent:
// there is no locking or atomicity across them.
type Store struct {
	Users       *Collection[domain.User]
	Profiles    *Collection[domain.Profile]
	Posts       *Collection[domain.Post]
	MemberTypes *Collection[domain.MemberType]
}

// New returns a store with four empty collections.
func New() *Store {
	return &Store{
		Users:       NewCollection[domain.User]("user"),
		Profiles:    NewCollection[domain.Profile]("profile"),
		Posts:       NewCollection[domain.Post]("post"),
		MemberTypes: NewCollection[domain.MemberType]("memberType"),
	}
}

// SeedMemberTypes inserts the given member types, skipping ids that already
// exist.
func (s *Store) SeedMemberTypes(types []domain.MemberType) error {
	for _, mt := range types {
		if _, err := s.MemberTypes.Get(mt.ID); err == nil {
			continue
		}
		if _, err := s.MemberTypes.Create(mt); err != nil {
			return err
		}
	}
	return nil
}
