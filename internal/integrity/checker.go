// Package integrity validates cross-entity references before the service
// mutates the store. It never writes.
package integrity

import (
	"errors"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
)

type userReader interface {
	Get(id string) (domain.User, error)
}

type profileReader interface {
	FindOne(preds ...store.Predicate) (domain.Profile, error)
}

type memberTypeReader interface {
	Get(id string) (domain.MemberType, error)
}

type Checker struct {
	users       userReader
	profiles    profileReader
	memberTypes memberTypeReader
}

func NewChecker(users userReader, profiles profileReader, memberTypes memberTypeReader) *Checker {
	return &Checker{users: users, profiles: profiles, memberTypes: memberTypes}
}

// FromStore builds a Checker reading the collections of s.
func FromStore(s *store.Store) *Checker {
	return NewChecker(s.Users, s.Profiles, s.MemberTypes)
}

// CheckID rejects identifiers that are not lowercase UUIDs.
func (c *Checker) CheckID(op, id string) error {
	if !domain.IsValidUUID(id) {
		return domain.BadRequest(op, "uuid %q is not valid", id)
	}
	return nil
}

// CheckPostCreate requires a well-formed userId that resolves to a user.
// The syntax check runs before any lookup.
func (c *Checker) CheckPostCreate(in domain.CreatePostInput) error {
	const op = "post.create"
	if err := c.CheckID(op, in.UserID); err != nil {
		return err
	}
	return c.userExists(op, in.UserID)
}

// CheckProfileCreate enforces, in order: the member type exists, userId is
// a well-formed UUID, the user has no profile yet, and the user exists.
func (c *Checker) CheckProfileCreate(in domain.CreateProfileInput) error {
	const op = "profile.create"
	if err := c.memberTypeExists(op, in.MemberTypeID); err != nil {
		return err
	}
	if err := c.CheckID(op, in.UserID); err != nil {
		return err
	}
	_, err := c.profiles.FindOne(store.Eq("userId", in.UserID))
	switch {
	case err == nil:
		return domain.Validation(op, "profile for user %s already exists", in.UserID)
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Internal(op, err)
	}
	return c.userExists(op, in.UserID)
}

// CheckProfilePatch validates the member type when the patch changes it.
func (c *Checker) CheckProfilePatch(p domain.ProfilePatch) error {
	if p.MemberTypeID == nil {
		return nil
	}
	return c.memberTypeExists("profile.update", *p.MemberTypeID)
}

func (c *Checker) memberTypeExists(op, id string) error {
	if _, err := c.memberTypes.Get(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Validation(op, "member type %q does not exist", id)
		}
		return domain.Internal(op, err)
	}
	return nil
}

func (c *Checker) userExists(op, id string) error {
	if _, err := c.users.Get(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Reference(op, "user %s does not exist", id)
		}
		return domain.Internal(op, err)
	}
	return nil
}
