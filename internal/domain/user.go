package domain

import "slices"

// User is a member of the network. SubscriberIDs lists the users that
// subscribed to this user, in subscribe order; duplicates are allowed.
type User struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Email         string   `json:"email"`
	SubscriberIDs []string `json:"subscriberIds"`
}

func (u User) GetID() string { return u.ID }

func (u User) WithID(id string) User {
	u.ID = id
	return u
}

// Clone returns a copy that shares no memory with u.
func (u User) Clone() User {
	out := u
	out.SubscriberIDs = append(make([]string, 0, len(u.SubscriberIDs)), u.SubscriberIDs...)
	return out
}

func (u User) Field(key string) (any, bool) {
	switch key {
	case "id":
		return u.ID, true
	case "firstName":
		return u.FirstName, true
	case "lastName":
		return u.LastName, true
	case "email":
		return u.Email, true
	case "subscriberIds":
		return u.SubscriberIDs, true
	}
	return nil, false
}

// HasSubscriber reports whether id appears in the subscriber list.
func (u User) HasSubscriber(id string) bool {
	return slices.Contains(u.SubscriberIDs, id)
}

// CreateUserInput carries data required to create a user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UserPatch holds the optional fields of a partial user update. A nil
// field is left untouched.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (p UserPatch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
}
