package gql

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/service"
)

var errSource = errors.New("unexpected parent value")

type resolver struct {
	svc *service.Service
}

func parentUser(p graphql.ResolveParams) (domain.User, error) {
	switch u := p.Source.(type) {
	case domain.User:
		return u, nil
	case *domain.User:
		return *u, nil
	}
	return domain.User{}, domain.Internal("gql.user", errSource)
}

func values(p graphql.ResolveParams) map[string]interface{} {
	m, _ := p.Args["values"].(map[string]interface{})
	return m
}

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func optStr(m map[string]interface{}, key string) *string {
	s, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func optInt(m map[string]interface{}, key string) *int {
	n, ok := m[key].(int)
	if !ok {
		return nil
	}
	return &n
}

func optInt64(m map[string]interface{}, key string) *int64 {
	n := optInt(m, key)
	if n == nil {
		return nil
	}
	v := int64(*n)
	return &v
}

func (r *resolver) users(p graphql.ResolveParams) (interface{}, error) {
	return r.svc.ListUsers(p.Context), nil
}

func (r *resolver) user(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	u, err := r.svc.GetUser(p.Context, id)
	if err != nil {
		return fail(err)
	}
	return u, nil
}

func (r *resolver) profiles(p graphql.ResolveParams) (interface{}, error) {
	return r.svc.ListProfiles(p.Context), nil
}

func (r *resolver) profile(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	pr, err := r.svc.GetProfile(p.Context, id)
	if err != nil {
		return fail(err)
	}
	return pr, nil
}

func (r *resolver) posts(p graphql.ResolveParams) (interface{}, error) {
	return r.svc.ListPosts(p.Context), nil
}

func (r *resolver) post(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	post, err := r.svc.GetPost(p.Context, id)
	if err != nil {
		return fail(err)
	}
	return post, nil
}

func (r *resolver) memberTypes(p graphql.ResolveParams) (interface{}, error) {
	return r.svc.ListMemberTypes(p.Context), nil
}

func (r *resolver) memberType(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	mt, err := r.svc.GetMemberType(p.Context, id)
	if err != nil {
		return fail(err)
	}
	return mt, nil
}

// nested user fields

func (r *resolver) userPosts(p graphql.ResolveParams) (interface{}, error) {
	u, err := parentUser(p)
	if err != nil {
		return fail(err)
	}
	return r.svc.UserPosts(p.Context, u.ID), nil
}

func (r *resolver) userProfile(p graphql.ResolveParams) (interface{}, error) {
	u, err := parentUser(p)
	if err != nil {
		return fail(err)
	}
	pr, err := r.svc.UserProfile(p.Context, u.ID)
	if err != nil {
		return fail(err)
	}
	if pr == nil {
		return nil, nil
	}
	return *pr, nil
}

func (r *resolver) userMemberType(p graphql.ResolveParams) (interface{}, error) {
	u, err := parentUser(p)
	if err != nil {
		return fail(err)
	}
	mt, err := r.svc.UserMemberType(p.Context, u.ID)
	if err != nil {
		return fail(err)
	}
	if mt == nil {
		return nil, nil
	}
	return *mt, nil
}

func (r *resolver) userSubscribedTo(p graphql.ResolveParams) (interface{}, error) {
	u, err := parentUser(p)
	if err != nil {
		return fail(err)
	}
	return r.svc.SubscribedTo(p.Context, u.ID), nil
}

func (r *resolver) subscribedToUser(p graphql.ResolveParams) (interface{}, error) {
	u, err := parentUser(p)
	if err != nil {
		return fail(err)
	}
	subs, err := r.svc.Subscribers(p.Context, u.ID)
	if err != nil {
		return fail(err)
	}
	return subs, nil
}

// mutations

func (r *resolver) addUser(p graphql.ResolveParams) (interface{}, error) {
	v := values(p)
	u, err := r.svc.CreateUser(p.Context, domain.CreateUserInput{
		FirstName: str(v, "firstName"),
		LastName:  str(v, "lastName"),
		Email:     str(v, "email"),
	})
	if err != nil {
		return fail(err)
	}
	return u, nil
}

func (r *resolver) changeUser(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	v := values(p)
	u, err := r.svc.UpdateUser(p.Context, id, domain.UserPatch{
		FirstName: optStr(v, "firstName"),
		LastName:  optStr(v, "lastName"),
		Email:     optStr(v, "email"),
	})
	if err != nil {
		return fail(err)
	}
	return u, nil
}

func (r *resolver) deleteUser(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	u, err := r.svc.DeleteUser(p.Context, id)
	if err != nil {
		return fail(err)
	}
	return u, nil
}

func (r *resolver) subscribeTo(p graphql.ResolveParams) (interface{}, error) {
	v := values(p)
	u, err := r.svc.Subscribe(p.Context, str(v, "id"), str(v, "userId"))
	if err != nil {
		return fail(err)
	}
	return u, nil
}

func (r *resolver) unsubscribeFrom(p graphql.ResolveParams) (interface{}, error) {
	v := values(p)
	u, err := r.svc.Unsubscribe(p.Context, str(v, "id"), str(v, "userId"))
	if err != nil {
		return fail(err)
	}
	return u, nil
}

func (r *resolver) addProfile(p graphql.ResolveParams) (interface{}, error) {
	v := values(p)
	var birthday int64
	if b := optInt64(v, "birthday"); b != nil {
		birthday = *b
	}
	pr, err := r.svc.CreateProfile(p.Context, domain.CreateProfileInput{
		Avatar:       str(v, "avatar"),
		Sex:          str(v, "sex"),
		Birthday:     birthday,
		Country:      str(v, "country"),
		Street:       str(v, "street"),
		City:         str(v, "city"),
		MemberTypeID: str(v, "memberTypeId"),
		UserID:       str(v, "userId"),
	})
	if err != nil {
		return fail(err)
	}
	return pr, nil
}

func (r *resolver) changeProfile(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	v := values(p)
	pr, err := r.svc.UpdateProfile(p.Context, id, domain.ProfilePatch{
		Avatar:       optStr(v, "avatar"),
		Sex:          optStr(v, "sex"),
		Birthday:     optInt64(v, "birthday"),
		Country:      optStr(v, "country"),
		Street:       optStr(v, "street"),
		City:         optStr(v, "city"),
		MemberTypeID: optStr(v, "memberTypeId"),
	})
	if err != nil {
		return fail(err)
	}
	return pr, nil
}

func (r *resolver) deleteProfile(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	pr, err := r.svc.DeleteProfile(p.Context, id)
	if err != nil {
		return fail(err)
	}
	return pr, nil
}

func (r *resolver) addPost(p graphql.ResolveParams) (interface{}, error) {
	v := values(p)
	post, err := r.svc.CreatePost(p.Context, domain.CreatePostInput{
		Title:   str(v, "title"),
		Content: str(v, "content"),
		UserID:  str(v, "userId"),
	})
	if err != nil {
		return fail(err)
	}
	return post, nil
}

func (r *resolver) changePost(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	v := values(p)
	post, err := r.svc.UpdatePost(p.Context, id, domain.PostPatch{
		Title:   optStr(v, "title"),
		Content: optStr(v, "content"),
	})
	if err != nil {
		return fail(err)
	}
	return post, nil
}

func (r *resolver) deletePost(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	post, err := r.svc.DeletePost(p.Context, id)
	if err != nil {
		return fail(err)
	}
	return post, nil
}

func (r *resolver) changeMemberType(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	v := values(p)
	mt, err := r.svc.UpdateMemberType(p.Context, id, domain.MemberTypePatch{
		Discount:        optInt(v, "discount"),
		MonthPostsLimit: optInt(v, "monthPostsLimit"),
	})
	if err != nil {
		return fail(err)
	}
	return mt, nil
}
