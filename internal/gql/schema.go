// Package gql exposes the core service as a GraphQL schema served at
// POST /graphql.
package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/service"
)

// resolveError carries the core error kind into the "extensions.code" of
// the GraphQL error.
type resolveError struct {
	err error
}

func (e resolveError) Error() string { return e.err.Error() }

func (e resolveError) Unwrap() error { return e.err }

func (e resolveError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(domain.KindOf(e.err))}
}

func fail(err error) (interface{}, error) {
	return nil, resolveError{err: err}
}

// NewSchema builds the Query and Mutation roots over svc.
func NewSchema(svc *service.Service) (graphql.Schema, error) {
	r := &resolver{svc: svc}

	var userType *graphql.Object
	userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "UserType",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":            &graphql.Field{Type: graphql.ID},
				"firstName":     &graphql.Field{Type: graphql.String},
				"lastName":      &graphql.Field{Type: graphql.String},
				"email":         &graphql.Field{Type: graphql.String},
				"subscriberIds": &graphql.Field{Type: graphql.NewList(graphql.String)},
				"userPosts": &graphql.Field{
					Type:    graphql.NewList(postType),
					Resolve: r.userPosts,
				},
				"userProfile": &graphql.Field{
					Type:    profileType,
					Resolve: r.userProfile,
				},
				"userMemberType": &graphql.Field{
					Type:    memberTypeType,
					Resolve: r.userMemberType,
				},
				"userSubscribedTo": &graphql.Field{
					Type:        graphql.NewList(userType),
					Description: "Users this user has subscribed to.",
					Resolve:     r.userSubscribedTo,
				},
				"subscribedToUser": &graphql.Field{
					Type:        graphql.NewList(userType),
					Description: "Users subscribed to this user.",
					Resolve:     r.subscribedToUser,
				},
			}
		}),
	})

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users":       &graphql.Field{Type: graphql.NewList(userType), Resolve: r.users},
			"user":        &graphql.Field{Type: userType, Args: idArgs(), Resolve: r.user},
			"profiles":    &graphql.Field{Type: graphql.NewList(profileType), Resolve: r.profiles},
			"profile":     &graphql.Field{Type: profileType, Args: idArgs(), Resolve: r.profile},
			"posts":       &graphql.Field{Type: graphql.NewList(postType), Resolve: r.posts},
			"post":        &graphql.Field{Type: postType, Args: idArgs(), Resolve: r.post},
			"memberTypes": &graphql.Field{Type: graphql.NewList(memberTypeType), Resolve: r.memberTypes},
			"memberType":  &graphql.Field{Type: memberTypeType, Args: idArgs(), Resolve: r.memberType},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addUser":          &graphql.Field{Type: userType, Args: valuesArgs(createUserInput, false), Resolve: r.addUser},
			"changeUser":       &graphql.Field{Type: userType, Args: valuesArgs(changeUserInput, true), Resolve: r.changeUser},
			"deleteUser":       &graphql.Field{Type: userType, Args: idArgs(), Resolve: r.deleteUser},
			"subscribeTo":      &graphql.Field{Type: userType, Args: valuesArgs(subscribeInput, false), Resolve: r.subscribeTo},
			"unsubscribeFrom":  &graphql.Field{Type: userType, Args: valuesArgs(subscribeInput, false), Resolve: r.unsubscribeFrom},
			"addProfile":       &graphql.Field{Type: profileType, Args: valuesArgs(createProfileInput, false), Resolve: r.addProfile},
			"changeProfile":    &graphql.Field{Type: profileType, Args: valuesArgs(changeProfileInput, true), Resolve: r.changeProfile},
			"deleteProfile":    &graphql.Field{Type: profileType, Args: idArgs(), Resolve: r.deleteProfile},
			"addPost":          &graphql.Field{Type: postType, Args: valuesArgs(createPostInput, false), Resolve: r.addPost},
			"changePost":       &graphql.Field{Type: postType, Args: valuesArgs(changePostInput, true), Resolve: r.changePost},
			"deletePost":       &graphql.Field{Type: postType, Args: idArgs(), Resolve: r.deletePost},
			"changeMemberType": &graphql.Field{Type: memberTypeType, Args: valuesArgs(changeMemberTypeInput, true), Resolve: r.changeMemberType},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
