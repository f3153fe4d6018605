package gql

import (
	"github.com/graphql-go/graphql"
)

var memberTypeType = graphql.NewObject(graphql.ObjectConfig{
	Name: "MemberType",
	Fields: graphql.Fields{
		"id":              &graphql.Field{Type: graphql.String},
		"discount":        &graphql.Field{Type: graphql.Int},
		"monthPostsLimit": &graphql.Field{Type: graphql.Int},
	},
})

var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PostType",
	Fields: graphql.Fields{
		"id":      &graphql.Field{Type: graphql.ID},
		"title":   &graphql.Field{Type: graphql.String},
		"content": &graphql.Field{Type: graphql.String},
		"userId":  &graphql.Field{Type: graphql.ID},
	},
})

var profileType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProfileType",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.ID},
		"avatar":       &graphql.Field{Type: graphql.String},
		"sex":          &graphql.Field{Type: graphql.String},
		"birthday":     &graphql.Field{Type: graphql.Int},
		"country":      &graphql.Field{Type: graphql.String},
		"street":       &graphql.Field{Type: graphql.String},
		"city":         &graphql.Field{Type: graphql.String},
		"memberTypeId": &graphql.Field{Type: graphql.String},
		"userId":       &graphql.Field{Type: graphql.ID},
	},
})

var createUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateUserType",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var changeUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeUserType",
	Fields: graphql.InputObjectConfigFieldMap{
		"firstName": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"lastName":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"email":     &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

// subscribeInput: id is the subscriber, userId the user being followed.
var subscribeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SubscribeToUserType",
	Fields: graphql.InputObjectConfigFieldMap{
		"id":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		"userId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
	},
})

var createProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateProfileType",
	Fields: graphql.InputObjectConfigFieldMap{
		"avatar":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"sex":          &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"birthday":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"country":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"street":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"city":         &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"userId":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
	},
})

var changeProfileInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeProfileType",
	Fields: graphql.InputObjectConfigFieldMap{
		"avatar":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"sex":          &graphql.InputObjectFieldConfig{Type: graphql.String},
		"birthday":     &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"country":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"street":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"city":         &graphql.InputObjectFieldConfig{Type: graphql.String},
		"memberTypeId": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var createPostInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreatePostType",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"userId":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
	},
})

var changePostInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangePostType",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":   &graphql.InputObjectFieldConfig{Type: graphql.String},
		"content": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var changeMemberTypeInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChangeMemberTypeType",
	Fields: graphql.InputObjectConfigFieldMap{
		"discount":        &graphql.InputObjectFieldConfig{Type: graphql.Int},
		"monthPostsLimit": &graphql.InputObjectFieldConfig{Type: graphql.Int},
	},
})

func idArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

func valuesArgs(input *graphql.InputObject, withID bool) graphql.FieldConfigArgument {
	args := graphql.FieldConfigArgument{
		"values": &graphql.ArgumentConfig{Type: graphql.NewNonNull(input)},
	}
	if withID {
		args["id"] = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)}
	}
	return args
}
