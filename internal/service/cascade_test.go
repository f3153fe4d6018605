package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
)

func TestSubscribeAppendsWithoutDedup(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustUser(t, svc, "a")
	b := mustUser(t, svc, "b")

	target, err := svc.Subscribe(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, target.SubscriberIDs)

	target, err = svc.Subscribe(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID, a.ID}, target.SubscriberIDs)

	_, err = svc.Subscribe(ctx, missingID, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Subscribe(ctx, a.ID, missingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubscribeThenUnsubscribeRestoresList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustUser(t, svc, "a")
	b := mustUser(t, svc, "b")
	c := mustUser(t, svc, "c")

	_, err := svc.Subscribe(ctx, c.ID, b.ID)
	require.NoError(t, err)
	before, _ := svc.GetUser(ctx, b.ID)

	_, err = svc.Subscribe(ctx, a.ID, b.ID)
	require.NoError(t, err)
	after, err := svc.Unsubscribe(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, before.SubscriberIDs, after.SubscriberIDs)
}

func TestUnsubscribeRemovesAllOccurrences(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustUser(t, svc, "a")
	b := mustUser(t, svc, "b")
	c := mustUser(t, svc, "c")

	for _, id := range []string{a.ID, c.ID, a.ID} {
		_, err := svc.Subscribe(ctx, id, b.ID)
		require.NoError(t, err)
	}
	target, err := svc.Unsubscribe(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{c.ID}, target.SubscriberIDs)
}

func TestUnsubscribeFailures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustUser(t, svc, "a")
	b := mustUser(t, svc, "b")

	_, err := svc.Unsubscribe(ctx, a.ID, b.ID)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	_, err = svc.Unsubscribe(ctx, missingID, b.ID)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	_, err = svc.Unsubscribe(ctx, a.ID, missingID)
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestSubscriptionDirection(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustUser(t, svc, "a")
	b := mustUser(t, svc, "b")
	c := mustUser(t, svc, "c")

	// a follows b and c; c follows b twice
	for _, pair := range [][2]string{{a.ID, b.ID}, {a.ID, c.ID}, {c.ID, b.ID}, {c.ID, b.ID}} {
		_, err := svc.Subscribe(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	following := svc.SubscribedTo(ctx, a.ID)
	require.Len(t, following, 2)
	assert.Equal(t, b.ID, following[0].ID)
	assert.Equal(t, c.ID, following[1].ID)

	subs, err := svc.Subscribers(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, subs, 3)
	assert.Equal(t, []string{a.ID, c.ID, c.ID}, []string{subs[0].ID, subs[1].ID, subs[2].ID})

	_, err = svc.Subscribers(ctx, missingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubscribersSkipsDanglingIDs(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)
	a := mustUser(t, svc, "a")
	b := mustUser(t, svc, "b")
	_, err := svc.Subscribe(ctx, a.ID, b.ID)
	require.NoError(t, err)

	// remove a behind the service's back so the cascade never runs
	_, err = st.Users.Delete(a.ID)
	require.NoError(t, err)

	subs, err := svc.Subscribers(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, subs)
}

// Scenario: A subscribes to B, deleting A empties B's subscriber list.
func TestDeleteUser_Scenario(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	a := mustUser(t, svc, "a")
	b := mustUser(t, svc, "b")

	target, err := svc.Subscribe(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, target.SubscriberIDs)

	deleted, err := svc.DeleteUser(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, deleted.ID)

	b2, err := svc.GetUser(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, b2.SubscriberIDs)
	_, err = svc.GetUser(ctx, a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUser_RemovesDependents(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	u := mustUser(t, svc, "u")
	other := mustUser(t, svc, "other")

	_, err := svc.CreateProfile(ctx, domain.CreateProfileInput{MemberTypeID: domain.MemberTypeBasic, UserID: u.ID})
	require.NoError(t, err)
	_, err = svc.CreateProfile(ctx, domain.CreateProfileInput{MemberTypeID: domain.MemberTypeBasic, UserID: other.ID})
	require.NoError(t, err)
	for range 20 {
		_, err := svc.CreatePost(ctx, domain.CreatePostInput{Title: "t", UserID: u.ID})
		require.NoError(t, err)
	}
	_, err = svc.CreatePost(ctx, domain.CreatePostInput{Title: "keep", UserID: other.ID})
	require.NoError(t, err)

	var followed []domain.User
	for range 10 {
		f := mustUser(t, svc, "f")
		_, err := svc.Subscribe(ctx, u.ID, f.ID)
		require.NoError(t, err)
		_, err = svc.Subscribe(ctx, other.ID, f.ID)
		require.NoError(t, err)
		followed = append(followed, f)
	}
	// u is subscribed to by other as well
	_, err = svc.Subscribe(ctx, other.ID, u.ID)
	require.NoError(t, err)

	_, err = svc.DeleteUser(ctx, u.ID)
	require.NoError(t, err)

	assert.Empty(t, svc.ListPosts(ctx, store.Eq("userId", u.ID)))
	assert.Empty(t, svc.ListProfiles(ctx, store.Eq("userId", u.ID)))
	assert.Empty(t, svc.ListUsers(ctx, store.Contains("subscriberIds", u.ID)))

	assert.Len(t, svc.ListPosts(ctx), 1)
	assert.Len(t, svc.ListProfiles(ctx), 1)
	for _, f := range followed {
		got, err := svc.GetUser(ctx, f.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{other.ID}, got.SubscriberIDs)
	}
}

func TestDeleteUser_Failures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.DeleteUser(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	_, err = svc.DeleteUser(ctx, missingID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// failingUsers makes Update fail for one id so the cascade breaks midway.
type failingUsers struct {
	collection[domain.User]
	failID string
}

func (f *failingUsers) Update(id string, mutate func(*domain.User) error) (domain.User, error) {
	if id == f.failID {
		return domain.User{}, errors.New("write failed")
	}
	return f.collection.Update(id, mutate)
}

// A failure while cleaning subscriber lists leaves the earlier steps applied
// and the user in place; nothing is rolled back.
func TestDeleteUser_PartialFailureIsNotRolledBack(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)
	u := mustUser(t, svc, "u")
	broken := mustUser(t, svc, "broken")

	_, err := svc.CreateProfile(ctx, domain.CreateProfileInput{MemberTypeID: domain.MemberTypeBasic, UserID: u.ID})
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, domain.CreatePostInput{UserID: u.ID})
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, u.ID, broken.ID)
	require.NoError(t, err)

	svc.users = &failingUsers{collection: st.Users, failID: broken.ID}

	_, err = svc.DeleteUser(ctx, u.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInternal)

	_, err = svc.GetUser(ctx, u.ID)
	assert.NoError(t, err, "user survives a failed cascade")
	assert.Empty(t, svc.ListProfiles(ctx, store.Eq("userId", u.ID)), "profile removal is not undone")
	assert.Empty(t, svc.ListPosts(ctx, store.Eq("userId", u.ID)), "post removal is not undone")

	got, _ := st.Users.Get(broken.ID)
	assert.Equal(t, []string{u.ID}, got.SubscriberIDs)
}

func TestConcurrentDeleteAndSubscribe(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	var users []domain.User
	for range 20 {
		users = append(users, mustUser(t, svc, "x"))
	}

	var wg sync.WaitGroup
	for i := range users {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = svc.Subscribe(ctx, users[i].ID, users[(i+1)%len(users)].ID)
		}(i)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = svc.DeleteUser(ctx, users[i].ID)
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, svc.ListUsers(ctx), len(users)/2)
}
