package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/internal/diary/store"
)

func TestFollowSelf(t *testing.T) {
	s := newTestStore(t)
	users := newUserService(s)
	follows := &service.FollowService{Store: s}
	alice := createUser(t, users, "Alice", "alice@example.com")

	err := follows.Follow(context.Background(), alice.ID, alice.ID)
	require.ErrorIs(t, err, service.ErrSelfFollow)
}

func TestFollowMissingTarget(t *testing.T) {
	s := newTestStore(t)
	users := newUserService(s)
	follows := &service.FollowService{Store: s}
	alice := createUser(t, users, "Alice", "alice@example.com")

	err := follows.Follow(context.Background(), alice.ID, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestFollowTwice(t *testing.T) {
	s := newTestStore(t)
	users := newUserService(s)
	follows := &service.FollowService{Store: s}
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")

	require.NoError(t, follows.Follow(context.Background(), alice.ID, bob.ID))

	err := follows.Follow(context.Background(), alice.ID, bob.ID)
	require.ErrorIs(t, err, service.ErrAlreadyFollowing)
}

func TestUnfollowWithoutFollowing(t *testing.T) {
	s := newTestStore(t)
	users := newUserService(s)
	follows := &service.FollowService{Store: s}
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")

	err := follows.Unfollow(context.Background(), alice.ID, bob.ID)
	require.ErrorIs(t, err, service.ErrNotFollowing)
}

func TestFollowListingsAreDirectional(t *testing.T) {
	s := newTestStore(t)
	users := newUserService(s)
	follows := &service.FollowService{Store: s}

	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")
	carol := createUser(t, users, "Carol", "carol@example.com")

	require.NoError(t, follows.Follow(context.Background(), alice.ID, bob.ID))
	require.NoError(t, follows.Follow(context.Background(), carol.ID, bob.ID))

	followers, err := follows.Followers(context.Background(), bob.ID, domain.Page(1))
	require.NoError(t, err)
	require.Len(t, followers.Items, 2)
	require.Equal(t, 2, followers.Total)

	following, err := follows.Following(context.Background(), alice.ID, domain.Page(1))
	require.NoError(t, err)
	require.Len(t, following.Items, 1)
	require.Equal(t, "Bob", following.Items[0].Name)

	// Bob follows nobody back.
	none, err := follows.Following(context.Background(), bob.ID, domain.Page(1))
	require.NoError(t, err)
	require.Empty(t, none.Items)
}

func TestUnfollowRemovesEdge(t *testing.T) {
	s := newTestStore(t)
	users := newUserService(s)
	follows := &service.FollowService{Store: s}
	alice := createUser(t, users, "Alice", "alice@example.com")
	bob := createUser(t, users, "Bob", "bob@example.com")

	require.NoError(t, follows.Follow(context.Background(), alice.ID, bob.ID))
	require.NoError(t, follows.Unfollow(context.Background(), alice.ID, bob.ID))

	followers, err := follows.Followers(context.Background(), bob.ID, domain.Page(1))
	require.NoError(t, err)
	require.Empty(t, followers.Items)
}
