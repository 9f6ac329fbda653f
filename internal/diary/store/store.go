package store

import (
	"context"
	"errors"

	"github.com/openroam/traveldiary/internal/diary/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. Sub-repositories keep concerns tidy and testable.
//
// Uniqueness rules (one account per email, one like per user+post, one
// follow edge per pair) are enforced by the schema and surface as
// ErrAlreadyExists from the create calls. Callers must not pre-check; a
// check-then-insert would race.
type Store interface {
	Users() Users
	Posts() Posts
	Follows() Follows
	Likes() Likes

	ApplyMigrations() error

	// Tx starts a transaction and returns a Tx-scoped Store. The caller
	// MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing on nil and
	// rolling back on error. List+count pairs run through this so totals
	// always match the returned window.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user. Returns ErrAlreadyExists when the
	// email is taken.
	CreateUser(ctx context.Context, u domain.User) error

	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// SearchUsersByName does a case-insensitive contains match. An empty
	// name matches everyone.
	SearchUsersByName(ctx context.Context, name string, offset, limit int) ([]domain.Summary, error)
	CountUsersByName(ctx context.Context, name string) (int, error)

	UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) error

	// DeleteUser cascades to posts, likes and follow edges (per schema).
	DeleteUser(ctx context.Context, id string) error
}

type Posts interface {
	CreatePost(ctx context.Context, p domain.Post) error

	// GetPostByID includes the like count and author name/photo.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	ListPublishedPosts(ctx context.Context, offset, limit int) ([]domain.Post, error)
	CountPublishedPosts(ctx context.Context) (int, error)

	// ListPostsByAuthors returns published posts authored by any of the
	// given users, newest first. An empty author set yields no rows.
	ListPostsByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]domain.Post, error)
	CountPostsByAuthors(ctx context.Context, authorIDs []string) (int, error)

	UpdatePost(ctx context.Context, id string, upd domain.PostUpdate) error
	SetPublished(ctx context.Context, id string, published bool) error
	DeletePost(ctx context.Context, id string) error
}

type Follows interface {
	// CreateFollow inserts a follow edge. Returns ErrAlreadyExists for a
	// duplicate edge.
	CreateFollow(ctx context.Context, followerID, followingID string) error

	// DeleteFollow removes the edge. Returns ErrNotFound when the edge
	// does not exist.
	DeleteFollow(ctx context.Context, followerID, followingID string) error

	ListFollowers(ctx context.Context, userID string, offset, limit int) ([]domain.Summary, error)
	CountFollowers(ctx context.Context, userID string) (int, error)

	ListFollowing(ctx context.Context, userID string, offset, limit int) ([]domain.Summary, error)
	CountFollowing(ctx context.Context, userID string) (int, error)

	// ListFollowingIDs returns the ids of everyone userID follows, for
	// the following feed.
	ListFollowingIDs(ctx context.Context, userID string) ([]string, error)
}

type Likes interface {
	// CreateLike inserts a like. Returns ErrAlreadyExists when the user
	// already liked the post.
	CreateLike(ctx context.Context, userID, postID string) error

	// DeleteLike removes a like. Returns ErrNotFound when absent.
	DeleteLike(ctx context.Context, userID, postID string) error

	// ListLikedPosts returns published posts the user liked, most
	// recently liked first.
	ListLikedPosts(ctx context.Context, userID string, offset, limit int) ([]domain.Post, error)
	CountLikedPosts(ctx context.Context, userID string) (int, error)
}
