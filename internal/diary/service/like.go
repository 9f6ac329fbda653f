package service

import (
	"context"
	"errors"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/internal/diary/store"
)

type LikeService struct {
	Store store.Store
}

// Like marks a post as liked. The post is fetched first so liking a missing
// post is a clean not-found.
func (s *LikeService) Like(ctx context.Context, userID, postID string) error {
	if _, err := s.Store.Posts().GetPostByID(ctx, postID); err != nil {
		return err
	}
	if err := s.Store.Likes().CreateLike(ctx, userID, postID); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrAlreadyLiked
		}
		return err
	}
	return nil
}

// Unlike removes a like. Removing one that was never set is a no-op; the end
// state is the same either way.
func (s *LikeService) Unlike(ctx context.Context, userID, postID string) error {
	if _, err := s.Store.Posts().GetPostByID(ctx, postID); err != nil {
		return err
	}
	err := s.Store.Likes().DeleteLike(ctx, userID, postID)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

// LikedPosts pages through published posts the user has liked, most recently
// liked first.
func (s *LikeService) LikedPosts(ctx context.Context, userID string, page domain.Page) (domain.Paginated[domain.Post], error) {
	var result domain.Paginated[domain.Post]
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		posts, err := tx.Likes().ListLikedPosts(ctx, userID, page.Offset(), domain.PageSize)
		if err != nil {
			return err
		}
		total, err := tx.Likes().CountLikedPosts(ctx, userID)
		if err != nil {
			return err
		}
		result = domain.NewPaginated(posts, total)
		return nil
	})
	return result, err
}
