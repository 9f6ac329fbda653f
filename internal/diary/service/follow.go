package service

import (
	"context"
	"errors"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/internal/diary/store"
)

type FollowService struct {
	Store store.Store
}

// Follow adds a follow edge. The target is looked up first so a missing user
// surfaces as not-found rather than a constraint failure.
func (s *FollowService) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return ErrSelfFollow
	}
	if _, err := s.Store.Users().GetUserByID(ctx, followingID); err != nil {
		return err
	}
	if err := s.Store.Follows().CreateFollow(ctx, followerID, followingID); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrAlreadyFollowing
		}
		return err
	}
	return nil
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID string) error {
	if err := s.Store.Follows().DeleteFollow(ctx, followerID, followingID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFollowing
		}
		return err
	}
	return nil
}

// Followers pages through the accounts following userID, newest edge first.
func (s *FollowService) Followers(ctx context.Context, userID string, page domain.Page) (domain.Paginated[domain.Summary], error) {
	var result domain.Paginated[domain.Summary]
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		users, err := tx.Follows().ListFollowers(ctx, userID, page.Offset(), domain.PageSize)
		if err != nil {
			return err
		}
		total, err := tx.Follows().CountFollowers(ctx, userID)
		if err != nil {
			return err
		}
		result = domain.NewPaginated(users, total)
		return nil
	})
	return result, err
}

// Following pages through the accounts userID follows.
func (s *FollowService) Following(ctx context.Context, userID string, page domain.Page) (domain.Paginated[domain.Summary], error) {
	var result domain.Paginated[domain.Summary]
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		users, err := tx.Follows().ListFollowing(ctx, userID, page.Offset(), domain.PageSize)
		if err != nil {
			return err
		}
		total, err := tx.Follows().CountFollowing(ctx, userID)
		if err != nil {
			return err
		}
		result = domain.NewPaginated(users, total)
		return nil
	})
	return result, err
}
