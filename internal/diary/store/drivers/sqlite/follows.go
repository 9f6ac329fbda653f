package sqlite

import (
	"context"
	"time"

	"github.com/openroam/traveldiary/internal/diary/domain"
)

type followsRepo struct {
	q dbtx
}

func (r *followsRepo) CreateFollow(ctx context.Context, followerID, followingID string) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO follows (follower_id, following_id, created_at)
		VALUES (?, ?, ?)`,
		followerID, followingID, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *followsRepo) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM follows WHERE follower_id = ? AND following_id = ?`,
		followerID, followingID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *followsRepo) ListFollowers(ctx context.Context, userID string, offset, limit int) ([]domain.Summary, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT u.id, u.name, u.profile_photo
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = ?
		ORDER BY f.created_at DESC, u.id
		LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectSummaries(rows)
}

func (r *followsRepo) CountFollowers(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE following_id = ?`, userID).Scan(&count)
	return count, err
}

func (r *followsRepo) ListFollowing(ctx context.Context, userID string, offset, limit int) ([]domain.Summary, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT u.id, u.name, u.profile_photo
		FROM follows f
		JOIN users u ON u.id = f.following_id
		WHERE f.follower_id = ?
		ORDER BY f.created_at DESC, u.id
		LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectSummaries(rows)
}

func (r *followsRepo) CountFollowing(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM follows WHERE follower_id = ?`, userID).Scan(&count)
	return count, err
}

func (r *followsRepo) ListFollowingIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT following_id FROM follows WHERE follower_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
