package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/openroam/traveldiary/internal/diary/domain"
)

type likesRepo struct {
	q dbtx
}

func (r *likesRepo) CreateLike(ctx context.Context, userID, postID string) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO likes (user_id, post_id, created_at)
		VALUES (?, ?, ?)`,
		userID, postID, time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *likesRepo) DeleteLike(ctx context.Context, userID, postID string) error {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = ? AND post_id = ?`, userID, postID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *likesRepo) ListLikedPosts(ctx context.Context, userID string, offset, limit int) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+postColumns+`
		FROM likes k
		JOIN posts p ON p.id = k.post_id
		JOIN users u ON u.id = p.author_id
		WHERE k.user_id = ? AND p.published = 1
		ORDER BY k.created_at DESC, p.id
		LIMIT ? OFFSET ?`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *likesRepo) CountLikedPosts(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM likes k
		JOIN posts p ON p.id = k.post_id
		WHERE k.user_id = ? AND p.published = 1`,
		userID,
	).Scan(&count)
	return count, err
}

func collectSummaries(rows *sql.Rows) ([]domain.Summary, error) {
	defer rows.Close()

	var out []domain.Summary
	for rows.Next() {
		var s domain.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.ProfilePhoto); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
