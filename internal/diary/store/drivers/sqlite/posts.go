package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/openroam/traveldiary/internal/diary/domain"
)

type postsRepo struct {
	q dbtx
}

// Listings join the author and count likes in one query so handlers never
// need a second round trip.
const postColumns = `
	p.id, p.title, p.content, p.image_url, p.published, p.author_id,
	u.name, u.profile_photo,
	(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id),
	p.created_at, p.updated_at`

const postFrom = ` FROM posts p JOIN users u ON u.id = p.author_id`

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO posts (id, title, content, image_url, published, author_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Content, p.ImageURL, p.Published, p.AuthorID, now, now,
	)
	return mapConstraint(err)
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+postColumns+postFrom+` WHERE p.id = ?`, id)
	return scanPost(row)
}

func (r *postsRepo) ListPublishedPosts(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+postColumns+postFrom+`
		WHERE p.published = 1
		ORDER BY p.created_at DESC, p.id
		LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *postsRepo) CountPublishedPosts(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE published = 1`).Scan(&count)
	return count, err
}

func (r *postsRepo) ListPostsByAuthors(ctx context.Context, authorIDs []string, offset, limit int) ([]domain.Post, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	placeholders, args := inPlaceholders(authorIDs)
	args = append(args, limit, offset)

	rows, err := r.q.QueryContext(ctx,
		`SELECT `+postColumns+postFrom+`
		WHERE p.author_id IN (`+placeholders+`) AND p.published = 1
		ORDER BY p.created_at DESC, p.id
		LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	return collectPosts(rows)
}

func (r *postsRepo) CountPostsByAuthors(ctx context.Context, authorIDs []string) (int, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	placeholders, args := inPlaceholders(authorIDs)

	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE author_id IN (`+placeholders+`) AND published = 1`,
		args...,
	).Scan(&count)
	return count, err
}

func (r *postsRepo) UpdatePost(ctx context.Context, id string, upd domain.PostUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *upd.Content)
	}
	if upd.ImageURL != nil {
		sets = append(sets, "image_url = ?")
		args = append(args, *upd.ImageURL)
	}
	if upd.Published != nil {
		sets = append(sets, "published = ?")
		args = append(args, *upd.Published)
	}

	args = append(args, id)
	res, err := r.q.ExecContext(ctx,
		`UPDATE posts SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) SetPublished(ctx context.Context, id string, published bool) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE posts SET published = ?, updated_at = ? WHERE id = ?`,
		published, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Content, &p.ImageURL, &p.Published, &p.AuthorID,
		&p.AuthorName, &p.AuthorPhoto, &p.LikeCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func collectPosts(rows *sql.Rows) ([]domain.Post, error) {
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
