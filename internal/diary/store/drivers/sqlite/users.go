package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/openroam/traveldiary/internal/diary/domain"
)

type usersRepo struct {
	q dbtx
}

const userColumns = `id, name, email, profile_photo, password_hash, created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (id, name, email, profile_photo, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.ProfilePhoto, u.PasswordHash, now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) SearchUsersByName(ctx context.Context, name string, offset, limit int) ([]domain.Summary, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, profile_photo
		FROM users
		WHERE name LIKE ? ESCAPE '\'
		ORDER BY name, id
		LIMIT ? OFFSET ?`,
		containsPattern(name), limit, offset,
	)
	if err != nil {
		return nil, err
	}
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

func (r *usersRepo) CountUsersByName(ctx context.Context, name string) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE name LIKE ? ESCAPE '\'`,
		containsPattern(name),
	).Scan(&count)
	return count, err
}

func (r *usersRepo) UpdateUser(ctx context.Context, id string, upd domain.UserUpdate) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.ProfilePhoto != nil {
		sets = append(sets, "profile_photo = ?")
		args = append(args, *upd.ProfilePhoto)
	}
	if upd.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *upd.PasswordHash)
	}

	args = append(args, id)
	res, err := r.q.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.ProfilePhoto, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

// containsPattern builds a case-insensitive LIKE contains pattern, escaping
// user-supplied wildcards.
func containsPattern(name string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(name)
	return "%" + escaped + "%"
}
