package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/internal/diary/store"
	"github.com/openroam/traveldiary/pkg/cryptox"
)

type UserService struct {
	Store  store.Store
	Hasher cryptox.Hasher
}

// Create hashes the password and persists the user. A duplicate email is
// detected by the store's unique constraint, never pre-checked, so there is
// no window between check and insert.
func (s *UserService) Create(ctx context.Context, name, email, password string) (domain.Profile, error) {
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.Profile{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Profile{}, ErrEmailTaken
		}
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}

// GetByID returns the public projection of a user.
func (s *UserService) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	user, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}

// ResolveSubject reports whether a token subject still maps to a live
// account. Satisfies the guard's resolver contract.
func (s *UserService) ResolveSubject(ctx context.Context, subject string) error {
	_, err := s.Store.Users().GetUserByID(ctx, subject)
	return err
}

// Search pages through users whose name contains the query,
// case-insensitively. The window and its total come from one transaction so
// they agree.
func (s *UserService) Search(ctx context.Context, name string, page domain.Page) (domain.Paginated[domain.Summary], error) {
	var result domain.Paginated[domain.Summary]
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		users, err := tx.Users().SearchUsersByName(ctx, name, page.Offset(), domain.PageSize)
		if err != nil {
			return err
		}
		total, err := tx.Users().CountUsersByName(ctx, name)
		if err != nil {
			return err
		}
		result = domain.NewPaginated(users, total)
		return nil
	})
	return result, err
}

// UserUpdateInput mirrors the mutable user fields; a plaintext password is
// rehashed before it reaches the store.
type UserUpdateInput struct {
	Name         *string
	Email        *string
	ProfilePhoto *string
	Password     *string
}

func (s *UserService) Update(ctx context.Context, id string, in UserUpdateInput) (domain.Profile, error) {
	upd := domain.UserUpdate{
		Name:         in.Name,
		Email:        in.Email,
		ProfilePhoto: in.ProfilePhoto,
	}
	if in.Password != nil {
		hash, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return domain.Profile{}, err
		}
		upd.PasswordHash = &hash
	}

	if err := s.Store.Users().UpdateUser(ctx, id, upd); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Profile{}, ErrEmailTaken
		}
		return domain.Profile{}, err
	}
	return s.GetByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.Store.Users().DeleteUser(ctx, id)
}
