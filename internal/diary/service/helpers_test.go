package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openroam/traveldiary/internal/diary/domain"
	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/internal/diary/store"
	"github.com/openroam/traveldiary/internal/diary/store/drivers/sqlite"
	"github.com/openroam/traveldiary/pkg/jwtx"
)

// fakeHasher keeps service tests fast; real bcrypt is covered in cryptox.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "h:" + password, nil }

func (fakeHasher) Verify(password, encodedHash string) bool {
	return encodedHash == "h:"+password
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "diary.db"))
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newUserService(s store.Store) *service.UserService {
	return &service.UserService{Store: s, Hasher: fakeHasher{}}
}

func newAuthService(s store.Store) *service.AuthService {
	codec := jwtx.NewCodec(jwtx.Config{
		Secret:   "test-secret",
		Issuer:   "traveldiary-test",
		Audience: "traveldiary-clients",
	})
	return &service.AuthService{
		Store:      s,
		Hasher:     fakeHasher{},
		Codec:      codec,
		Users:      newUserService(s),
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
}

func createUser(t *testing.T, users *service.UserService, name, email string) domain.Profile {
	t.Helper()

	profile, err := users.Create(context.Background(), name, email, "secret123")
	require.NoError(t, err)
	return profile
}

func createPost(t *testing.T, posts *service.PostService, authorID, title string) domain.Post {
	t.Helper()

	post, err := posts.Create(context.Background(), authorID, title, "content of "+title, "")
	require.NoError(t, err)
	return post
}
