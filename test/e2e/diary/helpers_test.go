package diary_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openroam/traveldiary/internal/diary/domain"
	httpapi "github.com/openroam/traveldiary/internal/diary/http"
	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/internal/diary/store/drivers/sqlite"
	"github.com/openroam/traveldiary/pkg/cryptox"
	"github.com/openroam/traveldiary/pkg/httpx"
	"github.com/openroam/traveldiary/pkg/jwtx"
	"github.com/openroam/traveldiary/pkg/slogx"
)

/*
 * End-to-end tests drive the full HTTP stack in process: real router, real
 * middleware chain, real SQLite store. Only the bcrypt cost is lowered to
 * keep the suite fast.
 */

// TestMain raises the credential-endpoint rate limits so rapid test requests
// do not trip the production profiles.
func TestMain(m *testing.M) {
	httpx.StrictLimit = httpx.RateLimitConfig{
		RequestsPerWindow: 1000,
		Window:            time.Minute,
		Burst:             1000,
	}
	httpx.ModerateLimit = httpx.StrictLimit

	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "diary.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	logger := slogx.New(slogx.Config{
		Service: "traveldiary-test",
		Env:     "test",
		Level:   "error",
		Format:  "text",
	})

	codec := jwtx.NewCodec(jwtx.Config{
		Secret:   "e2e-test-secret",
		Issuer:   "traveldiary-test",
		Audience: "traveldiary-clients",
	})
	hasher := cryptox.BcryptHasher{Cost: 4}

	userService := &service.UserService{Store: st, Hasher: hasher}
	authService := &service.AuthService{
		Store:      st,
		Hasher:     hasher,
		Codec:      codec,
		Users:      userService,
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}

	router := httpapi.NewRouter("test", st, logger)
	router.AuthService = authService
	router.UserService = userService
	router.PostService = &service.PostService{Store: st}
	router.FollowService = &service.FollowService{Store: st}
	router.LikeService = &service.LikeService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

// doJSON performs a request with an optional bearer token and JSON body,
// returning the status code and raw response body.
func doJSON(t *testing.T, srv *httptest.Server, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeInto(t *testing.T, raw []byte, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, v))
}

type errorBody struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// registerAndLogin creates an account and returns its profile plus a token
// pair.
func registerAndLogin(t *testing.T, srv *httptest.Server, name, email string) (domain.Profile, service.TokenPair) {
	t.Helper()

	status, raw := doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	var profile domain.Profile
	decodeInto(t, raw, &profile)

	status, raw = doJSON(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	var pair service.TokenPair
	decodeInto(t, raw, &pair)
	return profile, pair
}
