package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openroam/traveldiary/internal/diary/service"
	"github.com/openroam/traveldiary/internal/diary/store"
	"github.com/openroam/traveldiary/pkg/httpx"
	"github.com/openroam/traveldiary/pkg/slogx"

	_ "github.com/openroam/traveldiary/api/diary" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	guard httpx.Middleware

	AuthService   *service.AuthService
	UserService   *service.UserService
	PostService   *service.PostService
	FollowService *service.FollowService
	LikeService   *service.LikeService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	// One guard for every protected route: verify the bearer token, then
	// confirm its subject still exists.
	r.guard = httpx.AuthnMiddleware(r.AuthService.Codec, r.UserService)

	r.registerAuth()
	r.registerUsers()
	r.registerPosts()
	r.registerFollows()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Travel Diary API
//	@version		0.1.0
//	@description	Social travel diary backend: accounts, diary posts, follows and likes.
//	@description
//	@description				Authentication uses HS256-signed JWT bearer tokens. Login returns an
//	@description				access/refresh token pair; refresh mints a new access token.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		UserService: r.UserService,
	}

	// Credential endpoints are the brute-force surface: strict limit by IP.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			r.guard,
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// Public signup endpoint - strict rate limit by IP.
	r.Mux.Handle("POST /users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.guard,
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /users", secured(h.HandleSearch))
	r.Mux.Handle("GET /users/{id}", secured(h.HandleGet))
	r.Mux.Handle("PATCH /users/{id}", secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /users/{id}", secured(h.HandleDelete))
}

func (r *Router) registerPosts() {
	posts := &PostsHandler{PostService: r.PostService}
	likes := &LikesHandler{LikeService: r.LikeService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.guard,
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /posts", secured(posts.HandleCreate))
	r.Mux.Handle("GET /posts", secured(posts.HandleList))
	// Literal segments before the {id} wildcard.
	r.Mux.Handle("GET /posts/following", secured(posts.HandleFeed))
	r.Mux.Handle("GET /posts/likes", secured(likes.HandleLiked))
	r.Mux.Handle("GET /posts/{id}", secured(posts.HandleGet))
	r.Mux.Handle("PUT /posts/{id}", secured(posts.HandleUpdate))
	r.Mux.Handle("PATCH /posts/{id}", secured(posts.HandlePublish))
	r.Mux.Handle("DELETE /posts/{id}", secured(posts.HandleDelete))

	r.Mux.Handle("POST /posts/{id}/like", secured(likes.HandleLike))
	r.Mux.Handle("DELETE /posts/{id}/unlike", secured(likes.HandleUnlike))
}

func (r *Router) registerFollows() {
	h := &FollowsHandler{FollowService: r.FollowService}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.guard,
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("POST /follow/{id}", secured(h.HandleFollow))
	r.Mux.Handle("DELETE /unfollow/{id}", secured(h.HandleUnfollow))
	r.Mux.Handle("GET /followers", secured(h.HandleFollowers))
	r.Mux.Handle("GET /following", secured(h.HandleFollowing))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
