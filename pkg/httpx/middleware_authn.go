package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/openroam/traveldiary/pkg/jwtx"
	"github.com/openroam/traveldiary/pkg/slogx"
)

// TokenVerifier validates a compact token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (jwtx.Claims, error)
}

// SubjectResolver checks that a token subject still maps to a live account.
// A non-nil error rejects the request; tokens minted for since-deleted users
// fail here even though their signature still verifies.
type SubjectResolver interface {
	ResolveSubject(ctx context.Context, subject string) error
}

// AuthnMiddleware is the authorization guard. Three gates, in order: bearer
// extraction, token verification, subject resolution. Any gate failing ends
// the request with a uniform 401; the internal cause is logged but never
// surfaced, so callers cannot probe which check rejected them.
func AuthnMiddleware(v TokenVerifier, resolver SubjectResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := extractBearer(r)
			if raw == "" {
				WriteError(w, http.StatusUnauthorized, "Token not found")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			if err := resolver.ResolveSubject(ctx, claims.Subject); err != nil {
				log.Warn("token subject not resolvable", "sub", claims.Subject, "err", err)
				WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearer takes the second space-delimited segment of the
// Authorization header. Missing header or missing segment yields "".
func extractBearer(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if authz == "" {
		return ""
	}
	parts := strings.SplitN(authz, " ", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
