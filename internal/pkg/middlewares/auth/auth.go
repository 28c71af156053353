package auth

import (
	"context"
	"net/http"
	"strings"

	"geleverd/internal/entities"
	"geleverd/pkg/logger"
)

type contextKey struct{}

var adminContextKey = contextKey{}

// AdminFromContext returns the admin stored by Middleware for the
// current request.
func AdminFromContext(ctx context.Context) (*entities.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey).(*entities.Admin)
	return admin, ok
}

// Middleware rejects requests without a valid bearer token and puts
// the resolved admin into the request context.
func Middleware(log handlerLogger, service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			admin, err := service.VerifyToken(r.Context(), token)
			if err != nil {
				log.With(
					logger.NewField("method", r.Method),
					logger.NewField("path", r.URL.Path),
					logger.NewField("remote_addr", r.RemoteAddr),
				).Warn("token verification failed")

				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminContextKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
