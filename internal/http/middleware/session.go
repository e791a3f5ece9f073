package middlewarex

import (
	"errors"
	"net/http"
	"strings"

	"codearea/internal/store/repositories"

	"github.com/rs/zerolog/log"
)

// Session resolves the caller's session token into a user. Requests without
// a token, or with an unknown one, continue anonymously; handlers decide
// whether a user is required. A nil store disables sessions.
func Session(store repositories.SessionStore, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := sessionToken(r, cookieName)
			if store == nil || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			u, err := store.Lookup(r.Context(), token)
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				next.ServeHTTP(w, r)
				return
			case err != nil:
				log.Error().Err(err).Msg("session lookup failed")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"error":"session store unavailable"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}
