package http

import (
	"context"
	"net/http"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is taken from the "Authorization" header when present, falling
// back to the session cookie so that browser page loads are authenticated
// without any client-side header handling. The token is validated via
// [service.AuthService.ParseToken]; on success the authenticated username is
// stored in the request context under [utils.UsernameCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - Neither an "Authorization" header nor a session cookie is present
//     ([ErrNoCredentialsProvided]).
//   - The header value cannot be parsed as a bearer token.
//   - The token is expired, malformed, or otherwise invalid.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := h.getTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		username, err := token.GetUsername()
		if err != nil {
			log.Err(err).Msg("token carries no subject")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated username in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromRequest extracts the raw JWT string from the request: the
// "Authorization" header wins, the session cookie is the fallback.
func (h *Handler) getTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return utils.ParseBearerToken(authHeader)
	}

	cookie, err := r.Cookie(h.cookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoCredentialsProvided
	}

	return cookie.Value, nil
}
