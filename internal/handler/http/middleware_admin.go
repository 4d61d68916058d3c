package http

import (
	"net/http"

	"github.com/scies/greenchem/internal/logger"
	"github.com/scies/greenchem/internal/utils"
	"github.com/scies/greenchem/models"
)

// adminOnly restricts a route to the built-in administrator account. It must
// run after [Handler.auth], which puts the authenticated username into the
// request context.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, ok := utils.GetUsernameFromContext(r.Context())
		if !ok {
			log.Error().Msg("no username in request context")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if username != models.AdminUsername {
			log.Warn().Str("username", username).Msg("admin-only endpoint rejected")
			http.Error(w, ErrAdminOnly.Error(), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
