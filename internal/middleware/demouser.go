package middleware

import (
	"log/slog"
	"net/http"

	"github.com/pulsedash/pulse/internal/ctxkeys"
	"github.com/pulsedash/pulse/internal/db"
	"github.com/pulsedash/pulse/internal/service"
)

// DemoUser resolves the single demo account and adds it to the request
// context. The dashboard is single-user: every request acts on this
// account.
func DemoUser(userService *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := userService.ByID(db.DemoUserID)
			if err != nil {
				slog.Error("demo user missing", "error", err)
				http.Error(w, `{"error":"demo user not provisioned"}`, http.StatusServiceUnavailable)
				return
			}

			ctx := ctxkeys.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
