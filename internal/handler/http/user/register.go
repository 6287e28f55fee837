package user

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/auth"
	userUC "newsdesk/internal/usecase/user"
)

// Register registers all account-related HTTP handlers with the given mux.
// Public routes handle sign-up and status probes; profile routes require a
// token and the admin list requires the admin role.
func Register(mux *http.ServeMux, svc *userUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("POST   /users", CreateHandler{svc})
	mux.Handle("POST   /users/google", GoogleHandler{svc})
	mux.Handle("POST   /users/exists", ExistsHandler{svc})
	mux.Handle("GET    /users/count", CountHandler{svc})
	mux.Handle("GET    /users/premium-status", PremiumStatusHandler{svc})
	mux.Handle("GET    /users/admin-status", AdminStatusHandler{svc})

	mux.Handle("GET    /users", auth.Authz(auth.RequireAdmin(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})))
	mux.Handle("GET    /users/{email}", auth.Authz(GetHandler{svc}))
	mux.Handle("PATCH  /users/{email}", auth.Authz(UpdateProfileHandler{svc}))
	mux.Handle("PATCH  /users/{id}/admin", auth.Authz(auth.RequireAdmin(PromoteHandler{svc})))

	mux.Handle("PATCH  /subscriptions", auth.Authz(SubscribeHandler{svc}))
	mux.Handle("DELETE /subscriptions", UnsubscribeHandler{svc})
}
