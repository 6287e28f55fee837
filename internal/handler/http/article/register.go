package article

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/auth"
	artUC "newsdesk/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Public routes serve the approved catalogue; authoring routes require a
// token and moderation routes require the admin role.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET    /articles/approved", ApprovedHandler{svc})
	mux.Handle("GET    /articles/trending", TrendingHandler{svc})
	mux.Handle("PATCH  /articles/{id}/views", ViewHandler{svc})

	mux.Handle("GET    /articles", auth.Authz(auth.RequireAdmin(ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})))
	mux.Handle("POST   /articles", auth.Authz(SubmitHandler{svc}))
	mux.Handle("GET    /articles/premium", auth.Authz(PremiumHandler{svc}))
	mux.Handle("GET    /articles/mine", auth.Authz(MineHandler{svc}))
	mux.Handle("GET    /articles/{id}", auth.Authz(GetHandler{svc}))
	mux.Handle("PATCH  /articles/{id}", auth.Authz(UpdateHandler{svc}))
	mux.Handle("DELETE /articles/{id}", auth.Authz(DeleteHandler{svc}))

	mux.Handle("PATCH  /articles/{id}/approve", auth.Authz(auth.RequireAdmin(ApproveHandler{svc})))
	mux.Handle("PATCH  /articles/{id}/decline", auth.Authz(auth.RequireAdmin(DeclineHandler{svc})))
	mux.Handle("PATCH  /articles/{id}/premium", auth.Authz(auth.RequireAdmin(PremiumFlagHandler{svc})))
}
