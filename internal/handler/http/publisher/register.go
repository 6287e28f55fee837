// Package publisher provides HTTP handlers for the publisher directory and
// the per-publisher article report.
package publisher

import (
	"net/http"

	"newsdesk/internal/handler/http/auth"
	artUC "newsdesk/internal/usecase/article"
	pubUC "newsdesk/internal/usecase/publisher"
)

// Register registers all publisher-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *pubUC.Service, articles *artUC.Service) {
	mux.Handle("GET    /publishers", ListHandler{svc})
	mux.Handle("POST   /publishers", auth.Authz(auth.RequireAdmin(CreateHandler{svc})))
	mux.Handle("GET    /publishers/article-counts", auth.Authz(ArticleCountsHandler{articles}))
}
