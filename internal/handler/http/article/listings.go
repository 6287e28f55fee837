package article

import (
	"net/http"
	"strings"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/repository"
	artUC "newsdesk/internal/usecase/article"
)

type ApprovedHandler struct{ Svc *artUC.Service }

// ServeHTTP serves the public catalogue. Filters: search (title substring),
// publisher (exact), tags (comma-separated; every named tag must be present).
func (h ApprovedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var tags []string
	if raw := q.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	articles, err := h.Svc.ListApproved(r.Context(), repository.ArticleFilters{
		Search:    q.Get("search"),
		Publisher: q.Get("publisher"),
		Tags:      tags,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

type TrendingHandler struct{ Svc *artUC.Service }

// ServeHTTP serves the most viewed approved articles.
func (h TrendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.ListTrending(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

type PremiumHandler struct{ Svc *artUC.Service }

// ServeHTTP serves approved premium articles.
func (h PremiumHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.ListPremium(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

type MineHandler struct{ Svc *artUC.Service }

// ServeHTTP serves the caller's own articles, any status.
func (h MineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Svc.ListByAuthor(r.Context(), auth.EmailFromContext(r.Context()))
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
