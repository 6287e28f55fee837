package publisher

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
	pubUC "newsdesk/internal/usecase/publisher"
)

type ListHandler struct{ Svc *pubUC.Service }

// ServeHTTP lists all publishers, ordered by name.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]DTO, 0, len(publishers))
	for _, pub := range publishers {
		dtos = append(dtos, DTO{
			ID:        pub.ID,
			Name:      pub.Name,
			LogoURL:   pub.LogoURL,
			CreatedAt: pub.CreatedAt,
		})
	}
	respond.JSON(w, http.StatusOK, dtos)
}

// ArticleCountDTO is one row of the per-publisher article report.
type ArticleCountDTO struct {
	PublisherName string `json:"publisher_name"`
	LogoURL       string `json:"logo_url,omitempty"`
	ArticleCount  int64  `json:"article_count"`
}

type ArticleCountsHandler struct{ Articles *artUC.Service }

// ServeHTTP reports how many articles each publisher holds. Publishers with
// no articles are absent from the report.
func (h ArticleCountsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Articles.CountByPublisher(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := make([]ArticleCountDTO, 0, len(counts))
	for _, c := range counts {
		dtos = append(dtos, ArticleCountDTO{
			PublisherName: c.PublisherName,
			LogoURL:       c.LogoURL,
			ArticleCount:  c.ArticleCount,
		})
	}
	respond.JSON(w, http.StatusOK, dtos)
}
