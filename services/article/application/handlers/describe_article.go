package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// DescribeArticleHandler handles POST /articles/{id}/describe requests.
type DescribeArticleHandler struct {
	svc *appsvcs.Services
}

// NewDescribeArticleHandler returns a DescribeArticleHandler backed by the given services.
func NewDescribeArticleHandler(svc *appsvcs.Services) *DescribeArticleHandler {
	return &DescribeArticleHandler{svc: svc}
}

// Execute generates and stores an AI description for the article. Enrichment
// failures are stored as fixed fallback text and still answer 200.
//
//	@Summary	Describe article
//	@Tags		articles
//	@Produce	json
//	@Param		id	path		string	true	"Article ID"
//	@Success	200	{object}	ArticleResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/articles/{id}/describe [post]
func (h *DescribeArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Article.Describe(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toArticleResponse(a))
}
