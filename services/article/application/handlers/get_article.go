package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// GetArticleHandler handles GET /articles/{id} requests.
type GetArticleHandler struct {
	svc *appsvcs.Services
}

// NewGetArticleHandler returns a GetArticleHandler backed by the given services.
func NewGetArticleHandler(svc *appsvcs.Services) *GetArticleHandler {
	return &GetArticleHandler{svc: svc}
}

// Execute returns one article.
//
//	@Summary	Get article
//	@Tags		articles
//	@Produce	json
//	@Param		id	path		string	true	"Article ID"
//	@Success	200	{object}	ArticleResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/articles/{id} [get]
func (h *GetArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Article.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toArticleResponse(a))
}
