package handlers

import (
	"net/http"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// ListArticlesHandler handles GET /articles requests.
type ListArticlesHandler struct {
	svc *appsvcs.Services
}

// NewListArticlesHandler returns a ListArticlesHandler backed by the given services.
func NewListArticlesHandler(svc *appsvcs.Services) *ListArticlesHandler {
	return &ListArticlesHandler{svc: svc}
}

// Execute lists articles, newest first, optionally filtered by a search term.
//
//	@Summary		List articles
//	@Description	Lists all articles newest first. q filters case-insensitively across codes, client and orders.
//	@Tags			articles
//	@Produce		json
//	@Param			q	query		string	false	"Search term"
//	@Success		200	{array}		ArticleResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/articles [get]
func (h *ListArticlesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.Article.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toArticleResponses(records))
}
