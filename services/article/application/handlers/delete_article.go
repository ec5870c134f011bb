package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// DeleteArticleHandler handles DELETE /articles/{id} requests.
type DeleteArticleHandler struct {
	svc *appsvcs.Services
}

// NewDeleteArticleHandler returns a DeleteArticleHandler backed by the given services.
func NewDeleteArticleHandler(svc *appsvcs.Services) *DeleteArticleHandler {
	return &DeleteArticleHandler{svc: svc}
}

// Execute deletes an article. Unknown ids succeed as well.
//
//	@Summary	Delete article
//	@Tags		articles
//	@Param		id	path	string	true	"Article ID"
//	@Success	204
//	@Failure	500	{object}	ErrorResponse
//	@Router		/articles/{id} [delete]
func (h *DeleteArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Article.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
