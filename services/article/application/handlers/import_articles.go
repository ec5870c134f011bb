package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// ImportArticlesResponse reports how many articles were imported.
type ImportArticlesResponse struct {
	Imported int `json:"imported" example:"12"`
} // @name ImportArticlesResponse

// ImportArticlesHandler handles POST /articles/import requests.
type ImportArticlesHandler struct {
	svc *appsvcs.Services
}

// NewImportArticlesHandler returns an ImportArticlesHandler backed by the given services.
func NewImportArticlesHandler(svc *appsvcs.Services) *ImportArticlesHandler {
	return &ImportArticlesHandler{svc: svc}
}

// Execute prepends a backup's articles to the collection. Nothing is deduplicated.
//
//	@Summary		Import articles
//	@Description	Body is a JSON array of articles as produced by export. Anything else leaves the data untouched.
//	@Tags			articles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		[]ArticleResponse	true	"Articles"
//	@Success		200		{object}	ImportArticlesResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Router			/articles/import [post]
func (h *ImportArticlesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		errhttp.WriteError(w, fmt.Errorf("read body: %w", err))
		return
	}

	n, err := h.svc.Article.Import(r.Context(), payload)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ImportArticlesResponse{Imported: n})
}
