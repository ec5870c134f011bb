package handlers

import (
	"net/http"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// ExportArticlesHandler handles GET /articles/export requests.
type ExportArticlesHandler struct {
	svc *appsvcs.Services
}

// NewExportArticlesHandler returns an ExportArticlesHandler backed by the given services.
func NewExportArticlesHandler(svc *appsvcs.Services) *ExportArticlesHandler {
	return &ExportArticlesHandler{svc: svc}
}

// Execute downloads the whole collection as a dated JSON backup.
//
//	@Summary	Export articles
//	@Tags		articles
//	@Produce	json
//	@Success	200	{array}		ArticleResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/articles/export [get]
func (h *ExportArticlesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.svc.Article.Export(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Attachment(w, "application/json; charset=utf-8", filename, data)
}
