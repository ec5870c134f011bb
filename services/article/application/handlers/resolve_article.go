package handlers

import (
	"net/http"
	"strconv"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// ResolveArticleResponse carries the article a candidate would hit, or null.
type ResolveArticleResponse struct {
	Match *ArticleResponse `json:"match"`
} // @name ResolveArticleResponse

// ResolveArticleHandler handles GET /articles/resolve requests.
type ResolveArticleHandler struct {
	svc *appsvcs.Services
}

// NewResolveArticleHandler returns a ResolveArticleHandler backed by the given services.
func NewResolveArticleHandler(svc *appsvcs.Services) *ResolveArticleHandler {
	return &ResolveArticleHandler{svc: svc}
}

// Execute previews the identity match for a (client, reference) candidate.
//
//	@Summary		Resolve article
//	@Description	Returns the existing article matching client and normalized reference. Always null while editing.
//	@Tags			articles
//	@Produce		json
//	@Param			clientId	query		string	true	"Client ID"
//	@Param			ref			query		string	true	"Client reference code"
//	@Param			editing		query		bool	false	"Suppress matching (edit mode)"
//	@Success		200			{object}	ResolveArticleResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/articles/resolve [get]
func (h *ResolveArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	editing := false
	if raw := q.Get("editing"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "editing must be a boolean")
			return
		}
		editing = v
	}

	match, err := h.svc.Article.Resolve(r.Context(), q.Get("clientId"), q.Get("ref"), editing)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	var resp ResolveArticleResponse
	if match != nil {
		a := toArticleResponse(match)
		resp.Match = &a
	}
	httpx.JSON(w, http.StatusOK, resp)
}
