package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	pkgvalidator "github.com/Tecnic226/Codis-Nous-TM/pkg/validator"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// PutArticleHandler handles PUT /articles/{id} requests.
type PutArticleHandler struct {
	svc *appsvcs.Services
}

// NewPutArticleHandler returns a PutArticleHandler backed by the given services.
func NewPutArticleHandler(svc *appsvcs.Services) *PutArticleHandler {
	return &PutArticleHandler{svc: svc}
}

// Execute edits an article in place. Matching against other articles is
// suppressed, so the edit never merges into a different record.
//
//	@Summary		Edit article
//	@Tags			articles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Article ID"
//	@Param			request	body		SubmitArticleRequest	true	"Edited fields"
//	@Success		200		{object}	SubmitArticleResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/articles/{id} [put]
func (h *PutArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[SubmitArticleRequest](w, r)
	if !ok {
		return
	}

	res, err := h.svc.Article.Submit(r.Context(), appsvcs.SubmitInput{
		ClientID:            req.ClientID,
		ClientName:          req.ClientName,
		ClientReferenceCode: req.ClientReferenceCode,
		InternalCode:        req.InternalCode,
		Order:               req.Order,
		EditingID:           chi.URLParam(r, "id"),
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSubmitResponse(res))
}
