package handlers

import (
	"net/http"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	pkgvalidator "github.com/Tecnic226/Codis-Nous-TM/pkg/validator"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// PostArticleHandler handles POST /articles requests.
type PostArticleHandler struct {
	svc *appsvcs.Services
}

// NewPostArticleHandler returns a PostArticleHandler backed by the given services.
func NewPostArticleHandler(svc *appsvcs.Services) *PostArticleHandler {
	return &PostArticleHandler{svc: svc}
}

// Execute submits a candidate article. An existing (client, reference) pair gets
// the order appended; anything else creates a new article.
//
//	@Summary		Submit article
//	@Description	Creates an article or appends the order to the one matching client and reference
//	@Tags			articles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SubmitArticleRequest	true	"Candidate article"
//	@Success		201		{object}	SubmitArticleResponse	"created"
//	@Success		200		{object}	SubmitArticleResponse	"order appended or unchanged"
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/articles [post]
func (h *PostArticleHandler) Execute(w http.ResponseWriter, r *http.Request) {
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
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	status := http.StatusOK
	if res.Outcome == appsvcs.OutcomeCreated {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, toSubmitResponse(res))
}
