package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// SuggestedCodeResponse carries the proposed next internal code.
type SuggestedCodeResponse struct {
	ClientID     string `json:"clientId"     example:"001"`
	InternalCode string `json:"internalCode" example:"001-0043"`
} // @name SuggestedCodeResponse

// GetSuggestedCodeHandler handles GET /clients/{id}/suggested-code requests.
type GetSuggestedCodeHandler struct {
	svc *appsvcs.Services
}

// NewGetSuggestedCodeHandler returns a GetSuggestedCodeHandler backed by the given services.
func NewGetSuggestedCodeHandler(svc *appsvcs.Services) *GetSuggestedCodeHandler {
	return &GetSuggestedCodeHandler{svc: svc}
}

// Execute proposes the next internal code for a client.
//
//	@Summary	Suggest internal code
//	@Tags		clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	SuggestedCodeResponse
//	@Failure	422	{object}	ErrorResponse
//	@Router		/clients/{id}/suggested-code [get]
func (h *GetSuggestedCodeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")
	code, err := h.svc.Article.SuggestCode(r.Context(), clientID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, SuggestedCodeResponse{ClientID: clientID, InternalCode: code})
}
