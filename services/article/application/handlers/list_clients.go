package handlers

import (
	"net/http"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// ClientResponse is one client registry entry.
type ClientResponse struct {
	ID   string `json:"id"   example:"001"`
	Name string `json:"name" example:"BUCHER"`
} // @name ClientResponse

// ListClientsHandler handles GET /clients requests.
type ListClientsHandler struct {
	svc *appsvcs.Services
}

// NewListClientsHandler returns a ListClientsHandler backed by the given services.
func NewListClientsHandler(svc *appsvcs.Services) *ListClientsHandler {
	return &ListClientsHandler{svc: svc}
}

// Execute lists the known clients: the built-in table plus any client seen on an article.
//
//	@Summary	List clients
//	@Tags		clients
//	@Produce	json
//	@Success	200	{array}		ClientResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/clients [get]
func (h *ListClientsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.Article.Clients(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientResponse{ID: c.ID, Name: c.Name})
	}
	httpx.JSON(w, http.StatusOK, out)
}
