package handlers

import (
	"net/http"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/errhttp"
	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// StatsResponse holds the dashboard counters.
type StatsResponse struct {
	Articles int `json:"articles" example:"120"`
	Clients  int `json:"clients"  example:"17"`
	Orders   int `json:"orders"   example:"340"`
} // @name StatsResponse

// GetStatsHandler handles GET /stats requests.
type GetStatsHandler struct {
	svc *appsvcs.Services
}

// NewGetStatsHandler returns a GetStatsHandler backed by the given services.
func NewGetStatsHandler(svc *appsvcs.Services) *GetStatsHandler {
	return &GetStatsHandler{svc: svc}
}

// Execute returns article, client and order counts.
//
//	@Summary	Statistics
//	@Tags		stats
//	@Produce	json
//	@Success	200	{object}	StatsResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/stats [get]
func (h *GetStatsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Article.Stats(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, StatsResponse{Articles: st.Articles, Clients: st.Clients, Orders: st.Orders})
}
