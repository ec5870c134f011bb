package handlers

import (
	"time"

	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

// ArticleResponse is the JSON shape of a single article.
type ArticleResponse struct {
	ID                  string     `json:"id"                      example:"123e4567-e89b-12d3-a456-426614174000"`
	ClientID            string     `json:"clientId"                example:"001"`
	ClientName          string     `json:"clientName"              example:"BUCHER"`
	ClientReferenceCode string     `json:"clientReferenceCode"     example:"ABC-123"`
	InternalCode        string     `json:"internalCode"            example:"001-0042"`
	Orders              []string   `json:"orders"                  example:"OF-1001,OF-1002"`
	CreatedAt           time.Time  `json:"createdAt"               example:"2024-01-15T10:30:00Z"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"     example:"2024-01-16T09:00:00Z"`
	AIDescription       string     `json:"aiDescription,omitempty" example:"Brida de acero inoxidable"`
} // @name ArticleResponse

// SubmitArticleRequest is the request body for POST /articles and PUT /articles/{id}.
type SubmitArticleRequest struct {
	ClientID            string `json:"clientId"            validate:"notblank,max=16"  example:"001"`
	ClientName          string `json:"clientName"          validate:"omitempty,max=255" example:"BUCHER"`
	ClientReferenceCode string `json:"clientReferenceCode" validate:"notblank,max=255" example:"abc-123"`
	InternalCode        string `json:"internalCode"        validate:"omitempty,max=64" example:"001-0042"`
	Order               string `json:"order"               validate:"omitempty,max=64" example:"of-1001"`
} // @name SubmitArticleRequest

// SubmitArticleResponse reports the stored article and what the submit did.
type SubmitArticleResponse struct {
	Outcome string          `json:"outcome" example:"created" enums:"created,orders_appended,edited,unchanged"`
	Article ArticleResponse `json:"article"`
} // @name SubmitArticleResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"article not found"`
} // @name ErrorResponse

func toArticleResponse(a *models.Article) ArticleResponse {
	orders := a.Orders
	if orders == nil {
		orders = []string{}
	}
	return ArticleResponse{
		ID:                  a.ID,
		ClientID:            a.ClientID,
		ClientName:          a.ClientName,
		ClientReferenceCode: a.ClientReferenceCode,
		InternalCode:        a.InternalCode,
		Orders:              orders,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
		AIDescription:       a.AIDescription,
	}
}

func toArticleResponses(records []*models.Article) []ArticleResponse {
	out := make([]ArticleResponse, 0, len(records))
	for _, a := range records {
		out = append(out, toArticleResponse(a))
	}
	return out
}

func toSubmitResponse(res *appsvcs.SubmitResult) SubmitArticleResponse {
	return SubmitArticleResponse{
		Outcome: string(res.Outcome),
		Article: toArticleResponse(res.Article),
	}
}
