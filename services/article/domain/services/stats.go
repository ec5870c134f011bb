package services

import "github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"

// Stats summarizes the collection for the dashboard counters.
type Stats struct {
	Articles int `json:"articles"`
	Clients  int `json:"clients"`
	Orders   int `json:"orders"`
}

// ComputeStats counts articles, registry clients and linked orders.
func ComputeStats(records []*models.Article, clients []models.Client) Stats {
	s := Stats{Articles: len(records), Clients: len(clients)}
	for _, a := range records {
		s.Orders += len(a.Orders)
	}
	return s
}
