package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/application/handlers"
	appsvcs "github.com/Tecnic226/Codis-Nous-TM/services/article/application/services"
)

// ArticleRoutes registers article, client and stats endpoints on the provided chi router.
func ArticleRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/articles", func(r chi.Router) {
			r.Get("/", handlers.NewListArticlesHandler(svcs).Execute)
			r.Post("/", handlers.NewPostArticleHandler(svcs).Execute)
			r.Get("/resolve", handlers.NewResolveArticleHandler(svcs).Execute)
			r.Post("/import", handlers.NewImportArticlesHandler(svcs).Execute)
			r.Get("/export", handlers.NewExportArticlesHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetArticleHandler(svcs).Execute)
				r.Put("/", handlers.NewPutArticleHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteArticleHandler(svcs).Execute)
				r.Post("/describe", handlers.NewDescribeArticleHandler(svcs).Execute)
			})
		})
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", handlers.NewListClientsHandler(svcs).Execute)
			r.Get("/{id}/suggested-code", handlers.NewGetSuggestedCodeHandler(svcs).Execute)
		})
		r.Get("/stats", handlers.NewGetStatsHandler(svcs).Execute)
	})
}
