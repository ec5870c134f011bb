// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/Tecnic226/Codis-Nous-TM/pkg/httpx"
	articledomain "github.com/Tecnic226/Codis-Nous-TM/services/article/domain"
)

var hideInternal atomic.Bool

// HideInternalErrors replaces 5xx messages with the status text. Enable in production.
func HideInternalErrors(hide bool) {
	hideInternal.Store(hide)
}

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, hideInternal.Load()))
}

func mapErrorToStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, articledomain.ErrArticleNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, articledomain.ErrImportMalformed):
		return http.StatusBadRequest // 400
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge // 413
	case errors.Is(err, articledomain.ErrInternalCodeRequired),
		errors.Is(err, articledomain.ErrInvalidArticle):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
