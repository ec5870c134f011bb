// Package services contains stateless domain services for the article bounded context.
// Domain services operate purely on domain types and never touch storage; callers
// pass in the current collection read from the repository.
package services

import (
	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

// ResolveMode tells Resolve whether the caller is editing an existing article.
type ResolveMode int

const (
	// ModeCreate resolves candidates against the collection.
	ModeCreate ResolveMode = iota
	// ModeEdit suppresses resolution so an article under edit never matches itself.
	ModeEdit
)

// Candidate is the natural key of a submitted article.
type Candidate struct {
	ClientID            string
	ClientReferenceCode string
}

// Resolve returns the article whose natural key equals the candidate's, or nil.
//
// A record matches when its ClientID equals the candidate's and both reference
// codes are equal after NormalizeCode. If several records match (only possible
// after an import), the first in listing order wins and the rest are shadowed.
// Blank references and ModeEdit never match.
func Resolve(records []*models.Article, c Candidate, mode ResolveMode) *models.Article {
	if mode == ModeEdit {
		return nil
	}
	ref := models.NormalizeCode(c.ClientReferenceCode)
	if ref == "" {
		return nil
	}
	for _, a := range records {
		if a.ClientID == c.ClientID && models.NormalizeCode(a.ClientReferenceCode) == ref {
			return a
		}
	}
	return nil
}

// PlaceholderInternalCode is the "{clientId}-NEW" fallback for new articles
// submitted without an internal code. Every uncoded article of a client gets
// the same value, so it is only used when explicitly enabled.
func PlaceholderInternalCode(clientID string) string {
	return models.NormalizeCode(clientID + "-NEW")
}
