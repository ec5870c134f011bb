package services

import (
	"strings"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

// Filter returns the records whose internal code, client reference, client name
// or any order contains term, ignoring case. Relative order is preserved.
// A blank term returns records unchanged.
func Filter(records []*models.Article, term string) []*models.Article {
	if strings.TrimSpace(term) == "" {
		return records
	}
	needle := strings.ToLower(strings.TrimSpace(term))
	out := make([]*models.Article, 0, len(records))
	for _, a := range records {
		if matches(a, needle) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a *models.Article, needle string) bool {
	if contains(a.InternalCode, needle) || contains(a.ClientReferenceCode, needle) || contains(a.ClientName, needle) {
		return true
	}
	for _, o := range a.Orders {
		if contains(o, needle) {
			return true
		}
	}
	return false
}

func contains(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}
