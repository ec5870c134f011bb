package services

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

// ResolveClients merges the seed table with clients discovered in records.
//
// Seed entries always win. A client id absent from the seed takes the
// ClientName of its first record in listing order. Records with a blank client
// id are ignored. The result is sorted by CompareClientIDs.
func ResolveClients(seed map[string]string, records []*models.Article) []models.Client {
	names := make(map[string]string, len(seed)+len(records))
	for id, name := range seed {
		names[id] = name
	}
	for _, a := range records {
		if strings.TrimSpace(a.ClientID) == "" {
			continue
		}
		if _, ok := names[a.ClientID]; !ok {
			names[a.ClientID] = a.ClientName
		}
	}

	clients := make([]models.Client, 0, len(names))
	for id, name := range names {
		clients = append(clients, models.Client{ID: id, Name: name})
	}

	col := newClientCollator()
	slices.SortFunc(clients, func(a, b models.Client) int {
		return compareWith(col, a.ID, b.ID)
	})
	return clients
}

// ClientName returns the registry name for id, or "" when unknown.
func ClientName(clients []models.Client, id string) string {
	for _, c := range clients {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

// CompareClientIDs orders ids numeric-aware and case-insensitively, so "002"
// sorts before "010" and "a9" before "A10". Ids that collate equal fall back to
// byte order.
func CompareClientIDs(a, b string) int {
	return compareWith(newClientCollator(), a, b)
}

// newClientCollator is not safe for concurrent use; build one per sort.
func newClientCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.Loose)
}

func compareWith(col *collate.Collator, a, b string) int {
	if c := col.CompareString(a, b); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
