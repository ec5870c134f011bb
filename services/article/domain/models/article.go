package models

import (
	"slices"
	"time"
)

// Article is the core aggregate: a client's part reference mapped to an internal
// tracking code and its manufacturing orders (OF).
//
// JSON field names are the persisted slot format and must not change.
type Article struct {
	ID                  string     `json:"id"`
	ClientID            string     `json:"clientId"`
	ClientName          string     `json:"clientName"` // denormalized at creation, never re-synced
	ClientReferenceCode string     `json:"clientReferenceCode"`
	InternalCode        string     `json:"internalCode"`
	Orders              []string   `json:"orders"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
	AIDescription       string     `json:"aiDescription,omitempty"`
}

// ArticleFields carries the caller-supplied fields of a new Article.
type ArticleFields struct {
	ClientID            string
	ClientName          string
	ClientReferenceCode string
	InternalCode        string
	Orders              []string
	AIDescription       string
}

// ArticlePatch is a partial update. Nil fields are left untouched.
// Orders replaces the whole list when non-nil; callers merge beforehand.
type ArticlePatch struct {
	ClientID            *string
	ClientName          *string
	ClientReferenceCode *string
	InternalCode        *string
	Orders              []string
	AIDescription       *string
}

// NewArticle constructs an Article with the given identity and creation time.
// Codes and orders are normalized.
func NewArticle(id string, f ArticleFields, now time.Time) *Article {
	return &Article{
		ID:                  id,
		ClientID:            f.ClientID,
		ClientName:          f.ClientName,
		ClientReferenceCode: NormalizeCode(f.ClientReferenceCode),
		InternalCode:        NormalizeCode(f.InternalCode),
		Orders:              NormalizeOrders(f.Orders),
		CreatedAt:           now.UTC(),
		AIDescription:       f.AIDescription,
	}
}

// Apply merges p onto the article and stamps UpdatedAt. ID and CreatedAt never change.
func (a *Article) Apply(p ArticlePatch, now time.Time) {
	if p.ClientID != nil {
		a.ClientID = *p.ClientID
	}
	if p.ClientName != nil {
		a.ClientName = *p.ClientName
	}
	if p.ClientReferenceCode != nil {
		a.ClientReferenceCode = NormalizeCode(*p.ClientReferenceCode)
	}
	if p.InternalCode != nil {
		a.InternalCode = NormalizeCode(*p.InternalCode)
	}
	if p.Orders != nil {
		a.Orders = NormalizeOrders(p.Orders)
	}
	if p.AIDescription != nil {
		a.AIDescription = *p.AIDescription
	}
	ts := now.UTC()
	a.UpdatedAt = &ts
}

// Clone returns a deep copy so callers cannot mutate stored state.
func (a *Article) Clone() *Article {
	c := *a
	c.Orders = slices.Clone(a.Orders)
	if a.UpdatedAt != nil {
		ts := *a.UpdatedAt
		c.UpdatedAt = &ts
	}
	return &c
}
