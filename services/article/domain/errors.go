package domain

import "errors"

// Sentinel errors for the article domain. Use errors.Is() to check these.
var (
	// ErrArticleNotFound indicates the requested article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticle indicates the article input violates domain constraints.
	ErrInvalidArticle = errors.New("invalid article")

	// ErrInternalCodeRequired indicates a new article was submitted without an internal code.
	ErrInternalCodeRequired = errors.New("internal code required for new article")

	// ErrImportMalformed indicates an import payload is not a collection of articles.
	ErrImportMalformed = errors.New("import payload must be an array of articles")

	// ErrStorageCorrupt indicates the persisted slot could not be parsed.
	// The store logs it and serves an empty collection instead of returning it.
	ErrStorageCorrupt = errors.New("stored article collection is corrupt")
)
