package services

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

const maxCodeLength = 64

// ValidateCode enforces business rules on a normalized code field:
//   - at most 64 characters
//   - no control characters
func ValidateCode(field, code string) error {
	if len(code) > maxCodeLength {
		return fmt.Errorf("%s must not exceed %d characters", field, maxCodeLength)
	}
	for _, r := range code {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s must not contain control characters", field)
		}
	}
	return nil
}

// ValidateCandidate checks the natural key of a submission.
func ValidateCandidate(c Candidate) error {
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("client id must be set")
	}
	ref := models.NormalizeCode(c.ClientReferenceCode)
	if ref == "" {
		return fmt.Errorf("client reference code must be set")
	}
	return ValidateCode("client reference code", ref)
}

// ValidateArticleForSave performs cross-field validation on a fully-built
// article before it is written.
func ValidateArticleForSave(a *models.Article) error {
	if a == nil {
		return fmt.Errorf("article cannot be nil")
	}
	if err := ValidateCandidate(Candidate{ClientID: a.ClientID, ClientReferenceCode: a.ClientReferenceCode}); err != nil {
		return err
	}
	if a.InternalCode == "" {
		return fmt.Errorf("internal code must be set")
	}
	if err := ValidateCode("internal code", a.InternalCode); err != nil {
		return err
	}
	for _, o := range a.Orders {
		if err := ValidateCode("order", o); err != nil {
			return err
		}
	}
	return nil
}
