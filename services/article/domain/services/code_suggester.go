package services

import (
	"fmt"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

// SuggestInternalCode proposes "{clientId}-NNNN" where NNNN is the client's
// article count plus one, zero-padded to four digits. It is a hint only: the
// count ignores gaps left by deletions, so the suggestion may already be taken.
func SuggestInternalCode(records []*models.Article, clientID string) string {
	n := 0
	for _, a := range records {
		if a.ClientID == clientID {
			n++
		}
	}
	return models.NormalizeCode(fmt.Sprintf("%s-%04d", clientID, n+1))
}
