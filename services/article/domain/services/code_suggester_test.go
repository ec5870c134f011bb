package services

import (
	"testing"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

func TestSuggestInternalCode(t *testing.T) {
	records := []*models.Article{
		{ClientID: "001"}, {ClientID: "001"}, {ClientID: "002"},
	}
	tests := []struct {
		clientID string
		want     string
	}{
		{"001", "001-0003"},
		{"002", "002-0002"},
		{"099", "099-0001"},
	}
	for _, tt := range tests {
		if got := SuggestInternalCode(records, tt.clientID); got != tt.want {
			t.Errorf("SuggestInternalCode(%q) = %q, want %q", tt.clientID, got, tt.want)
		}
	}
}

func TestComputeStats(t *testing.T) {
	records := []*models.Article{
		{Orders: []string{"OF-1", "OF-2"}},
		{Orders: nil},
		{Orders: []string{"OF-3"}},
	}
	clients := []models.Client{{ID: "001"}, {ID: "002"}}
	got := ComputeStats(records, clients)
	want := Stats{Articles: 3, Clients: 2, Orders: 3}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
