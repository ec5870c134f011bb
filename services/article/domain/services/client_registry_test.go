package services

import (
	"testing"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/models"
)

func TestResolveClients_SeedOnly(t *testing.T) {
	clients := ResolveClients(models.SeedClients, nil)
	if len(clients) != len(models.SeedClients) {
		t.Fatalf("expected %d clients, got %d", len(models.SeedClients), len(clients))
	}
	if clients[0].ID != "001" || clients[len(clients)-1].ID != "040" {
		t.Fatalf("unexpected order: first %q, last %q", clients[0].ID, clients[len(clients)-1].ID)
	}
}

func TestResolveClients_DerivedFromRecords(t *testing.T) {
	seed := map[string]string{"001": "BUCHER", "010": "BUCH"}
	records := []*models.Article{
		{ID: "1", ClientID: "099", ClientName: "NUEVO"},
		{ID: "2", ClientID: "099", ClientName: "OTRO NOMBRE"},
		{ID: "3", ClientID: "001", ClientName: "RENAMED"},
		{ID: "4", ClientID: "002", ClientName: "DOS"},
	}

	clients := ResolveClients(seed, records)

	want := []models.Client{
		{ID: "001", Name: "BUCHER"},
		{ID: "002", Name: "DOS"},
		{ID: "010", Name: "BUCH"},
		{ID: "099", Name: "NUEVO"},
	}
	if len(clients) != len(want) {
		t.Fatalf("expected %d clients, got %v", len(want), clients)
	}
	for i := range want {
		if clients[i] != want[i] {
			t.Errorf("client %d: got %+v, want %+v", i, clients[i], want[i])
		}
	}
}

func TestResolveClients_EveryRecordClientOnce(t *testing.T) {
	records := []*models.Article{
		{ClientID: "001"}, {ClientID: "077"}, {ClientID: "077"}, {ClientID: "abc"}, {ClientID: "001"},
	}
	clients := ResolveClients(models.SeedClients, records)

	seen := map[string]int{}
	for _, c := range clients {
		seen[c.ID]++
	}
	for _, a := range records {
		if seen[a.ClientID] != 1 {
			t.Errorf("client %q appears %d times, want 1", a.ClientID, seen[a.ClientID])
		}
	}
}

func TestCompareClientIDs(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"002", "010", -1},
		{"010", "002", 1},
		{"2", "10", -1},
		{"001", "001", 0},
		{"a9", "A10", -1},
		{"abc", "abd", -1},
		{"040", "abc", -1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := CompareClientIDs(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Fatalf("CompareClientIDs(%q, %q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestClientName(t *testing.T) {
	clients := []models.Client{{ID: "001", Name: "BUCHER"}}
	if got := ClientName(clients, "001"); got != "BUCHER" {
		t.Errorf("got %q", got)
	}
	if got := ClientName(clients, "999"); got != "" {
		t.Errorf("expected empty name for unknown id, got %q", got)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestResolveClients_SkipsBlankIDs(t *testing.T) {
	records := []*models.Article{
		{ID: "1"},
		{ID: "2", ClientID: "   ", ClientName: "GHOST"},
		{ID: "3", ClientID: "099", ClientName: "NUEVO"},
	}
	clients := ResolveClients(map[string]string{"001": "BUCHER"}, records)

	want := []models.Client{{ID: "001", Name: "BUCHER"}, {ID: "099", Name: "NUEVO"}}
	if len(clients) != len(want) {
		t.Fatalf("expected %v, got %v", want, clients)
	}
	for i := range want {
		if clients[i] != want[i] {
			t.Errorf("client %d: got %+v, want %+v", i, clients[i], want[i])
		}
	}
}
