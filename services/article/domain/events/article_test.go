package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Tecnic226/Codis-Nous-TM/services/article/domain/events"
)

func TestArticleEvent_JSONFieldNames(t *testing.T) {
	evt := events.ArticleEvent{
		EventID:             uuid.New(),
		Version:             1,
		ArticleID:           "a-1",
		ClientID:            "001",
		ClientName:          "BUCHER",
		ClientReferenceCode: "ABC-1",
		InternalCode:        "001-0001",
		Orders:              []string{"OF-5"},
		OccurredAt:          time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "article_id", "client_id", "client_name", "client_reference_code", "internal_code", "orders", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics_Distinct(t *testing.T) {
	topics := []string{
		events.TopicArticleCreated,
		events.TopicArticleUpdated,
		events.TopicArticleDeleted,
		events.TopicArticleImported,
	}
	seen := map[string]bool{}
	for _, topic := range topics {
		if topic == "" {
			t.Fatal("topic must not be empty")
		}
		if seen[topic] {
			t.Fatalf("duplicate topic %q", topic)
		}
		seen[topic] = true
	}
}
