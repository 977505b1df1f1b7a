package response

import (
	"testing"
	"time"

	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase"
)

func TestFromQuoteDetail(t *testing.T) {
	now := time.Now().UTC()
	d := usecase.QuoteDetail{
		Quote: entities.Quote{
			ID:          "q-1",
			Folio:       "VW-2025-000001",
			ClientName:  "Ana",
			ProjectType: entities.ProjectTypeLanding,
			Timeline:    entities.TimelineFlexible,
			MinPrice:    190000,
			MaxPrice:    340000,
			Currency:    "CLP",
			Status:      entities.QuoteStatusDraft,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Answers: []entities.QuoteAnswer{{Key: "needsBlog", Value: "true"}},
		Items:   []entities.QuoteItem{{ItemType: entities.ItemTypeBase, Name: "[Basic] Desarrollo web landing", Amount: 200000}},
	}

	resp := FromQuoteDetail(d)
	if resp.ID != "q-1" || resp.Folio != "VW-2025-000001" || resp.Status != "DRAFT" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.ProjectType != "LANDING" || resp.Timeline != "FLEXIBLE_4PLUS_WEEKS" {
		t.Fatalf("unexpected enums: %+v", resp)
	}
	if len(resp.Answers) != 1 || resp.Answers[0].Key != "needsBlog" {
		t.Fatalf("unexpected answers: %+v", resp.Answers)
	}
	if len(resp.Items) != 1 || resp.Items[0].Amount != 200000 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
}

func TestFromQuoteEvents(t *testing.T) {
	events := []entities.QuoteEvent{
		{ID: "e-2", QuoteID: "q-1", Event: entities.EventViewed, Metadata: map[string]string{"source": "public"}},
		{ID: "e-1", QuoteID: "q-1", Event: entities.EventCreated},
	}
	resp := FromQuoteEvents(events)
	if len(resp) != 2 {
		t.Fatalf("expected 2 events, got %d", len(resp))
	}
	if resp[0].Event != "VIEWED" || resp[0].Metadata["source"] != "public" {
		t.Fatalf("unexpected first event: %+v", resp[0])
	}

	if got := FromQuoteEvents(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %+v", got)
	}
}

func TestFromAdminList(t *testing.T) {
	l := usecase.AdminList{
		Quotes: []entities.Quote{{ID: "q-1"}, {ID: "q-2"}},
		Total:  42,
		Page:   3,
		Limit:  20,
	}
	resp := FromAdminList(l)
	if len(resp.Quotes) != 2 || resp.Total != 42 || resp.Page != 3 || resp.Limit != 20 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
