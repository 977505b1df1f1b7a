package repository

import (
	"testing"
	"time"

	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase/interfaces"
)

func TestMatchesFilter(t *testing.T) {
	quote := entities.Quote{
		Folio:       "VW-2025-000007",
		ClientName:  "Ana Pérez",
		ClientEmail: "ana@example.com",
		ProjectType: entities.ProjectTypeEcommerce,
		Status:      entities.QuoteStatusSent,
	}

	t.Run("empty filter matches everything", func(t *testing.T) {
		if !matchesFilter(quote, interfaces.QuoteFilter{}) {
			t.Fatal("expected match")
		}
	})

	t.Run("status filter", func(t *testing.T) {
		if !matchesFilter(quote, interfaces.QuoteFilter{Status: entities.QuoteStatusSent}) {
			t.Fatal("expected SENT quote to match SENT filter")
		}
		if matchesFilter(quote, interfaces.QuoteFilter{Status: entities.QuoteStatusDraft}) {
			t.Fatal("expected SENT quote not to match DRAFT filter")
		}
	})

	t.Run("project type filter", func(t *testing.T) {
		if !matchesFilter(quote, interfaces.QuoteFilter{ProjectType: entities.ProjectTypeEcommerce}) {
			t.Fatal("expected ECOMMERCE quote to match")
		}
		if matchesFilter(quote, interfaces.QuoteFilter{ProjectType: entities.ProjectTypeLanding}) {
			t.Fatal("expected ECOMMERCE quote not to match LANDING filter")
		}
	})

	t.Run("search is case-insensitive over name, email and folio", func(t *testing.T) {
		for _, needle := range []string{"ana", "ANA@EXAMPLE", "vw-2025-000007"} {
			if !matchesFilter(quote, interfaces.QuoteFilter{Search: needle}) {
				t.Fatalf("expected search %q to match", needle)
			}
		}
		if matchesFilter(quote, interfaces.QuoteFilter{Search: "bruno"}) {
			t.Fatal("expected unrelated search not to match")
		}
	})

	t.Run("filters combine", func(t *testing.T) {
		filter := interfaces.QuoteFilter{
			Search: "ana",
			Status: entities.QuoteStatusSent,
		}
		if !matchesFilter(quote, filter) {
			t.Fatal("expected combined filter to match")
		}
		filter.Status = entities.QuoteStatusAccepted
		if matchesFilter(quote, filter) {
			t.Fatal("expected combined filter with wrong status not to match")
		}
	})
}

func TestEventSortKey(t *testing.T) {
	t.Run("exact-second timestamps keep a fixed-width fraction", func(t *testing.T) {
		exact := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		got := eventSortKey(exact, "e-1")
		want := "2025-03-01T12:00:00.000000000Z#e-1"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("lexical order follows chronological order across the fraction edge", func(t *testing.T) {
		earlier := time.Date(2025, 3, 1, 12, 0, 0, 500_000_000, time.UTC)
		later := time.Date(2025, 3, 1, 12, 0, 1, 0, time.UTC)

		if eventSortKey(earlier, "e-1") >= eventSortKey(later, "e-2") {
			t.Fatal("expected earlier event to sort before the exact-second one")
		}
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		santiago := time.FixedZone("CLT", -4*60*60)
		local := time.Date(2025, 3, 1, 8, 0, 0, 0, santiago)
		utc := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

		if eventSortKey(local, "e-1") != eventSortKey(utc, "e-1") {
			t.Fatal("expected zone-shifted timestamps to produce the same key")
		}
	})
}
