package usecase

import "testing"

func TestGenerateFolio(t *testing.T) {
	t.Run("zero pads to six digits", func(t *testing.T) {
		if got := generateFolio(2024, 1); got != "VW-2024-000001" {
			t.Fatalf("unexpected folio: %s", got)
		}
		if got := generateFolio(2025, 123456); got != "VW-2025-123456" {
			t.Fatalf("unexpected folio: %s", got)
		}
	})
}

func TestNextSequence(t *testing.T) {
	t.Run("empty scan starts at one", func(t *testing.T) {
		if got := nextSequence(nil, 2024); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("max plus one", func(t *testing.T) {
		folios := []string{"VW-2024-000001", "VW-2024-000007", "VW-2024-000003"}
		if got := nextSequence(folios, 2024); got != 8 {
			t.Fatalf("expected 8, got %d", got)
		}
	})

	t.Run("other years ignored", func(t *testing.T) {
		folios := []string{"VW-2023-000099", "VW-2024-000002"}
		if got := nextSequence(folios, 2024); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("malformed suffixes skipped", func(t *testing.T) {
		folios := []string{"VW-2024-abc", "VW-2024-", "VW-2024-000004", "garbage"}
		if got := nextSequence(folios, 2024); got != 5 {
			t.Fatalf("expected 5, got %d", got)
		}
	})

	t.Run("survives round trip", func(t *testing.T) {
		folios := []string{}
		for i := 0; i < 5; i++ {
			seq := nextSequence(folios, 2024)
			folios = append(folios, generateFolio(2024, seq))
		}
		if folios[4] != "VW-2024-000005" {
			t.Fatalf("unexpected fifth folio: %s", folios[4])
		}
	})
}
