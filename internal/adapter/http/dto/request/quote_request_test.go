package request

import (
	"testing"

	"villaweb/internal/domain/entities"
)

func TestCreateQuoteRequest_ToAnswers(t *testing.T) {
	r := CreateQuoteRequest{
		ClientName:     "Ana",
		ClientEmail:    "ana@example.com",
		ClientWhatsapp: "+569",
		ProjectType:    "ECOMMERCE",
		Industry:       "retail",
		Timeline:       "RUSH_7_10_DAYS",
		SiteSections:   []string{"inicio", "catalogo", "contacto"},
		NeedsBlog:      true,
		MultiLanguage:  true,
		Addons:         map[string]bool{"seoInicial": true, "copywriting": false},
	}

	a := r.ToAnswers()
	if a.ClientName != "Ana" || a.ProjectType != entities.ProjectTypeEcommerce || a.Timeline != entities.TimelineRush {
		t.Fatalf("unexpected answers: %+v", a)
	}
	if a.Sections.Count() != 3 {
		t.Fatalf("expected 3 sections, got %d", a.Sections.Count())
	}
	if !a.NeedsBlog || !a.MultiLanguage || a.NeedsLogin {
		t.Fatalf("unexpected flags: %+v", a)
	}
	if !a.Addons[entities.AddonSEOInicial] || a.Addons[entities.AddonCopywriting] {
		t.Fatalf("unexpected addons: %+v", a.Addons)
	}
}

func TestCreateQuoteRequest_ToAnswersLegacyPages(t *testing.T) {
	r := CreateQuoteRequest{NumPages: 5}
	a := r.ToAnswers()
	if len(a.Sections.Sections) != 0 {
		t.Fatalf("expected no explicit sections")
	}
	if a.Sections.Count() != 5 {
		t.Fatalf("expected legacy count 5, got %d", a.Sections.Count())
	}

	r2 := CreateQuoteRequest{}
	if got := r2.ToAnswers().Sections.Count(); got != 1 {
		t.Fatalf("expected minimum count 1, got %d", got)
	}
}
