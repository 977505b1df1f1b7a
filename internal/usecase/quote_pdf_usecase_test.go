package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"villaweb/internal/domain/entities"
	"villaweb/internal/domain/pricing"
	"villaweb/internal/usecase/interfaces"
	mock_interfaces "villaweb/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleDetail() QuoteDetail {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return QuoteDetail{
		Quote: entities.Quote{
			ID:          "q-1",
			Folio:       "VW-2025-000042",
			ClientName:  "Ana Rojas",
			ClientEmail: "ana@example.com",
			ProjectType: entities.ProjectTypeLanding,
			Timeline:    entities.TimelineFlexible,
			MinPrice:    190000,
			MaxPrice:    340000,
			Currency:    "CLP",
			Status:      entities.QuoteStatusDraft,
			CreatedAt:   now,
		},
		Answers: []entities.QuoteAnswer{
			{Key: "numPages", Value: "3"},
			{Key: "needsBlog", Value: "true"},
		},
		Items: []entities.QuoteItem{
			{ItemType: entities.ItemTypeBase, Name: "[Basic] Desarrollo web landing", Amount: 200000},
			{ItemType: entities.ItemTypeBase, Name: "[Pro] Desarrollo web landing", Amount: 250000},
			{ItemType: entities.ItemTypeBase, Name: "[Premium] Desarrollo web landing", Amount: 325000},
		},
	}
}

func TestQuotePDFUseCase_Export(t *testing.T) {
	t.Run("renderer not configured", func(t *testing.T) {
		uc := NewQuotePDFUseCase(nil, nil)
		_, err := uc.Export(context.Background(), "q-1")
		if !errors.Is(err, ErrPDFRendererNotConfigured) {
			t.Fatalf("expected ErrPDFRendererNotConfigured, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		events := mock_interfaces.NewMockIQuoteEventRepository(ctrl)
		renderer := mock_interfaces.NewMockIPDFRenderer(ctrl)
		quotes := NewQuoteUseCase(repo, events, pricing.NewEngine(pricing.DefaultConfig()))
		uc := NewQuotePDFUseCase(quotes, renderer)

		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Quote{}, nil)
		repo.EXPECT().GetByToken(gomock.Any(), "nope").Return(entities.Quote{}, nil)

		_, err := uc.Export(context.Background(), "nope")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("render error propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIPDFRenderer(ctrl)
		uc := NewQuotePDFUseCase(stubQuoteReader{detail: sampleDetail()}, renderer)

		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("render"))

		_, err := uc.Export(context.Background(), "q-1")
		if err == nil || err.Error() != "render" {
			t.Fatalf("expected render error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIPDFRenderer(ctrl)
		reader := &recordingQuoteReader{stubQuoteReader{detail: sampleDetail()}, ""}
		uc := NewQuotePDFUseCase(reader, renderer)

		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, html string) ([]byte, error) {
				if !strings.Contains(html, "VW-2025-000042") || !strings.Contains(html, "Ana Rojas") {
					t.Fatalf("document missing quote fields")
				}
				return []byte("%PDF-1.4"), nil
			},
		)

		res, err := uc.Export(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Filename != "Cotizacion-VW-2025-000042.pdf" {
			t.Fatalf("unexpected filename: %s", res.Filename)
		}
		if !bytes.HasPrefix(res.Content, []byte("%PDF")) {
			t.Fatalf("unexpected content: %q", res.Content)
		}
		if reader.recorded != string(entities.EventPDFDownloaded) {
			t.Fatalf("expected download event, got %q", reader.recorded)
		}
	})
}

func TestBuildQuoteHTML(t *testing.T) {
	t.Run("groups items by package", func(t *testing.T) {
		html, err := buildQuoteHTML(sampleDetail())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"Basic", "Pro", "Premium", "Desarrollo web landing"} {
			if !strings.Contains(html, want) {
				t.Fatalf("document missing %q", want)
			}
		}
		if strings.Contains(html, "[Basic]") {
			t.Fatalf("package prefix leaked into document")
		}
	})

	t.Run("formats amounts with thousand separators", func(t *testing.T) {
		html, err := buildQuoteHTML(sampleDetail())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(html, "$200.000") {
			t.Fatalf("expected formatted amount in document")
		}
	})
}

func TestFormatCLP(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{49000, "$49.000"},
		{1290000, "$1.290.000"},
	}
	for _, tc := range cases {
		if got := formatCLP(tc.in); got != tc.want {
			t.Fatalf("formatCLP(%d) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

// stubQuoteReader satisfies IQuoteUseCase for export tests without a full
// repository fixture.
type stubQuoteReader struct {
	detail QuoteDetail
}

func (s stubQuoteReader) Create(context.Context, entities.QuestionnaireAnswers, string) (CreateQuoteResult, error) {
	return CreateQuoteResult{}, errors.New("not implemented")
}

func (s stubQuoteReader) GetByIDOrToken(context.Context, string, string) (QuoteDetail, error) {
	return s.detail, nil
}

func (s stubQuoteReader) ChangeStatus(context.Context, string, entities.QuoteStatus) (entities.Quote, error) {
	return entities.Quote{}, errors.New("not implemented")
}

func (s stubQuoteReader) RecordEvent(context.Context, string, entities.EventType, map[string]string) error {
	return nil
}

func (s stubQuoteReader) ListEvents(context.Context, string) ([]entities.QuoteEvent, error) {
	return nil, nil
}

func (s stubQuoteReader) ListAdmin(context.Context, interfaces.QuoteFilter) (AdminList, error) {
	return AdminList{}, errors.New("not implemented")
}

type recordingQuoteReader struct {
	stubQuoteReader
	recorded string
}

func (r *recordingQuoteReader) RecordEvent(_ context.Context, _ string, event entities.EventType, _ map[string]string) error {
	r.recorded = string(event)
	return nil
}
