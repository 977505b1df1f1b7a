package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"villaweb/internal/adapter/http/handlers/mocks"
	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client info", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "wizard").Return(usecase.CreateQuoteResult{}, usecase.ErrMissingClientInfo)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"projectType":"LANDING"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Create(gomock.Any(), gomock.Any(), "wizard").DoAndReturn(
			func(_ interface{}, a entities.QuestionnaireAnswers, _ string) (usecase.CreateQuoteResult, error) {
				if a.ClientName != "Ana" || a.ProjectType != entities.ProjectTypeLanding {
					t.Fatalf("unexpected answers: %+v", a)
				}
				if len(a.Sections.Sections) != 2 {
					t.Fatalf("expected 2 sections, got %+v", a.Sections)
				}
				if !a.Addons[entities.AddonSEOInicial] {
					t.Fatalf("expected seoInicial addon selected")
				}
				return usecase.CreateQuoteResult{ID: "q-1", Folio: "VW-2025-000001", PublicToken: "tok-1"}, nil
			},
		)

		body := `{"clientName":"Ana","clientEmail":"ana@example.com","clientWhatsapp":"+569","projectType":"LANDING","siteSections":["inicio","contacto"],"addons":{"seoInicial":true}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["folio"] != "VW-2025-000001" || resp["public_token"] != "tok-1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		uc.EXPECT().GetByIDOrToken(gomock.Any(), "nope", "public").Return(usecase.QuoteDetail{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		now := time.Now().UTC()
		uc.EXPECT().GetByIDOrToken(gomock.Any(), "tok-1", "public").Return(usecase.QuoteDetail{
			Quote: entities.Quote{ID: "q-1", Folio: "VW-2025-000001", Status: entities.QuoteStatusDraft, CreatedAt: now, UpdatedAt: now},
			Answers: []entities.QuoteAnswer{
				{Key: "needsBlog", Value: "true"},
			},
			Items: []entities.QuoteItem{
				{ItemType: entities.ItemTypeBase, Name: "[Basic] Desarrollo web landing", Amount: 200000},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/tok-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Folio   string `json:"folio"`
			Answers []struct {
				Key string `json:"key"`
			} `json:"answers"`
			Items []struct {
				Amount int64 `json:"amount"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Folio != "VW-2025-000001" || len(resp.Answers) != 1 || len(resp.Items) != 1 || resp.Items[0].Amount != 200000 {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestQuoteHandler_RecordQuoteEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejects lifecycle kinds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/events", h.RecordQuoteEvent)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/events", bytes.NewBufferString(`{"event":"STATUS_CHANGED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accepts whatsapp share", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/events", h.RecordQuoteEvent)

		uc.EXPECT().RecordEvent(gomock.Any(), "q-1", entities.EventSentWhatsapp, map[string]string{"source": "public"}).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/events", bytes.NewBufferString(`{"event":"SENT_WHATSAPP","metadata":{"source":"public"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/:id/events", h.RecordQuoteEvent)

		uc.EXPECT().RecordEvent(gomock.Any(), "nope", entities.EventPDFDownloaded, gomock.Any()).Return(usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/nope/events", bytes.NewBufferString(`{"event":"PDF_DOWNLOADED"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuoteEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/events", h.ListQuoteEvents)

		uc.EXPECT().ListEvents(gomock.Any(), "q-1").Return([]entities.QuoteEvent{
			{ID: "e-2", Event: entities.EventViewed},
			{ID: "e-1", Event: entities.EventCreated},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/events", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if len(resp) != 2 || resp[0].Event != "VIEWED" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/events", h.ListQuoteEvents)

		uc.EXPECT().ListEvents(gomock.Any(), "q-1").Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/events", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
