package response

import (
	"time"

	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase"
)

type CreateQuoteResponse struct {
	ID          string `json:"id"`
	Folio       string `json:"folio"`
	PublicToken string `json:"public_token"`
}

func FromCreateResult(r usecase.CreateQuoteResult) CreateQuoteResponse {
	return CreateQuoteResponse{
		ID:          r.ID,
		Folio:       r.Folio,
		PublicToken: r.PublicToken,
	}
}

type QuoteResponse struct {
	ID             string    `json:"id"`
	Folio          string    `json:"folio"`
	ClientName     string    `json:"client_name"`
	ClientEmail    string    `json:"client_email"`
	ClientWhatsapp string    `json:"client_whatsapp"`
	ProjectType    string    `json:"project_type"`
	Industry       string    `json:"industry,omitempty"`
	Timeline       string    `json:"timeline"`
	MinPrice       int64     `json:"min_price"`
	MaxPrice       int64     `json:"max_price"`
	Currency       string    `json:"currency"`
	Status         string    `json:"status"`
	PublicToken    string    `json:"public_token"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		Folio:          q.Folio,
		ClientName:     q.ClientName,
		ClientEmail:    q.ClientEmail,
		ClientWhatsapp: q.ClientWhatsapp,
		ProjectType:    string(q.ProjectType),
		Industry:       q.Industry,
		Timeline:       string(q.Timeline),
		MinPrice:       q.MinPrice,
		MaxPrice:       q.MaxPrice,
		Currency:       q.Currency,
		Status:         string(q.Status),
		PublicToken:    q.PublicToken,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

type QuoteAnswerResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type QuoteItemResponse struct {
	ItemType string `json:"item_type"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
}

// QuoteDetailResponse is the public share-link payload: the quote header plus
// its answers and itemized package lines.
type QuoteDetailResponse struct {
	QuoteResponse
	Answers []QuoteAnswerResponse `json:"answers"`
	Items   []QuoteItemResponse   `json:"items"`
}

func FromQuoteDetail(d usecase.QuoteDetail) QuoteDetailResponse {
	answers := make([]QuoteAnswerResponse, 0, len(d.Answers))
	for _, a := range d.Answers {
		answers = append(answers, QuoteAnswerResponse{Key: a.Key, Value: a.Value})
	}
	items := make([]QuoteItemResponse, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, QuoteItemResponse{
			ItemType: string(it.ItemType),
			Name:     it.Name,
			Amount:   it.Amount,
		})
	}
	return QuoteDetailResponse{
		QuoteResponse: FromQuote(d.Quote),
		Answers:       answers,
		Items:         items,
	}
}

type QuoteEventResponse struct {
	ID        string            `json:"id"`
	QuoteID   string            `json:"quote_id"`
	Event     string            `json:"event"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

func FromQuoteEvents(events []entities.QuoteEvent) []QuoteEventResponse {
	out := make([]QuoteEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, QuoteEventResponse{
			ID:        e.ID,
			QuoteID:   e.QuoteID,
			Event:     string(e.Event),
			Metadata:  e.Metadata,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

// AdminQuoteDetailResponse extends the detail payload with the quote's audit
// trail for the dashboard view.
type AdminQuoteDetailResponse struct {
	QuoteDetailResponse
	Events []QuoteEventResponse `json:"events"`
}

func FromAdminDetail(d usecase.QuoteDetail, events []entities.QuoteEvent) AdminQuoteDetailResponse {
	return AdminQuoteDetailResponse{
		QuoteDetailResponse: FromQuoteDetail(d),
		Events:              FromQuoteEvents(events),
	}
}

type AdminQuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

func FromAdminList(l usecase.AdminList) AdminQuoteListResponse {
	quotes := make([]QuoteResponse, 0, len(l.Quotes))
	for _, q := range l.Quotes {
		quotes = append(quotes, FromQuote(q))
	}
	return AdminQuoteListResponse{
		Quotes: quotes,
		Total:  l.Total,
		Page:   l.Page,
		Limit:  l.Limit,
	}
}
