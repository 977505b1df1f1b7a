package entities

import "time"

// EventType identifies what happened to a quote.
type EventType string

const (
	EventCreated       EventType = "CREATED"
	EventViewed        EventType = "VIEWED"
	EventPDFDownloaded EventType = "PDF_DOWNLOADED"
	EventSentWhatsapp  EventType = "SENT_WHATSAPP"
	EventStatusChanged EventType = "STATUS_CHANGED"
)

// IsValid reports whether e is one of the known event types.
func (e EventType) IsValid() bool {
	switch e {
	case EventCreated, EventViewed, EventPDFDownloaded, EventSentWhatsapp, EventStatusChanged:
		return true
	}
	return false
}

// QuoteEvent is an append-only audit record. Events are never updated or
// deleted; failures writing them must never fail the operation they audit.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - SK: sk = "<created_at RFC3339Nano>#<id>" (newest-first reads query
//     with ScanIndexForward=false)
type QuoteEvent struct {
	ID        string            `json:"id"`
	QuoteID   string            `json:"quote_id"`
	Event     EventType         `json:"event"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
