package entities

import "time"

// QuoteStatus represents the lifecycle of a quote (cotización).
//
// Domain notes:
//   - Quotes start as DRAFT and are moved by an administrator. Any target
//     status in the enum is accepted, including self and backward
//     transitions; terminal states are not enforced.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
)

// IsValid reports whether s is one of the known quote statuses.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected:
		return true
	}
	return false
}

// ProjectType classifies the requested website project.
type ProjectType string

const (
	ProjectTypeLanding   ProjectType = "LANDING"
	ProjectTypeCorporate ProjectType = "CORPORATE"
	ProjectTypeEcommerce ProjectType = "ECOMMERCE"
	ProjectTypeIntranet  ProjectType = "INTRANET"
)

// Timeline captures the client's delivery urgency.
type Timeline string

const (
	TimelineRush     Timeline = "RUSH_7_10_DAYS"
	TimelineSoon     Timeline = "SOON_2_3_WEEKS"
	TimelineFlexible Timeline = "FLEXIBLE_4PLUS_WEEKS"
)

// Quote is the priced quotation persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (public_token-index): public_token
//
// Monetary representation:
//   - MinPrice/MaxPrice are whole CLP units (CLP has no subunits);
//     min is the Basic package floor, max the Premium package ceiling.
//
// The folio is the human-facing sequential identifier
// (VW-<year>-<6-digit sequence>); the public token is the random
// client-facing lookup key used in share links.
type Quote struct {
	ID             string      `json:"id"`
	Folio          string      `json:"folio"`
	ClientName     string      `json:"client_name"`
	ClientEmail    string      `json:"client_email"`
	ClientWhatsapp string      `json:"client_whatsapp"`
	ProjectType    ProjectType `json:"project_type"`
	Industry       string      `json:"industry,omitempty"`
	Timeline       Timeline    `json:"timeline"`
	MinPrice       int64       `json:"min_price"`
	MaxPrice       int64       `json:"max_price"`
	Currency       string      `json:"currency"`
	Status         QuoteStatus `json:"status"`
	PublicToken    string      `json:"public_token"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
