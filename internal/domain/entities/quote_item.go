package entities

import "time"

// ItemType classifies a priced line inside a package breakdown.
type ItemType string

const (
	ItemTypeBase       ItemType = "BASE"
	ItemTypeMultiplier ItemType = "MULTIPLIER"
	ItemTypeAddon      ItemType = "ADDON"
	ItemTypeExtra      ItemType = "EXTRA"
)

// QuoteItem is a persisted package line item.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - SK: id
//
// Items of all three packages are stored flat per quote; the owning package
// is encoded as a name prefix ("[Pro] ...") and regrouped on read.
type QuoteItem struct {
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	ItemType  ItemType  `json:"item_type"`
	Name      string    `json:"name"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// QuoteAnswer is one flattened questionnaire field persisted verbatim as a
// string (add-on flags carry an "addon_" key prefix). Write-once per quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - SK: key
type QuoteAnswer struct {
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
