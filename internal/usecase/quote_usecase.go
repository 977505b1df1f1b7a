package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"villaweb/internal/domain/entities"
	"villaweb/internal/domain/pricing"
	"villaweb/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrMissingClientInfo  = errors.New("missing client contact info")
	ErrMissingProjectType = errors.New("missing project type")
	ErrInvalidQuoteKey    = errors.New("invalid quote id or token")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidStatus      = errors.New("invalid quote status")
	ErrInvalidEventType   = errors.New("invalid event type")
)

const quoteCurrency = "CLP"

// CreateQuoteResult is what a successful creation returns to the caller:
// the primary id plus both user-facing keys.
type CreateQuoteResult struct {
	ID          string
	Folio       string
	PublicToken string
}

// QuoteDetail bundles a quote with its secondary records for read paths.
type QuoteDetail struct {
	Quote   entities.Quote
	Answers []entities.QuoteAnswer
	Items   []entities.QuoteItem
}

// AdminList is one page of the admin listing.
type AdminList struct {
	Quotes []entities.Quote
	Total  int
	Page   int
	Limit  int
}

// IQuoteUseCase exposes the quote lifecycle operations:
//   - questionnaire submission => Create()
//   - public share link / admin detail => GetByIDOrToken()
//   - admin status tracking => ChangeStatus()
//   - client-side action audit (PDF download, WhatsApp share) => RecordEvent()
//   - audit trail display => ListEvents()
//   - admin dashboard => ListAdmin()

type IQuoteUseCase interface {
	Create(ctx context.Context, answers entities.QuestionnaireAnswers, source string) (CreateQuoteResult, error)
	GetByIDOrToken(ctx context.Context, key string, viewSource string) (QuoteDetail, error)
	ChangeStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	RecordEvent(ctx context.Context, key string, event entities.EventType, metadata map[string]string) error
	ListEvents(ctx context.Context, key string) ([]entities.QuoteEvent, error)
	ListAdmin(ctx context.Context, filter interfaces.QuoteFilter) (AdminList, error)
}

type QuoteUseCase struct {
	quotes interfaces.IQuoteRepository
	events interfaces.IQuoteEventRepository
	engine pricing.Engine
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, events interfaces.IQuoteEventRepository, engine pricing.Engine) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, events: events, engine: engine}
}

func (u *QuoteUseCase) Create(ctx context.Context, answers entities.QuestionnaireAnswers, source string) (CreateQuoteResult, error) {
	answers.ClientName = strings.TrimSpace(answers.ClientName)
	answers.ClientEmail = strings.ToLower(strings.TrimSpace(answers.ClientEmail))
	answers.ClientWhatsapp = strings.TrimSpace(answers.ClientWhatsapp)
	answers.Industry = strings.TrimSpace(answers.Industry)

	if answers.ClientName == "" || answers.ClientEmail == "" || answers.ClientWhatsapp == "" {
		return CreateQuoteResult{}, ErrMissingClientInfo
	}
	if answers.ProjectType == "" {
		return CreateQuoteResult{}, ErrMissingProjectType
	}
	if answers.Timeline == "" {
		answers.Timeline = entities.TimelineFlexible
	}

	result := u.engine.Compute(answers)

	year := time.Now().UTC().Year()
	folios, err := u.quotes.ListFoliosByPrefix(ctx, folioPrefix(year))
	if err != nil {
		log.Errorf("[quote][usecase] folio scan failed err=%v", err)
		return CreateQuoteResult{}, err
	}
	folio := generateFolio(year, nextSequence(folios, year))

	now := time.Now().UTC()
	quote := entities.Quote{
		ID:             uuid.NewString(),
		Folio:          folio,
		ClientName:     answers.ClientName,
		ClientEmail:    answers.ClientEmail,
		ClientWhatsapp: answers.ClientWhatsapp,
		ProjectType:    answers.ProjectType,
		Industry:       answers.Industry,
		Timeline:       answers.Timeline,
		MinPrice:       result.Basic.MinPrice,
		MaxPrice:       result.Premium.MaxPrice,
		Currency:       quoteCurrency,
		Status:         entities.QuoteStatusDraft,
		PublicToken:    uuid.NewString(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// The header insert is the creation: if it fails, no folio or token is
	// issued. Everything after it is best-effort.
	if _, err := u.quotes.Create(ctx, quote); err != nil {
		log.Errorf("[quote][usecase] create failed folio=%s err=%v", folio, err)
		return CreateQuoteResult{}, err
	}
	log.Printf("[quote][usecase] created id=%s folio=%s", quote.ID, quote.Folio)

	if err := u.quotes.InsertAnswers(ctx, flattenAnswers(quote.ID, answers, now)); err != nil {
		log.Errorf("[quote][usecase] saving answers failed id=%s err=%v", quote.ID, err)
	}
	if err := u.quotes.InsertItems(ctx, collectItems(quote.ID, result, now)); err != nil {
		log.Errorf("[quote][usecase] saving items failed id=%s err=%v", quote.ID, err)
	}

	u.appendEvent(ctx, quote.ID, entities.EventCreated, map[string]string{"source": source})

	return CreateQuoteResult{ID: quote.ID, Folio: quote.Folio, PublicToken: quote.PublicToken}, nil
}

// GetByIDOrToken resolves a quote by primary id or public token. When
// viewSource is non-empty (client-facing reads) a VIEWED event is appended;
// its failure never fails the read.
func (u *QuoteUseCase) GetByIDOrToken(ctx context.Context, key string, viewSource string) (QuoteDetail, error) {
	quote, err := u.resolve(ctx, key)
	if err != nil {
		return QuoteDetail{}, err
	}

	answers, err := u.quotes.ListAnswersByQuoteID(ctx, quote.ID)
	if err != nil {
		log.Errorf("[quote][usecase] loading answers failed id=%s err=%v", quote.ID, err)
		return QuoteDetail{}, err
	}
	items, err := u.quotes.ListItemsByQuoteID(ctx, quote.ID)
	if err != nil {
		log.Errorf("[quote][usecase] loading items failed id=%s err=%v", quote.ID, err)
		return QuoteDetail{}, err
	}

	if viewSource != "" {
		u.appendEvent(ctx, quote.ID, entities.EventViewed, map[string]string{"source": viewSource})
	}

	return QuoteDetail{Quote: quote, Answers: answers, Items: items}, nil
}

func (u *QuoteUseCase) ChangeStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteKey
	}
	if !status.IsValid() {
		return entities.Quote{}, ErrInvalidStatus
	}

	updated, err := u.quotes.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Errorf("[quote][usecase] status update failed id=%s err=%v", id, err)
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	log.Printf("[quote][usecase] status changed id=%s status=%s", id, status)

	u.appendEvent(ctx, updated.ID, entities.EventStatusChanged, map[string]string{"new_status": string(status)})

	return updated, nil
}

// RecordEvent appends an audit event for a client-facing action. Append
// failures are swallowed: a PDF download or WhatsApp click is never blocked
// by an audit write.
func (u *QuoteUseCase) RecordEvent(ctx context.Context, key string, event entities.EventType, metadata map[string]string) error {
	if !event.IsValid() {
		return ErrInvalidEventType
	}
	quote, err := u.resolve(ctx, key)
	if err != nil {
		return err
	}
	u.appendEvent(ctx, quote.ID, event, metadata)
	return nil
}

func (u *QuoteUseCase) ListEvents(ctx context.Context, key string) ([]entities.QuoteEvent, error) {
	quote, err := u.resolve(ctx, key)
	if err != nil {
		return nil, err
	}
	events, err := u.events.ListByQuoteID(ctx, quote.ID)
	if err != nil {
		log.Errorf("[quote][usecase] listing events failed id=%s err=%v", quote.ID, err)
		return nil, err
	}
	return events, nil
}

func (u *QuoteUseCase) ListAdmin(ctx context.Context, filter interfaces.QuoteFilter) (AdminList, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	filter.Search = strings.TrimSpace(filter.Search)

	quotes, total, err := u.quotes.List(ctx, filter)
	if err != nil {
		log.Errorf("[quote][usecase] admin list failed err=%v", err)
		return AdminList{}, err
	}
	return AdminList{Quotes: quotes, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// resolve is the single id-or-token resolver: primary id first, then public
// token. Every call site addressing a quote by external key goes through it.
func (u *QuoteUseCase) resolve(ctx context.Context, key string) (entities.Quote, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return entities.Quote{}, ErrInvalidQuoteKey
	}

	quote, err := u.quotes.GetByID(ctx, key)
	if err != nil {
		log.Errorf("[quote][usecase] lookup by id failed key=%s err=%v", key, err)
		return entities.Quote{}, err
	}
	if quote.ID != "" {
		return quote, nil
	}

	quote, err = u.quotes.GetByToken(ctx, key)
	if err != nil {
		log.Errorf("[quote][usecase] lookup by token failed key=%s err=%v", key, err)
		return entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return quote, nil
}

// appendEvent is the fire-and-forget audit write: failures are logged and
// dropped, never propagated.
func (u *QuoteUseCase) appendEvent(ctx context.Context, quoteID string, event entities.EventType, metadata map[string]string) {
	err := u.events.Append(ctx, entities.QuoteEvent{
		ID:        uuid.NewString(),
		QuoteID:   quoteID,
		Event:     event,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.Errorf("[quote][usecase] event append failed id=%s event=%s err=%v", quoteID, event, err)
	}
}

// flattenAnswers projects the questionnaire into write-once key/value rows.
// The section set is stored as a JSON array under "siteSections"; legacy
// submissions keep the "numPages" count instead.
func flattenAnswers(quoteID string, a entities.QuestionnaireAnswers, now time.Time) []entities.QuoteAnswer {
	var pairs [][2]string

	if len(a.Sections.Sections) > 0 {
		raw, _ := json.Marshal(a.Sections.Sections)
		pairs = append(pairs, [2]string{"siteSections", string(raw)})
	} else {
		pairs = append(pairs, [2]string{"numPages", strconv.Itoa(a.Sections.Count())})
	}

	pairs = append(pairs,
		[2]string{"needsBlog", strconv.FormatBool(a.NeedsBlog)},
		[2]string{"multiLanguage", strconv.FormatBool(a.MultiLanguage)},
		[2]string{"needsLogin", strconv.FormatBool(a.NeedsLogin)},
		[2]string{"externalIntegrations", strconv.FormatBool(a.ExternalIntegrations)},
		[2]string{"needsPaymentGateway", strconv.FormatBool(a.NeedsPaymentGateway)},
	)
	for _, key := range entities.AddonKeys() {
		pairs = append(pairs, [2]string{"addon_" + string(key), strconv.FormatBool(a.Addons[key])})
	}

	rows := make([]entities.QuoteAnswer, 0, len(pairs))
	for _, kv := range pairs {
		rows = append(rows, entities.QuoteAnswer{
			ID:        uuid.NewString(),
			QuoteID:   quoteID,
			Key:       kv[0],
			Value:     kv[1],
			CreatedAt: now,
		})
	}
	return rows
}

// collectItems flattens the three package breakdowns into persisted rows,
// tagging each item name with its owning package ("[Pro] ...").
func collectItems(quoteID string, result pricing.Result, now time.Time) []entities.QuoteItem {
	var rows []entities.QuoteItem
	for _, pkg := range []pricing.PackageOffer{result.Basic, result.Pro, result.Premium} {
		for _, item := range pkg.Items {
			rows = append(rows, entities.QuoteItem{
				ID:        uuid.NewString(),
				QuoteID:   quoteID,
				ItemType:  item.Type,
				Name:      "[" + pkg.Name + "] " + item.Name,
				Amount:    item.Amount,
				CreatedAt: now,
			})
		}
	}
	return rows
}
