package repository

import (
	"context"
	"time"

	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuoteEventsTableName = "quote_events"

// Fixed-width fraction so the sort key stays lexically ordered; RFC3339Nano
// drops trailing zeros, which would sort an exact-second timestamp after a
// fractional one ('.' < 'Z').
const eventSortKeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

func eventSortKey(createdAt time.Time, id string) string {
	return createdAt.UTC().Format(eventSortKeyLayout) + "#" + id
}

type quoteEventRecord struct {
	QuoteID   string            `dynamodbav:"quote_id"`
	SK        string            `dynamodbav:"sk"`
	ID        string            `dynamodbav:"id"`
	Event     string            `dynamodbav:"event"`
	Metadata  map[string]string `dynamodbav:"metadata,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
}

// QuoteEventDynamoRepository persists the append-only audit trail.
//
// Table requirements:
//   - PK: quote_id (string)
//   - SK: sk (string) — "<created_at, fixed-width nanos>#<id>", so a reverse
//     range query yields newest-first without a separate index.

type QuoteEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteEventRepository = (*QuoteEventDynamoRepository)(nil)

func NewQuoteEventDynamoRepository(ddb *dynamodb.Client) *QuoteEventDynamoRepository {
	return &QuoteEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_EVENTS_TABLE", defaultQuoteEventsTableName),
	}
}

func (r *QuoteEventDynamoRepository) Append(ctx context.Context, event entities.QuoteEvent) error {
	createdAt := event.CreatedAt.UTC().Format(time.RFC3339Nano)
	av, err := attributevalue.MarshalMap(quoteEventRecord{
		QuoteID:   event.QuoteID,
		SK:        eventSortKey(event.CreatedAt, event.ID),
		ID:        event.ID,
		Event:     string(event.Event),
		Metadata:  event.Metadata,
		CreatedAt: createdAt,
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *QuoteEventDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.QuoteEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec quoteEventRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
		events = append(events, entities.QuoteEvent{
			ID:        rec.ID,
			QuoteID:   rec.QuoteID,
			Event:     entities.EventType(rec.Event),
			Metadata:  rec.Metadata,
			CreatedAt: createdAt,
		})
	}
	return events, nil
}
