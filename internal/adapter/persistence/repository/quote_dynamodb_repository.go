package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"villaweb/internal/domain/entities"
	"villaweb/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName       = "quotes"
	defaultQuoteAnswersTableName = "quote_answers"
	defaultQuoteItemsTableName   = "quote_items"
	quotesPublicTokenIndex       = "public_token-index"
)

type quoteItemRecord struct {
	QuoteID   string `dynamodbav:"quote_id"`
	ID        string `dynamodbav:"id"`
	ItemType  string `dynamodbav:"item_type"`
	Name      string `dynamodbav:"name"`
	Amount    int64  `dynamodbav:"amount"`
	CreatedAt string `dynamodbav:"created_at"`
}

type quoteAnswerRecord struct {
	QuoteID   string `dynamodbav:"quote_id"`
	Key       string `dynamodbav:"key"`
	ID        string `dynamodbav:"id"`
	Value     string `dynamodbav:"value"`
	CreatedAt string `dynamodbav:"created_at"`
}

type quoteRecord struct {
	ID             string `dynamodbav:"id"`
	Folio          string `dynamodbav:"folio"`
	ClientName     string `dynamodbav:"client_name"`
	ClientEmail    string `dynamodbav:"client_email"`
	ClientWhatsapp string `dynamodbav:"client_whatsapp"`
	ProjectType    string `dynamodbav:"project_type"`
	Industry       string `dynamodbav:"industry,omitempty"`
	Timeline       string `dynamodbav:"timeline"`
	MinPrice       int64  `dynamodbav:"min_price"`
	MaxPrice       int64  `dynamodbav:"max_price"`
	Currency       string `dynamodbav:"currency"`
	Status         string `dynamodbav:"status"`
	PublicToken    string `dynamodbav:"public_token"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists quotes and their secondary rows in DynamoDB.
//
// Table requirements:
//   - quotes: PK id (string), GSI public_token-index (PK: public_token)
//   - quote_answers: PK quote_id (string), SK key (string)
//   - quote_items: PK quote_id (string), SK id (string)

type QuoteDynamoRepository struct {
	ddb          *dynamodb.Client
	tableName    string
	answersTable string
	itemsTable   string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:          ddb,
		tableName:    getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		answersTable: getenvDefault("QUOTE_ANSWERS_TABLE", defaultQuoteAnswersTableName),
		itemsTable:   getenvDefault("QUOTE_ITEMS_TABLE", defaultQuoteItemsTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteRecord(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var rec quoteRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(rec), nil
}

func (r *QuoteDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesPublicTokenIndex),
		KeyConditionExpression: aws.String("public_token = :token"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quote{}, nil
	}

	var rec quoteRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(rec), nil
}

func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}

	var rec quoteRecord
	if err := attributevalue.UnmarshalMap(out.Attributes, &rec); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteRecord(rec), nil
}

func (r *QuoteDynamoRepository) InsertAnswers(ctx context.Context, answers []entities.QuoteAnswer) error {
	for _, a := range answers {
		av, err := attributevalue.MarshalMap(quoteAnswerRecord{
			QuoteID:   a.QuoteID,
			Key:       a.Key,
			ID:        a.ID,
			Value:     a.Value,
			CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.answersTable),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *QuoteDynamoRepository) ListAnswersByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteAnswer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.answersTable),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	answers := make([]entities.QuoteAnswer, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec quoteAnswerRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
		answers = append(answers, entities.QuoteAnswer{
			ID:        rec.ID,
			QuoteID:   rec.QuoteID,
			Key:       rec.Key,
			Value:     rec.Value,
			CreatedAt: createdAt,
		})
	}
	return answers, nil
}

func (r *QuoteDynamoRepository) InsertItems(ctx context.Context, items []entities.QuoteItem) error {
	for _, it := range items {
		av, err := attributevalue.MarshalMap(quoteItemRecord{
			QuoteID:   it.QuoteID,
			ID:        it.ID,
			ItemType:  string(it.ItemType),
			Name:      it.Name,
			Amount:    it.Amount,
			CreatedAt: it.CreatedAt.UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.itemsTable),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *QuoteDynamoRepository) ListItemsByQuoteID(ctx context.Context, quoteID string) ([]entities.QuoteItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.QuoteItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var rec quoteItemRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
		items = append(items, entities.QuoteItem{
			ID:        rec.ID,
			QuoteID:   rec.QuoteID,
			ItemType:  entities.ItemType(rec.ItemType),
			Name:      rec.Name,
			Amount:    rec.Amount,
			CreatedAt: createdAt,
		})
	}
	return items, nil
}

// ListFoliosByPrefix scans folios for one year's prefix. The projection keeps
// the scan cheap; volume is a few hundred quotes per year.
func (r *QuoteDynamoRepository) ListFoliosByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var folios []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("begins_with(#folio, :prefix)"),
			ExpressionAttributeNames: map[string]string{
				"#folio": "folio",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prefix": &types.AttributeValueMemberS{Value: prefix},
			},
			ProjectionExpression: aws.String("#folio"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var rec struct {
				Folio string `dynamodbav:"folio"`
			}
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, err
			}
			folios = append(folios, rec.Folio)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return folios, nil
}

// List scans the table and filters, sorts and paginates in memory. The admin
// dashboard reads the whole dataset anyway and the table stays small; a
// search GSI is not worth it yet.
func (r *QuoteDynamoRepository) List(ctx context.Context, filter interfaces.QuoteFilter) ([]entities.Quote, int, error) {
	var quotes []entities.Quote
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, 0, err
		}
		for _, raw := range out.Items {
			var rec quoteRecord
			if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
				return nil, 0, err
			}
			q := fromQuoteRecord(rec)
			if matchesFilter(q, filter) {
				quotes = append(quotes, q)
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})

	total := len(quotes)
	start := (filter.Page - 1) * filter.Limit
	if start >= total {
		return []entities.Quote{}, total, nil
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return quotes[start:end], total, nil
}

func matchesFilter(q entities.Quote, filter interfaces.QuoteFilter) bool {
	if filter.Status != "" && q.Status != filter.Status {
		return false
	}
	if filter.ProjectType != "" && q.ProjectType != filter.ProjectType {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(q.ClientName), needle) &&
			!strings.Contains(strings.ToLower(q.ClientEmail), needle) &&
			!strings.Contains(strings.ToLower(q.Folio), needle) {
			return false
		}
	}
	return true
}

func toQuoteRecord(q entities.Quote) quoteRecord {
	return quoteRecord{
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
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteRecord(rec quoteRecord) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	return entities.Quote{
		ID:             rec.ID,
		Folio:          rec.Folio,
		ClientName:     rec.ClientName,
		ClientEmail:    rec.ClientEmail,
		ClientWhatsapp: rec.ClientWhatsapp,
		ProjectType:    entities.ProjectType(rec.ProjectType),
		Industry:       rec.Industry,
		Timeline:       entities.Timeline(rec.Timeline),
		MinPrice:       rec.MinPrice,
		MaxPrice:       rec.MaxPrice,
		Currency:       rec.Currency,
		Status:         entities.QuoteStatus(rec.Status),
		PublicToken:    rec.PublicToken,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
