package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotationsTableName = "quotations"
	quotationsRequestIDIndex   = "request_id-index"
)

type quotationItem struct {
	ID          string `dynamodbav:"id"`
	RequestID   string `dynamodbav:"request_id"`
	HandymanID  string `dynamodbav:"handyman_id"`
	ClientID    string `dynamodbav:"client_id"`
	Amount      string `dynamodbav:"amount"`
	Description string `dynamodbav:"description"`
	Status      string `dynamodbav:"status"`
	ExpiresAt   string `dynamodbav:"expires_at"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: request_id-index (PK: request_id)

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

// GetByRequestID returns the request's live quotation. A request holds at
// most one because rejected quotations are deleted before the request
// reopens.
func (r *QuotationDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsRequestIDIndex),
		KeyConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: requestID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, from []entities.QuotationStatus, to entities.QuotationStatus) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	values := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	placeholders := make([]string, 0, len(from))
	for i, s := range from {
		p := ":from" + string(rune('a'+i))
		placeholders = append(placeholders, p)
		values[p] = &types.AttributeValueMemberS{Value: string(s)}
	}

	return r.update(ctx, id, &dynamodb.UpdateItemInput{
		ConditionExpression:       aws.String("#status IN (" + strings.Join(placeholders, ", ") + ")"),
		UpdateExpression:          aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	})
}

func (r *QuotationDynamoRepository) Reissue(ctx context.Context, id string, amount float64, description string, expiresAt time.Time) (entities.Quotation, error) {
	return r.update(ctx, id, reissueUpdateInput(amount, description, expiresAt))
}

// reissueUpdateInput flips a rejected quotation back to pending with new
// terms. Amount is stored as a string, matching quotationItem.
func reissueUpdateInput(amount float64, description string, expiresAt time.Time) *dynamodb.UpdateItemInput {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	return &dynamodb.UpdateItemInput{
		ConditionExpression: aws.String("#status = :rejected"),
		UpdateExpression:    aws.String("SET #status = :pending, #amount = :amount, #description = :description, #expires_at = :expires_at, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rejected":    &types.AttributeValueMemberS{Value: string(entities.QuotationStatusRejected)},
			":pending":     &types.AttributeValueMemberS{Value: string(entities.QuotationStatusPending)},
			":amount":      &types.AttributeValueMemberS{Value: floatToString(amount)},
			":description": &types.AttributeValueMemberS{Value: description},
			":expires_at":  &types.AttributeValueMemberS{Value: expiresAt.UTC().Format(time.RFC3339Nano)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#status":      "status",
			"#amount":      "amount",
			"#description": "description",
			"#expires_at":  "expires_at",
			"#updated_at":  "updated_at",
		},
	}
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *QuotationDynamoRepository) update(ctx context.Context, id string, in *dynamodb.UpdateItemInput) (entities.Quotation, error) {
	in.TableName = aws.String(r.tableName)
	in.Key = map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	in.ReturnValues = types.ReturnValueAllNew

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ID:          q.ID,
		RequestID:   q.RequestID,
		HandymanID:  q.HandymanID,
		ClientID:    q.ClientID,
		Amount:      floatToString(q.Amount),
		Description: q.Description,
		Status:      string(q.Status),
		ExpiresAt:   q.ExpiresAt.UTC().Format(time.RFC3339Nano),
		CreatedAt:   q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Quotation{
		ID:          it.ID,
		RequestID:   it.RequestID,
		HandymanID:  it.HandymanID,
		ClientID:    it.ClientID,
		Amount:      amount,
		Description: it.Description,
		Status:      entities.QuotationStatus(it.Status),
		ExpiresAt:   expiresAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
