package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName    = "payments"
	paymentsWebhookEventIDIndex = "webhook_event_id-index"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	QuotationID       string `dynamodbav:"quotation_id"`
	Amount            string `dynamodbav:"amount"`
	Currency          string `dynamodbav:"currency"`
	ProviderFee       string `dynamodbav:"provider_fee"`
	TransactionID     string `dynamodbav:"transaction_id"`
	TransactionStatus string `dynamodbav:"transaction_status"`
	WebhookEventID    string `dynamodbav:"webhook_event_id"`
	PaymentMethod     string `dynamodbav:"payment_method"`
	CreatedAt         string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment rows in DynamoDB.
//
// Table requirements:
//   - PK: quotation_id (string)
//   - GSI: webhook_event_id-index (PK: webhook_event_id)
//
// We purposely use quotation id as PK to guarantee 1 payment per quotation:
// a replayed or concurrent capture event loses the conditional insert instead
// of double-charging.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#qid)"),
		ExpressionAttributeNames: map[string]string{
			"#qid": "quotation_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, interfaces.ErrPaymentExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) FindByEventOrQuotation(ctx context.Context, webhookEventID, quotationID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsWebhookEventIDIndex),
		KeyConditionExpression: aws.String("webhook_event_id = :eid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid": &types.AttributeValueMemberS{Value: webhookEventID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) > 0 {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
			return entities.Payment{}, err
		}
		return fromPaymentItem(it), nil
	}
	return r.GetByQuotationID(ctx, quotationID)
}

func (r *PaymentDynamoRepository) GetByQuotationID(ctx context.Context, quotationID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quotation_id": &types.AttributeValueMemberS{Value: quotationID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		QuotationID:       p.QuotationID,
		Amount:            floatToString(p.Amount),
		Currency:          p.Currency,
		ProviderFee:       floatToString(p.ProviderFee),
		TransactionID:     p.TransactionID,
		TransactionStatus: p.TransactionStatus,
		WebhookEventID:    p.WebhookEventID,
		PaymentMethod:     p.PaymentMethod,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	fee, _ := strconv.ParseFloat(it.ProviderFee, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Payment{
		ID:                it.ID,
		QuotationID:       it.QuotationID,
		Amount:            amount,
		Currency:          it.Currency,
		ProviderFee:       fee,
		TransactionID:     it.TransactionID,
		TransactionStatus: it.TransactionStatus,
		WebhookEventID:    it.WebhookEventID,
		PaymentMethod:     it.PaymentMethod,
		CreatedAt:         createdAt,
	}
}
