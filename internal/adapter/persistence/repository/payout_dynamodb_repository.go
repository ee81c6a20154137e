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
	defaultPayoutsTableName   = "payouts"
	payoutsSenderBatchIDIndex = "sender_batch_id-index"
	payoutsHandymanIDIndex    = "handyman_id-index"
)

type payoutItem struct {
	ID          string `dynamodbav:"id"`
	HandymanID  string `dynamodbav:"handyman_id"`
	RequestID   string `dynamodbav:"request_id"`
	QuotationID string `dynamodbav:"quotation_id"`

	RequestTitle string `dynamodbav:"request_title"`

	ClientPaymentAmount        string `dynamodbav:"client_payment_amount"`
	ProviderFeeOnClientPayment string `dynamodbav:"provider_fee_on_client_payment"`
	AppCommission              string `dynamodbav:"app_commission"`
	AmountSentToHandyman       string `dynamodbav:"amount_sent_to_handyman"`
	ProviderFeeOnPayout        string `dynamodbav:"provider_fee_on_payout"`
	HandymanNetAmount          string `dynamodbav:"handyman_net_amount"`
	Currency                   string `dynamodbav:"currency"`

	PayoutBatchID string `dynamodbav:"payout_batch_id,omitempty"`
	PayoutItemID  string `dynamodbav:"payout_item_id,omitempty"`
	TransactionID string `dynamodbav:"transaction_id,omitempty"`
	SenderBatchID string `dynamodbav:"sender_batch_id"`

	Status            string `dynamodbav:"status"`
	TransactionErrors string `dynamodbav:"transaction_errors,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// PayoutDynamoRepository persists the payout ledger in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string, one settlement per request)
//   - GSI: sender_batch_id-index (PK: sender_batch_id)
//   - GSI: handyman_id-index (PK: handyman_id)
//
// Provider payout-item webhooks only carry the sender batch id, so status
// patches resolve the row through that index first.

type PayoutDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPayoutRepository = (*PayoutDynamoRepository)(nil)

func NewPayoutDynamoRepository(ddb *dynamodb.Client) *PayoutDynamoRepository {
	return &PayoutDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYOUTS_TABLE", defaultPayoutsTableName),
	}
}

func (r *PayoutDynamoRepository) Create(ctx context.Context, p entities.Payout) (entities.Payout, error) {
	av, err := attributevalue.MarshalMap(toPayoutItem(p))
	if err != nil {
		return entities.Payout{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#rid)"),
		ExpressionAttributeNames: map[string]string{
			"#rid": "request_id",
		},
	})
	if err != nil {
		return entities.Payout{}, err
	}
	return p, nil
}

func (r *PayoutDynamoRepository) GetByRequestID(ctx context.Context, requestID string) (entities.Payout, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payout{}, nil
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) UpdateBySenderBatchID(ctx context.Context, senderBatchID string, patch entities.PayoutPatch) (entities.Payout, error) {
	existing, err := r.findBySenderBatchID(ctx, senderBatchID)
	if err != nil {
		return entities.Payout{}, err
	}
	if existing.ID == "" {
		return entities.Payout{}, nil
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	expr := "SET #updated_at = :updated_at"
	vals := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":sbid":       &types.AttributeValueMemberS{Value: senderBatchID},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
		"#sbid":       "sender_batch_id",
	}
	if patch.Status != "" {
		expr += ", #status = :status"
		vals[":status"] = &types.AttributeValueMemberS{Value: patch.Status}
		names["#status"] = "status"
	}
	if patch.PayoutItemID != "" {
		expr += ", #pii = :pii"
		vals[":pii"] = &types.AttributeValueMemberS{Value: patch.PayoutItemID}
		names["#pii"] = "payout_item_id"
	}
	if patch.TransactionID != "" {
		expr += ", #tid = :tid"
		vals[":tid"] = &types.AttributeValueMemberS{Value: patch.TransactionID}
		names["#tid"] = "transaction_id"
	}
	if patch.ProviderFeeOnPayout != 0 {
		expr += ", #fee = :fee"
		vals[":fee"] = &types.AttributeValueMemberS{Value: floatToString(patch.ProviderFeeOnPayout)}
		names["#fee"] = "provider_fee_on_payout"
	}
	if len(patch.TransactionErrors) > 0 {
		expr += ", #terr = :terr"
		vals[":terr"] = &types.AttributeValueMemberS{Value: string(patch.TransactionErrors)}
		names["#terr"] = "transaction_errors"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"request_id": &types.AttributeValueMemberS{Value: existing.RequestID},
		},
		// Guards against the row being replaced between the index lookup and
		// the write.
		ConditionExpression:       aws.String("#sbid = :sbid"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payout{}, nil
		}
		return entities.Payout{}, err
	}
	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func (r *PayoutDynamoRepository) FindByHandymanAndRequest(ctx context.Context, handymanID, requestID string) (entities.Payout, error) {
	p, err := r.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.Payout{}, err
	}
	if p.ID == "" || p.HandymanID != handymanID {
		return entities.Payout{}, nil
	}
	return p, nil
}

func (r *PayoutDynamoRepository) findBySenderBatchID(ctx context.Context, senderBatchID string) (entities.Payout, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(payoutsSenderBatchIDIndex),
		KeyConditionExpression: aws.String("sender_batch_id = :sbid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sbid": &types.AttributeValueMemberS{Value: senderBatchID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payout{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payout{}, nil
	}

	var it payoutItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payout{}, err
	}
	return fromPayoutItem(it), nil
}

func toPayoutItem(p entities.Payout) payoutItem {
	return payoutItem{
		ID:                         p.ID,
		HandymanID:                 p.HandymanID,
		RequestID:                  p.RequestID,
		QuotationID:                p.QuotationID,
		RequestTitle:               p.RequestTitle,
		ClientPaymentAmount:        floatToString(p.ClientPaymentAmount),
		ProviderFeeOnClientPayment: floatToString(p.ProviderFeeOnClientPayment),
		AppCommission:              floatToString(p.AppCommission),
		AmountSentToHandyman:       floatToString(p.AmountSentToHandyman),
		ProviderFeeOnPayout:        floatToString(p.ProviderFeeOnPayout),
		HandymanNetAmount:          floatToString(p.HandymanNetAmount),
		Currency:                   p.Currency,
		PayoutBatchID:              p.PayoutBatchID,
		PayoutItemID:               p.PayoutItemID,
		TransactionID:              p.TransactionID,
		SenderBatchID:              p.SenderBatchID,
		Status:                     p.Status,
		TransactionErrors:          string(p.TransactionErrors),
		CreatedAt:                  p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:                  p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPayoutItem(it payoutItem) entities.Payout {
	clientPayment, _ := strconv.ParseFloat(it.ClientPaymentAmount, 64)
	clientFee, _ := strconv.ParseFloat(it.ProviderFeeOnClientPayment, 64)
	commission, _ := strconv.ParseFloat(it.AppCommission, 64)
	sent, _ := strconv.ParseFloat(it.AmountSentToHandyman, 64)
	payoutFee, _ := strconv.ParseFloat(it.ProviderFeeOnPayout, 64)
	net, _ := strconv.ParseFloat(it.HandymanNetAmount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.Payout{
		ID:                         it.ID,
		HandymanID:                 it.HandymanID,
		RequestID:                  it.RequestID,
		QuotationID:                it.QuotationID,
		RequestTitle:               it.RequestTitle,
		ClientPaymentAmount:        clientPayment,
		ProviderFeeOnClientPayment: clientFee,
		AppCommission:              commission,
		AmountSentToHandyman:       sent,
		ProviderFeeOnPayout:        payoutFee,
		HandymanNetAmount:          net,
		Currency:                   it.Currency,
		PayoutBatchID:              it.PayoutBatchID,
		PayoutItemID:               it.PayoutItemID,
		TransactionID:              it.TransactionID,
		SenderBatchID:              it.SenderBatchID,
		Status:                     it.Status,
		CreatedAt:                  createdAt,
		UpdatedAt:                  updatedAt,
	}
	if it.TransactionErrors != "" {
		p.TransactionErrors = []byte(it.TransactionErrors)
	}
	return p
}
