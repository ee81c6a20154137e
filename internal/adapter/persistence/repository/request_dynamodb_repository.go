package repository

import (
	"context"
	"errors"
	"log"
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
	defaultRequestsTableName     = "requests"
	defaultRequestLocksTableName = "request_locks"
	requestsClientIDIndex        = "client_id-index"
	requestsHandymanIDIndex      = "handyman_id-index"
	requestsPairIDIndex          = "pair_id-index"
	requestsStatusIndex          = "status-index"
)

type requestItem struct {
	ID                string            `dynamodbav:"id"`
	ClientID          string            `dynamodbav:"client_id"`
	HandymanID        string            `dynamodbav:"handyman_id"`
	PairID            string            `dynamodbav:"pair_id"`
	Title             string            `dynamodbav:"title"`
	Description       string            `dynamodbav:"description"`
	Location          entities.Location `dynamodbav:"location"`
	Categories        []string          `dynamodbav:"categories,omitempty"`
	Status            string            `dynamodbav:"status"`
	ChannelID         string            `dynamodbav:"channel_id"`
	ExpiresAt         string            `dynamodbav:"expires_at"`
	HandymanCompleted bool              `dynamodbav:"handyman_completed"`
	ClientCompleted   bool              `dynamodbav:"client_completed"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
}

// RequestDynamoRepository persists Request entities in DynamoDB.
//
// Table requirements:
//   - requests: PK id, GSIs client_id-index, handyman_id-index, pair_id-index,
//     status-index (PK status, SK expires_at)
//   - request_locks: PK pair_id
//
// The lock item is written in the same TransactWriteItems as the insert, so
// only one active request can exist per client/handyman pair even when both
// creates land at the same time.

type RequestDynamoRepository struct {
	ddb        *dynamodb.Client
	tableName  string
	locksTable string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:        ddb,
		tableName:  getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
		locksTable: getenvDefault("REQUEST_LOCKS_TABLE", defaultRequestLocksTableName),
	}
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.Request) (entities.Request, error) {
	av, err := attributevalue.MarshalMap(toRequestItem(req))
	if err != nil {
		return entities.Request{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.locksTable),
					Item: map[string]types.AttributeValue{
						"pair_id":    &types.AttributeValueMemberS{Value: req.PairKey()},
						"request_id": &types.AttributeValueMemberS{Value: req.ID},
					},
					ConditionExpression: aws.String("attribute_not_exists(#pid)"),
					ExpressionAttributeNames: map[string]string{
						"#pid": "pair_id",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Request{}, interfaces.ErrPairLocked
				}
			}
		}
		return entities.Request{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.Request, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Request{}, err
	}
	if len(out.Item) == 0 {
		return entities.Request{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) FindActiveByPair(ctx context.Context, clientID, handymanID string) (entities.Request, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsPairIDIndex),
		KeyConditionExpression: aws.String("pair_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: clientID + "#" + handymanID},
		},
	})
	if err != nil {
		return entities.Request{}, err
	}
	for _, raw := range out.Items {
		var it requestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return entities.Request{}, err
		}
		req := fromRequestItem(it)
		if req.Status.Active() {
			return req, nil
		}
	}
	return entities.Request{}, nil
}

func (r *RequestDynamoRepository) UpdateStatus(ctx context.Context, req entities.Request, from []entities.RequestStatus, to entities.RequestStatus) (entities.Request, error) {
	updated, err := r.conditionalStatusUpdate(ctx, req.ID, from, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :to, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID != "" && to.Terminal() {
		r.releaseLock(ctx, updated)
	}
	return updated, nil
}

func (r *RequestDynamoRepository) SetCompletionFlag(ctx context.Context, id string, role entities.Role) (entities.Request, error) {
	flag := "client_completed"
	if role == entities.RoleHandyman {
		flag = "handyman_completed"
	}
	return r.conditionalStatusUpdate(ctx, id, []entities.RequestStatus{entities.RequestStatusPayed}, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #flag = :true, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#flag":       flag,
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *RequestDynamoRepository) PromoteCompleted(ctx context.Context, req entities.Request) (entities.Request, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: req.ID},
		},
		ConditionExpression: aws.String("#status = :payed AND #hc = :true AND #cc = :true"),
		UpdateExpression:    aws.String("SET #status = :completed, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#hc":         "handyman_completed",
			"#cc":         "client_completed",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":payed":      &types.AttributeValueMemberS{Value: string(entities.RequestStatusPayed)},
			":completed":  &types.AttributeValueMemberS{Value: string(entities.RequestStatusCompleted)},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Request{}, nil
		}
		return entities.Request{}, err
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Request{}, err
	}
	updated := fromRequestItem(it)
	r.releaseLock(ctx, updated)
	return updated, nil
}

func (r *RequestDynamoRepository) ListByClient(ctx context.Context, clientID string) ([]entities.Request, error) {
	return r.queryIndex(ctx, requestsClientIDIndex, "client_id = :v", clientID)
}

func (r *RequestDynamoRepository) ListByHandyman(ctx context.Context, handymanID string) ([]entities.Request, error) {
	return r.queryIndex(ctx, requestsHandymanIDIndex, "handyman_id = :v", handymanID)
}

func (r *RequestDynamoRepository) ListExpiredPending(ctx context.Context, now time.Time) ([]entities.Request, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(requestsStatusIndex),
		KeyConditionExpression: aws.String("#status = :pending AND expires_at <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.RequestStatusPending)},
			":now":     &types.AttributeValueMemberS{Value: now.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRequests(out.Items)
}

func (r *RequestDynamoRepository) queryIndex(ctx context.Context, index, keyCond, value string) ([]entities.Request, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyCond),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalRequests(out.Items)
}

func (r *RequestDynamoRepository) conditionalStatusUpdate(
	ctx context.Context,
	id string,
	from []entities.RequestStatus,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Request, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	placeholders := make([]string, 0, len(from))
	for i, s := range from {
		p := ":from" + string(rune('a'+i))
		placeholders = append(placeholders, p)
		values[p] = &types.AttributeValueMemberS{Value: string(s)}
	}
	cond := "#status IN (" + strings.Join(placeholders, ", ") + ")"

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#status": "status"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Request{}, nil
		}
		return entities.Request{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Request{}, nil
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Request{}, err
	}
	return fromRequestItem(it), nil
}

// releaseLock deletes the pair lock only when this request still owns it. A
// failed delete is logged, not surfaced: the status write already committed
// and the lock is reclaimable by hand.
func (r *RequestDynamoRepository) releaseLock(ctx context.Context, req entities.Request) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.locksTable),
		Key: map[string]types.AttributeValue{
			"pair_id": &types.AttributeValueMemberS{Value: req.PairKey()},
		},
		ConditionExpression: aws.String("request_id = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: req.ID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return
		}
		log.Printf("[request][repository] pair lock release failed request_id=%s pair_id=%s err=%v", req.ID, req.PairKey(), err)
	}
}

func unmarshalRequests(raws []map[string]types.AttributeValue) ([]entities.Request, error) {
	items := make([]entities.Request, 0, len(raws))
	for _, raw := range raws {
		var it requestItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromRequestItem(it))
	}
	return items, nil
}

func toRequestItem(r entities.Request) requestItem {
	return requestItem{
		ID:                r.ID,
		ClientID:          r.ClientID,
		HandymanID:        r.HandymanID,
		PairID:            r.PairKey(),
		Title:             r.Title,
		Description:       r.Description,
		Location:          r.Location,
		Categories:        r.Categories,
		Status:            string(r.Status),
		ChannelID:         r.ChannelID,
		ExpiresAt:         r.ExpiresAt.UTC().Format(time.RFC3339Nano),
		HandymanCompleted: r.HandymanCompleted,
		ClientCompleted:   r.ClientCompleted,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromRequestItem(it requestItem) entities.Request {
	expiresAt, _ := time.Parse(time.RFC3339Nano, it.ExpiresAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Request{
		ID:                it.ID,
		ClientID:          it.ClientID,
		HandymanID:        it.HandymanID,
		Title:             it.Title,
		Description:       it.Description,
		Location:          it.Location,
		Categories:        it.Categories,
		Status:            entities.RequestStatus(it.Status),
		ChannelID:         it.ChannelID,
		ExpiresAt:         expiresAt,
		HandymanCompleted: it.HandymanCompleted,
		ClientCompleted:   it.ClientCompleted,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
