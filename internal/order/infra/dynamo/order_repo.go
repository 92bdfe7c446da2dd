package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shopcraft/storefront/internal/order/domain"
	"github.com/shopcraft/storefront/internal/storeerr"
)

const userIndex = "GSI1"

type OrderRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewOrderRepo(client *dynamodb.Client, tableName string) *OrderRepo {
	return &OrderRepo{client: client, tableName: tableName}
}

type orderRecord struct {
	ID              string        `dynamodbav:"id"`
	UserID          string        `dynamodbav:"user_id"`
	Items           []domain.Item `dynamodbav:"items"`
	Status          string        `dynamodbav:"status"`
	TotalAmount     int64         `dynamodbav:"total_amount"`
	ShippingAddress string        `dynamodbav:"shipping_address"`
	PaymentMethod   string        `dynamodbav:"payment_method"`
	Notes           string        `dynamodbav:"notes,omitempty"`
	TrackingNumber  string        `dynamodbav:"tracking_number,omitempty"`
	IdempotencyKey  string        `dynamodbav:"idempotency_key"`
	CreatedAt       time.Time     `dynamodbav:"created_at"`
	UpdatedAt       time.Time     `dynamodbav:"updated_at"`
}

// Create writes the order and its idempotency marker in one transaction.
// Both puts are conditional on the key being unseen, so a resubmitted
// checkout cancels the whole transaction and surfaces as a conflict.
func (r *OrderRepo) Create(ctx context.Context, order domain.Order) error {
	av, err := marshalOrder(order)
	if err != nil {
		return err
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(PK)"),
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item: map[string]types.AttributeValue{
						"PK":       &types.AttributeValueMemberS{Value: idemPK(order.IdempotencyKey)},
						"SK":       &types.AttributeValueMemberS{Value: "METADATA"},
						"order_id": &types.AttributeValueMemberS{Value: order.ID},
					},
					ConditionExpression: aws.String("attribute_not_exists(PK)"),
				},
			},
		},
	})
	return storeerr.FromDynamo("create order", err)
}

func (r *OrderRepo) GetByIdempotencyKey(ctx context.Context, key string) (domain.Order, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: idemPK(key)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Order{}, storeerr.FromDynamo("get idempotency marker", err)
	}
	if len(out.Item) == 0 {
		return domain.Order{}, storeerr.ErrNotFound
	}

	var marker struct {
		OrderID string `dynamodbav:"order_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &marker); err != nil {
		return domain.Order{}, fmt.Errorf("unmarshal idempotency marker: %w", err)
	}
	return r.Get(ctx, marker.OrderID)
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            orderKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return domain.Order{}, storeerr.FromDynamo("get order", err)
	}
	if len(out.Item) == 0 {
		return domain.Order{}, storeerr.ErrNotFound
	}
	return unmarshalOrder(out.Item)
}

// ListByUser queries the user index newest-first; the sort key embeds the
// creation timestamp.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIndex),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", userID)},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, storeerr.FromDynamo("list user orders", err)
	}
	return unmarshalOrders(out.Items)
}

func (r *OrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("begins_with(PK, :p)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: "ORDER#"},
		},
	})
	if err != nil {
		return nil, storeerr.FromDynamo("list all orders", err)
	}
	orders, err := unmarshalOrders(out.Items)
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	return r.update(ctx, id, "SET #s = :s, updated_at = :u",
		map[string]string{"#s": "status"},
		map[string]types.AttributeValue{
			":s": &types.AttributeValueMemberS{Value: string(status)},
		})
}

func (r *OrderRepo) SetTracking(ctx context.Context, id, trackingNumber string) error {
	return r.update(ctx, id, "SET tracking_number = :t, updated_at = :u", nil,
		map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberS{Value: trackingNumber},
		})
}

func (r *OrderRepo) update(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) error {
	values[":u"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)}

	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       orderKey(id),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(PK)"),
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}

	_, err := r.client.UpdateItem(ctx, input)
	err = storeerr.FromDynamo("update order", err)
	if errors.Is(err, storeerr.ErrConflict) {
		return storeerr.ErrNotFound
	}
	return err
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 orderKey(id),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	err = storeerr.FromDynamo("delete order", err)
	if errors.Is(err, storeerr.ErrConflict) {
		return storeerr.ErrNotFound
	}
	return err
}

func orderKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%s", id)},
		"SK": &types.AttributeValueMemberS{Value: "METADATA"},
	}
}

func idemPK(key string) string {
	return fmt.Sprintf("IDEM#%s", key)
}

func marshalOrder(order domain.Order) (map[string]types.AttributeValue, error) {
	rec := orderRecord{
		ID:              order.ID,
		UserID:          order.UserID,
		Items:           order.Items,
		Status:          string(order.Status),
		TotalAmount:     order.TotalAmount,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		Notes:           order.Notes,
		TrackingNumber:  order.TrackingNumber,
		IdempotencyKey:  order.IdempotencyKey,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal order: %w", err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%s", order.ID)}
	av["SK"] = &types.AttributeValueMemberS{Value: "METADATA"}
	av["GSI1PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", order.UserID)}
	av["GSI1SK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%s", order.CreatedAt.UTC().Format(time.RFC3339Nano))}
	return av, nil
}

func unmarshalOrder(item map[string]types.AttributeValue) (domain.Order, error) {
	var rec orderRecord
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return domain.Order{}, fmt.Errorf("unmarshal order: %w", err)
	}
	return domain.Order{
		ID:              rec.ID,
		UserID:          rec.UserID,
		Items:           rec.Items,
		Status:          domain.Status(strings.ToLower(rec.Status)),
		TotalAmount:     rec.TotalAmount,
		ShippingAddress: rec.ShippingAddress,
		PaymentMethod:   rec.PaymentMethod,
		Notes:           rec.Notes,
		TrackingNumber:  rec.TrackingNumber,
		IdempotencyKey:  rec.IdempotencyKey,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}, nil
}

func unmarshalOrders(items []map[string]types.AttributeValue) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(items))
	for _, item := range items {
		o, err := unmarshalOrder(item)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}
