// Package dynamo holds the server-side cart mirror: a per-user document in
// the carts collection, written best-effort after checkout. The checkout
// path itself never reads it; the session store is authoritative.
package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shopcraft/storefront/internal/cart/domain"
	"github.com/shopcraft/storefront/internal/storeerr"
)

type CartRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewCartRepo(client *dynamodb.Client, tableName string) *CartRepo {
	return &CartRepo{client: client, tableName: tableName}
}

type cartRecord struct {
	UserID    string            `dynamodbav:"user_id"`
	Items     []domain.LineItem `dynamodbav:"items"`
	UpdatedAt time.Time         `dynamodbav:"updated_at"`
}

func (r *CartRepo) Save(ctx context.Context, userID string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}

	av, err := attributevalue.MarshalMap(cartRecord{
		UserID:    userID,
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("CART#%s", userID)}
	av["SK"] = &types.AttributeValueMemberS{Value: "METADATA"}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return storeerr.FromDynamo("save cart", err)
}

// Load returns an empty item list, not an error, when no mirror exists.
func (r *CartRepo) Load(ctx context.Context, userID string) ([]domain.LineItem, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("CART#%s", userID)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
	})
	if err != nil {
		return nil, storeerr.FromDynamo("load cart", err)
	}
	if len(out.Item) == 0 {
		return []domain.LineItem{}, nil
	}

	var rec cartRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return rec.Items, nil
}

func (r *CartRepo) Clear(ctx context.Context, userID string) error {
	return r.Save(ctx, userID, nil)
}
