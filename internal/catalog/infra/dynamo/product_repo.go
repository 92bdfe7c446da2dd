package dynamo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/shopcraft/storefront/internal/catalog/app"
	"github.com/shopcraft/storefront/internal/catalog/domain"
	"github.com/shopcraft/storefront/internal/storeerr"
)

const categoryIndex = "GSI1"

type ProductRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProductRepo(client *dynamodb.Client, tableName string) *ProductRepo {
	return &ProductRepo{client: client, tableName: tableName}
}

type productRecord struct {
	ID          string    `dynamodbav:"id"`
	Title       string    `dynamodbav:"title"`
	Description string    `dynamodbav:"description"`
	Price       int64     `dynamodbav:"price"`
	Category    string    `dynamodbav:"category"`
	Image       string    `dynamodbav:"image"`
	Featured    bool      `dynamodbav:"featured"`
	Stock       *int32    `dynamodbav:"stock,omitempty"`
	CreatedAt   time.Time `dynamodbav:"created_at"`
	UpdatedAt   time.Time `dynamodbav:"updated_at"`
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	av, err := marshalProduct(p)
	if err != nil {
		return domain.Product{}, err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		return domain.Product{}, storeerr.FromDynamo("create product", err)
	}
	return p, nil
}

func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       productKey(id),
	})
	if err != nil {
		return domain.Product{}, storeerr.FromDynamo("get product", err)
	}
	if len(out.Item) == 0 {
		return domain.Product{}, app.ErrNotFound
	}
	return unmarshalProduct(out.Item)
}

func (r *ProductRepo) Put(ctx context.Context, p domain.Product) error {
	av, err := marshalProduct(p)
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return storeerr.FromDynamo("put product", err)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 productKey(id),
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	err = storeerr.FromDynamo("delete product", err)
	if errors.Is(err, storeerr.ErrConflict) {
		return app.ErrNotFound
	}
	return err
}

// List returns the catalog newest-first, optionally narrowed to a category
// via the category index. The full-catalog path scans; catalog sizes here
// are management-UI scale, not data-warehouse scale.
func (r *ProductRepo) List(ctx context.Context, category string) ([]domain.Product, error) {
	if category != "" {
		return r.listByCategory(ctx, category)
	}

	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, storeerr.FromDynamo("list products", err)
	}
	return sortedProducts(out.Items)
}

func (r *ProductRepo) listByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(categoryIndex),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("CATEGORY#%s", category)},
		},
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		return nil, storeerr.FromDynamo("list products by category", err)
	}
	return sortedProducts(out.Items)
}

func (r *ProductRepo) Featured(ctx context.Context) ([]domain.Product, error) {
	out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("featured = :t"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":t": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, storeerr.FromDynamo("featured products", err)
	}
	return sortedProducts(out.Items)
}

func productKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("PRODUCT#%s", id)},
		"SK": &types.AttributeValueMemberS{Value: "METADATA"},
	}
}

func marshalProduct(p domain.Product) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(productRecord(p))
	if err != nil {
		return nil, fmt.Errorf("marshal product: %w", err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("PRODUCT#%s", p.ID)}
	av["SK"] = &types.AttributeValueMemberS{Value: "METADATA"}
	if p.Category != "" {
		av["GSI1PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("CATEGORY#%s", p.Category)}
		av["GSI1SK"] = &types.AttributeValueMemberS{Value: p.CreatedAt.UTC().Format(time.RFC3339)}
	}
	return av, nil
}

func unmarshalProduct(item map[string]types.AttributeValue) (domain.Product, error) {
	var rec productRecord
	if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
		return domain.Product{}, fmt.Errorf("unmarshal product: %w", err)
	}
	return domain.Product(rec), nil
}

func sortedProducts(items []map[string]types.AttributeValue) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(items))
	for _, item := range items {
		p, err := unmarshalProduct(item)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
