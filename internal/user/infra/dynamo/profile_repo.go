package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shopcraft/storefront/internal/storeerr"
	"github.com/shopcraft/storefront/internal/user/domain"
)

type ProfileRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewProfileRepo(client *dynamodb.Client, tableName string) *ProfileRepo {
	return &ProfileRepo{client: client, tableName: tableName}
}

type profileRecord struct {
	UID         string             `dynamodbav:"uid"`
	Email       string             `dynamodbav:"email"`
	FirstName   string             `dynamodbav:"first_name,omitempty"`
	LastName    string             `dynamodbav:"last_name,omitempty"`
	DisplayName string             `dynamodbav:"display_name,omitempty"`
	Phone       string             `dynamodbav:"phone,omitempty"`
	Address     domain.Address     `dynamodbav:"address"`
	Preferences domain.Preferences `dynamodbav:"preferences"`
	CreatedAt   time.Time          `dynamodbav:"created_at"`
	UpdatedAt   time.Time          `dynamodbav:"updated_at"`
}

func (r *ProfileRepo) Create(ctx context.Context, p domain.Profile) error {
	av, err := marshalProfile(p)
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	return storeerr.FromDynamo("create profile", err)
}

func (r *ProfileRepo) Get(ctx context.Context, uid string) (domain.Profile, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       profileKey(uid),
	})
	if err != nil {
		return domain.Profile{}, storeerr.FromDynamo("get profile", err)
	}
	if len(out.Item) == 0 {
		return domain.Profile{}, storeerr.ErrNotFound
	}

	var rec profileRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return domain.Profile{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return domain.Profile(rec), nil
}

func (r *ProfileRepo) Put(ctx context.Context, p domain.Profile) error {
	av, err := marshalProfile(p)
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return storeerr.FromDynamo("put profile", err)
}

func (r *ProfileRepo) Delete(ctx context.Context, uid string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       profileKey(uid),
	})
	return storeerr.FromDynamo("delete profile", err)
}

func profileKey(uid string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", uid)},
		"SK": &types.AttributeValueMemberS{Value: "PROFILE"},
	}
}

func marshalProfile(p domain.Profile) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(profileRecord(p))
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}
	av["PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("USER#%s", p.UID)}
	av["SK"] = &types.AttributeValueMemberS{Value: "PROFILE"}
	return av, nil
}
