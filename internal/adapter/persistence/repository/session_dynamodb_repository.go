package repository

import (
	"context"
	"time"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultSessionsTableName = "estimator_sessions"

// dynamoDBAPI is the subset of *dynamodb.Client used by the session store.
type dynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type sessionItem struct {
	ID        string         `dynamodbav:"id"`
	Rows      []orderRowItem `dynamodbav:"rows"`
	CreatedAt string         `dynamodbav:"created_at"`
	UpdatedAt string         `dynamodbav:"updated_at"`
	ExpiresAt int64          `dynamodbav:"expires_at"`
}

type orderRowItem struct {
	ID        string `dynamodbav:"id"`
	People    *int64 `dynamodbav:"people,omitempty"`
	UnitPrice string `dynamodbav:"unit_price,omitempty"`
	Days      *int64 `dynamodbav:"days,omitempty"`
}

// SessionDynamoRepository persists estimator sessions in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - TTL attribute: expires_at (epoch seconds)
//
// DynamoDB deletes expired items lazily, so Get also checks expires_at.
type SessionDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(ddb *dynamodb.Client, tableName string) *SessionDynamoRepository {
	return newSessionDynamoRepository(ddb, tableName)
}

func newSessionDynamoRepository(ddb dynamoDBAPI, tableName string) *SessionDynamoRepository {
	if tableName == "" {
		tableName = defaultSessionsTableName
	}
	return &SessionDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *SessionDynamoRepository) Save(ctx context.Context, s entities.EstimatorSession) error {
	av, err := attributevalue.MarshalMap(toSessionItem(s))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SessionDynamoRepository) Get(ctx context.Context, id string) (entities.EstimatorSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimatorSession{}, nil
	}

	var it sessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimatorSession{}, err
	}
	s, err := fromSessionItem(it)
	if err != nil {
		return entities.EstimatorSession{}, err
	}
	if s.Expired(r.now()) {
		return entities.EstimatorSession{}, nil
	}
	return s, nil
}

func (r *SessionDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toSessionItem(s entities.EstimatorSession) sessionItem {
	rows := make([]orderRowItem, len(s.Rows))
	for i, row := range s.Rows {
		it := orderRowItem{ID: row.ID, People: row.People, Days: row.Days}
		if row.UnitPrice.Valid {
			it.UnitPrice = row.UnitPrice.Decimal.String()
		}
		rows[i] = it
	}
	return sessionItem{
		ID:        s.ID,
		Rows:      rows,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
		ExpiresAt: s.ExpiresAt.Unix(),
	}
}

func fromSessionItem(it sessionItem) (entities.EstimatorSession, error) {
	rows := make([]entities.OrderRow, len(it.Rows))
	for i, ri := range it.Rows {
		row := entities.OrderRow{ID: ri.ID, People: ri.People, Days: ri.Days}
		if ri.UnitPrice != "" {
			price, err := decimal.NewFromString(ri.UnitPrice)
			if err != nil {
				return entities.EstimatorSession{}, err
			}
			row.UnitPrice = decimal.NewNullDecimal(price)
		}
		rows[i] = row
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.EstimatorSession{
		ID:        it.ID,
		Rows:      rows,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
		ExpiresAt: time.Unix(it.ExpiresAt, 0).UTC(),
	}, nil
}
