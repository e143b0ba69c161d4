package repository

import (
	"context"
	"time"

	"magazin_online/internal/domain/entities"
	"magazin_online/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultStatusChecksTableName = "status_checks"

type statusCheckItem struct {
	ID         string `dynamodbav:"id"`
	ClientName string `dynamodbav:"client_name"`
	Timestamp  string `dynamodbav:"timestamp"`
}

// StatusCheckDynamoRepository persists StatusCheck entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type StatusCheckDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStatusCheckRepository = (*StatusCheckDynamoRepository)(nil)

func NewStatusCheckDynamoRepository(ddb *dynamodb.Client) *StatusCheckDynamoRepository {
	return &StatusCheckDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STATUS_CHECKS_TABLE", defaultStatusChecksTableName),
	}
}

func (r *StatusCheckDynamoRepository) Create(ctx context.Context, s entities.StatusCheck) (entities.StatusCheck, error) {
	av, err := attributevalue.MarshalMap(statusCheckItem{
		ID:         s.ID,
		ClientName: s.ClientName,
		Timestamp:  s.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.StatusCheck{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.StatusCheck{}, err
	}
	return s, nil
}

func (r *StatusCheckDynamoRepository) List(ctx context.Context, limit int32) ([]entities.StatusCheck, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
		Limit:     aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}

	checks := make([]entities.StatusCheck, 0, len(out.Items))
	for _, raw := range out.Items {
		var it statusCheckItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
		checks = append(checks, entities.StatusCheck{
			ID:         it.ID,
			ClientName: it.ClientName,
			Timestamp:  ts,
		})
	}
	return checks, nil
}
