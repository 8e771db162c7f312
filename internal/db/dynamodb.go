package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/wordsentiment/internal/models"
)

type ItemPutter interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// ResultStore keeps a copy of each analysis result in a DynamoDB table.
type ResultStore struct {
	client ItemPutter
	table  string
	now    func() time.Time
}

func NewResultStore(client ItemPutter, table string) *ResultStore {
	return &ResultStore{client: client, table: table, now: time.Now}
}

type storedResult struct {
	models.AnalysisResult
	CreatedAt int64 `dynamodbav:"created_at"`
}

func ResultToDynamoDBItem(result models.AnalysisResult, createdAt time.Time) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(storedResult{
		AnalysisResult: result,
		CreatedAt:      createdAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("[DynamoDB] failed to marshal result: %w", err)
	}
	return item, nil
}

func (s *ResultStore) Store(ctx context.Context, result models.AnalysisResult) error {
	item, err := ResultToDynamoDBItem(result, s.now())
	if err != nil {
		return err
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] failed to store analysis result: %w", err)
	}

	slog.Info("[DynamoDB] Successfully stored analysis result",
		slog.String("table", s.table),
		slog.String("file_name", result.FileName))
	return nil
}
