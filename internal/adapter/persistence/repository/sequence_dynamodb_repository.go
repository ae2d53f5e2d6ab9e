package repository

import (
	"context"
	"errors"
	"strconv"

	"aga_techserv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSequencesTableName = "project_sequences"

// SequenceDynamoRepository reserves project sequence numbers with a single
// atomic ADD per call, so concurrent creations never observe the same
// value. One counter item exists per calendar year.
//
// Table requirements:
//   - PK: year (string)

type SequenceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISequenceRepository = (*SequenceDynamoRepository)(nil)

func NewSequenceDynamoRepository(ddb *dynamodb.Client) *SequenceDynamoRepository {
	return &SequenceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SEQUENCES_TABLE", defaultSequencesTableName),
	}
}

func (r *SequenceDynamoRepository) NextProjectSequence(ctx context.Context, year int) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"year": &types.AttributeValueMemberS{Value: strconv.Itoa(year)},
		},
		// ADD creates the counter at 1 on first use and is atomic after.
		UpdateExpression: aws.String("ADD #counter :one"),
		ExpressionAttributeNames: map[string]string{
			"#counter": "counter",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	counter, ok := out.Attributes["counter"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errMissingCounter
	}
	return strconv.ParseInt(counter.Value, 10, 64)
}

var errMissingCounter = errors.New("sequence counter attribute missing from update response")
