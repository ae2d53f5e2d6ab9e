package repository

import (
	"context"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultLPOsTableName = "lpos"
	lposProjectIDIndex   = "project_id-index"
)

type lpoItem struct {
	ID           string         `dynamodbav:"id"`
	ProjectID    string         `dynamodbav:"project_id"`
	Supplier     string         `dynamodbav:"supplier"`
	Items        []costLineItem `dynamodbav:"items,omitempty"`
	TotalAmount  float64        `dynamodbav:"total_amount"`
	DocumentKeys []string       `dynamodbav:"document_keys,omitempty"`
	CreatedAt    string         `dynamodbav:"created_at"`
	UpdatedAt    string         `dynamodbav:"updated_at"`
}

// LPODynamoRepository persists LPO entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type LPODynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILPORepository = (*LPODynamoRepository)(nil)

func NewLPODynamoRepository(ddb *dynamodb.Client) *LPODynamoRepository {
	return &LPODynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LPOS_TABLE", defaultLPOsTableName),
	}
}

func (r *LPODynamoRepository) Create(ctx context.Context, l entities.LPO) (entities.LPO, error) {
	av, err := attributevalue.MarshalMap(toLPOItem(l))
	if err != nil {
		return entities.LPO{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LPO{}, err
	}
	return l, nil
}

func (r *LPODynamoRepository) GetByID(ctx context.Context, id string) (entities.LPO, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LPO{}, err
	}
	if len(out.Item) == 0 {
		return entities.LPO{}, nil
	}

	var it lpoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LPO{}, err
	}
	return fromLPOItem(it), nil
}

func (r *LPODynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.LPO, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(lposProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.LPO{}, err
	}
	if len(out.Items) == 0 {
		return entities.LPO{}, nil
	}

	var it lpoItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.LPO{}, err
	}
	return fromLPOItem(it), nil
}

func (r *LPODynamoRepository) Update(ctx context.Context, l entities.LPO) (entities.LPO, error) {
	av, err := attributevalue.MarshalMap(toLPOItem(l))
	if err != nil {
		return entities.LPO{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LPO{}, err
	}
	return l, nil
}

func toLPOItem(l entities.LPO) lpoItem {
	items := make([]costLineItem, 0, len(l.Items))
	for _, i := range l.Items {
		items = append(items, costLineItem{Description: i.Description, Quantity: i.Quantity, UnitPrice: i.UnitPrice, Total: i.Total})
	}

	return lpoItem{
		ID:           l.ID,
		ProjectID:    l.ProjectID,
		Supplier:     l.Supplier,
		Items:        items,
		TotalAmount:  l.TotalAmount,
		DocumentKeys: l.DocumentKeys,
		CreatedAt:    formatTime(l.CreatedAt),
		UpdatedAt:    formatTime(l.UpdatedAt),
	}
}

func fromLPOItem(it lpoItem) entities.LPO {
	items := make([]entities.LPOItem, 0, len(it.Items))
	for _, i := range it.Items {
		items = append(items, entities.LPOItem{Description: i.Description, Quantity: i.Quantity, UnitPrice: i.UnitPrice, Total: i.Total})
	}

	return entities.LPO{
		ID:           it.ID,
		ProjectID:    it.ProjectID,
		Supplier:     it.Supplier,
		Items:        items,
		TotalAmount:  it.TotalAmount,
		DocumentKeys: it.DocumentKeys,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
