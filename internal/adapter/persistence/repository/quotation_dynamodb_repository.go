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
	defaultQuotationsTableName = "quotations"
	quotationsProjectIDIndex   = "project_id-index"
)

type quotationLineItem struct {
	Description string  `dynamodbav:"description"`
	UOM         string  `dynamodbav:"uom,omitempty"`
	Quantity    float64 `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Total       float64 `dynamodbav:"total"`
	ImageKey    string  `dynamodbav:"image_key,omitempty"`
}

type quotationItem struct {
	ID              string              `dynamodbav:"id"`
	ProjectID       string              `dynamodbav:"project_id"`
	EstimationID    string              `dynamodbav:"estimation_id"`
	QuotationNumber string              `dynamodbav:"quotation_number"`
	Items           []quotationLineItem `dynamodbav:"items,omitempty"`

	VATPercentage float64 `dynamodbav:"vat_percentage"`
	Subtotal      float64 `dynamodbav:"subtotal"`
	VATAmount     float64 `dynamodbav:"vat_amount"`
	NetAmount     float64 `dynamodbav:"net_amount"`

	IsApproved   bool   `dynamodbav:"is_approved"`
	ApprovedByID string `dynamodbav:"approved_by_id,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Quotation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func (r *QuotationDynamoRepository) Update(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	av, err := attributevalue.MarshalMap(toQuotationItem(q))
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuotationItem(q entities.Quotation) quotationItem {
	items := make([]quotationLineItem, 0, len(q.Items))
	for _, i := range q.Items {
		items = append(items, quotationLineItem{
			Description: i.Description, UOM: i.UOM, Quantity: i.Quantity,
			UnitPrice: i.UnitPrice, Total: i.Total, ImageKey: i.ImageKey,
		})
	}

	return quotationItem{
		ID:              q.ID,
		ProjectID:       q.ProjectID,
		EstimationID:    q.EstimationID,
		QuotationNumber: q.QuotationNumber,
		Items:           items,
		VATPercentage:   q.VATPercentage,
		Subtotal:        q.Subtotal,
		VATAmount:       q.VATAmount,
		NetAmount:       q.NetAmount,
		IsApproved:      q.IsApproved,
		ApprovedByID:    q.ApprovedByID,
		CreatedAt:       formatTime(q.CreatedAt),
		UpdatedAt:       formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	items := make([]entities.QuotationItem, 0, len(it.Items))
	for _, i := range it.Items {
		items = append(items, entities.QuotationItem{
			Description: i.Description, UOM: i.UOM, Quantity: i.Quantity,
			UnitPrice: i.UnitPrice, Total: i.Total, ImageKey: i.ImageKey,
		})
	}

	return entities.Quotation{
		ID:              it.ID,
		ProjectID:       it.ProjectID,
		EstimationID:    it.EstimationID,
		QuotationNumber: it.QuotationNumber,
		Items:           items,
		VATPercentage:   it.VATPercentage,
		Subtotal:        it.Subtotal,
		VATAmount:       it.VATAmount,
		NetAmount:       it.NetAmount,
		IsApproved:      it.IsApproved,
		ApprovedByID:    it.ApprovedByID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
