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
	defaultEstimationsTableName = "estimations"
	estimationsProjectIDIndex   = "project_id-index"
)

type costLineItem struct {
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	UnitPrice   float64 `dynamodbav:"unit_price"`
	Total       float64 `dynamodbav:"total"`
}

type labourLineItem struct {
	Description string  `dynamodbav:"description"`
	Days        float64 `dynamodbav:"days"`
	Price       float64 `dynamodbav:"price"`
	Total       float64 `dynamodbav:"total"`
}

type estimationItem struct {
	ID               string           `dynamodbav:"id"`
	ProjectID        string           `dynamodbav:"project_id"`
	EstimationNumber string           `dynamodbav:"estimation_number"`
	Materials        []costLineItem   `dynamodbav:"materials,omitempty"`
	Labour           []labourLineItem `dynamodbav:"labour,omitempty"`
	Terms            []costLineItem   `dynamodbav:"terms,omitempty"`

	EstimatedAmount  float64  `dynamodbav:"estimated_amount"`
	QuotationAmount  *float64 `dynamodbav:"quotation_amount,omitempty"`
	CommissionAmount float64  `dynamodbav:"commission_amount"`
	Profit           *float64 `dynamodbav:"profit,omitempty"`

	IsChecked    bool   `dynamodbav:"is_checked"`
	CheckedByID  string `dynamodbav:"checked_by_id,omitempty"`
	CheckComment string `dynamodbav:"check_comment,omitempty"`

	IsApproved     bool   `dynamodbav:"is_approved"`
	ApprovedByID   string `dynamodbav:"approved_by_id,omitempty"`
	ApproveComment string `dynamodbav:"approve_comment,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// EstimationDynamoRepository persists Estimation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)
//
// The one-estimation-per-project rule is enforced by the use case through
// the GSI lookup before Create.

type EstimationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimationRepository = (*EstimationDynamoRepository)(nil)

func NewEstimationDynamoRepository(ddb *dynamodb.Client) *EstimationDynamoRepository {
	return &EstimationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATIONS_TABLE", defaultEstimationsTableName),
	}
}

func (r *EstimationDynamoRepository) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
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
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimation{}, nil
	}

	var it estimationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimation{}, err
	}
	return fromEstimationItem(it), nil
}

func (r *EstimationDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Estimation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimationsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimation{}, nil
	}

	var it estimationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Estimation{}, err
	}
	return fromEstimationItem(it), nil
}

func (r *EstimationDynamoRepository) Update(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
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
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEstimationItem(e entities.Estimation) estimationItem {
	materials := make([]costLineItem, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, costLineItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice, Total: m.Total})
	}
	labour := make([]labourLineItem, 0, len(e.Labour))
	for _, l := range e.Labour {
		labour = append(labour, labourLineItem{Description: l.Description, Days: l.Days, Price: l.Price, Total: l.Total})
	}
	terms := make([]costLineItem, 0, len(e.Terms))
	for _, t := range e.Terms {
		terms = append(terms, costLineItem{Description: t.Description, Quantity: t.Quantity, UnitPrice: t.UnitPrice, Total: t.Total})
	}

	return estimationItem{
		ID:               e.ID,
		ProjectID:        e.ProjectID,
		EstimationNumber: e.EstimationNumber,
		Materials:        materials,
		Labour:           labour,
		Terms:            terms,
		EstimatedAmount:  e.EstimatedAmount,
		QuotationAmount:  e.QuotationAmount,
		CommissionAmount: e.CommissionAmount,
		Profit:           e.Profit,
		IsChecked:        e.IsChecked,
		CheckedByID:      e.CheckedByID,
		CheckComment:     e.CheckComment,
		IsApproved:       e.IsApproved,
		ApprovedByID:     e.ApprovedByID,
		ApproveComment:   e.ApproveComment,
		CreatedAt:        formatTime(e.CreatedAt),
		UpdatedAt:        formatTime(e.UpdatedAt),
	}
}

func fromEstimationItem(it estimationItem) entities.Estimation {
	materials := make([]entities.MaterialItem, 0, len(it.Materials))
	for _, m := range it.Materials {
		materials = append(materials, entities.MaterialItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice, Total: m.Total})
	}
	labour := make([]entities.LabourItem, 0, len(it.Labour))
	for _, l := range it.Labour {
		labour = append(labour, entities.LabourItem{Description: l.Description, Days: l.Days, Price: l.Price, Total: l.Total})
	}
	terms := make([]entities.TermItem, 0, len(it.Terms))
	for _, t := range it.Terms {
		terms = append(terms, entities.TermItem{Description: t.Description, Quantity: t.Quantity, UnitPrice: t.UnitPrice, Total: t.Total})
	}

	return entities.Estimation{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		EstimationNumber: it.EstimationNumber,
		Materials:        materials,
		Labour:           labour,
		Terms:            terms,
		EstimatedAmount:  it.EstimatedAmount,
		QuotationAmount:  it.QuotationAmount,
		CommissionAmount: it.CommissionAmount,
		Profit:           it.Profit,
		IsChecked:        it.IsChecked,
		CheckedByID:      it.CheckedByID,
		CheckComment:     it.CheckComment,
		IsApproved:       it.IsApproved,
		ApprovedByID:     it.ApprovedByID,
		ApproveComment:   it.ApproveComment,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
