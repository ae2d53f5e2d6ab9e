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
	defaultExpensesTableName = "expenses"
	expensesProjectIDIndex   = "project_id-index"
)

type laborDetailItem struct {
	UserID      string  `dynamodbav:"user_id"`
	DailyRate   float64 `dynamodbav:"daily_rate"`
	DaysPresent int     `dynamodbav:"days_present"`
	Total       float64 `dynamodbav:"total"`
}

type expenseItem struct {
	ID            string            `dynamodbav:"id"`
	ProjectID     string            `dynamodbav:"project_id"`
	Materials     []costLineItem    `dynamodbav:"materials,omitempty"`
	Miscellaneous []costLineItem    `dynamodbav:"miscellaneous,omitempty"`
	LaborDetails  []laborDetailItem `dynamodbav:"labor_details,omitempty"`

	TotalMaterialCost      float64 `dynamodbav:"total_material_cost"`
	TotalMiscellaneousCost float64 `dynamodbav:"total_miscellaneous_cost"`
	TotalLaborCost         float64 `dynamodbav:"total_labor_cost"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ExpenseDynamoRepository persists Expense entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type ExpenseDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IExpenseRepository = (*ExpenseDynamoRepository)(nil)

func NewExpenseDynamoRepository(ddb *dynamodb.Client) *ExpenseDynamoRepository {
	return &ExpenseDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EXPENSES_TABLE", defaultExpensesTableName),
	}
}

func (r *ExpenseDynamoRepository) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func (r *ExpenseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Item) == 0 {
		return entities.Expense{}, nil
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) GetByProjectID(ctx context.Context, projectID string) (entities.Expense, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(expensesProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Expense{}, err
	}
	if len(out.Items) == 0 {
		return entities.Expense{}, nil
	}

	var it expenseItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Expense{}, err
	}
	return fromExpenseItem(it), nil
}

func (r *ExpenseDynamoRepository) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	av, err := attributevalue.MarshalMap(toExpenseItem(e))
	if err != nil {
		return entities.Expense{}, err
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
		return entities.Expense{}, err
	}
	return e, nil
}

func toExpenseItem(e entities.Expense) expenseItem {
	materials := make([]costLineItem, 0, len(e.Materials))
	for _, m := range e.Materials {
		materials = append(materials, costLineItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice, Total: m.Total})
	}
	misc := make([]costLineItem, 0, len(e.Miscellaneous))
	for _, m := range e.Miscellaneous {
		misc = append(misc, costLineItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice, Total: m.Total})
	}
	labor := make([]laborDetailItem, 0, len(e.LaborDetails))
	for _, l := range e.LaborDetails {
		labor = append(labor, laborDetailItem{UserID: l.UserID, DailyRate: l.DailyRate, DaysPresent: l.DaysPresent, Total: l.Total})
	}

	return expenseItem{
		ID:                     e.ID,
		ProjectID:              e.ProjectID,
		Materials:              materials,
		Miscellaneous:          misc,
		LaborDetails:           labor,
		TotalMaterialCost:      e.TotalMaterialCost,
		TotalMiscellaneousCost: e.TotalMiscellaneousCost,
		TotalLaborCost:         e.TotalLaborCost,
		CreatedAt:              formatTime(e.CreatedAt),
		UpdatedAt:              formatTime(e.UpdatedAt),
	}
}

func fromExpenseItem(it expenseItem) entities.Expense {
	materials := make([]entities.ExpenseItem, 0, len(it.Materials))
	for _, m := range it.Materials {
		materials = append(materials, entities.ExpenseItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice, Total: m.Total})
	}
	misc := make([]entities.ExpenseItem, 0, len(it.Miscellaneous))
	for _, m := range it.Miscellaneous {
		misc = append(misc, entities.ExpenseItem{Description: m.Description, Quantity: m.Quantity, UnitPrice: m.UnitPrice, Total: m.Total})
	}
	labor := make([]entities.LaborDetail, 0, len(it.LaborDetails))
	for _, l := range it.LaborDetails {
		labor = append(labor, entities.LaborDetail{UserID: l.UserID, DailyRate: l.DailyRate, DaysPresent: l.DaysPresent, Total: l.Total})
	}

	return entities.Expense{
		ID:                     it.ID,
		ProjectID:              it.ProjectID,
		Materials:              materials,
		Miscellaneous:          misc,
		LaborDetails:           labor,
		TotalMaterialCost:      it.TotalMaterialCost,
		TotalMiscellaneousCost: it.TotalMiscellaneousCost,
		TotalLaborCost:         it.TotalLaborCost,
		CreatedAt:              parseTime(it.CreatedAt),
		UpdatedAt:              parseTime(it.UpdatedAt),
	}
}
