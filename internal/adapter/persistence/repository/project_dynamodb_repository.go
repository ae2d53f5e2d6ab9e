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
	defaultProjectsTableName   = "projects"
	projectsProjectNumberIndex = "project_number-index"
	projectsStatusIndex        = "status-index"
)

type projectItem struct {
	ID            string   `dynamodbav:"id"`
	ProjectNumber string   `dynamodbav:"project_number"`
	Name          string   `dynamodbav:"name"`
	Description   string   `dynamodbav:"description,omitempty"`
	ClientID      string   `dynamodbav:"client_id,omitempty"`
	Location      string   `dynamodbav:"location,omitempty"`
	Building      string   `dynamodbav:"building,omitempty"`
	Apartment     string   `dynamodbav:"apartment,omitempty"`
	Status        string   `dynamodbav:"status"`
	Progress      int      `dynamodbav:"progress"`
	EngineerID    string   `dynamodbav:"engineer_id,omitempty"`
	WorkerIDs     []string `dynamodbav:"worker_ids,omitempty"`
	DriverID      string   `dynamodbav:"driver_id,omitempty"`

	WorkStartDate        string `dynamodbav:"work_start_date,omitempty"`
	WorkEndDate          string `dynamodbav:"work_end_date,omitempty"`
	WorkCompletionDate   string `dynamodbav:"work_completion_date,omitempty"`
	HandoverDate         string `dynamodbav:"handover_date,omitempty"`
	AcceptanceDate       string `dynamodbav:"acceptance_date,omitempty"`
	GRNNumber            string `dynamodbav:"grn_number,omitempty"`
	WorkCompletionNumber string `dynamodbav:"work_completion_number,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_number-index (PK: project_number)
//   - GSI: status-index (PK: status)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetByProjectNumber(ctx context.Context, number string) (entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsProjectNumberIndex),
		KeyConditionExpression: aws.String("project_number = :pn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pn": &types.AttributeValueMemberS{Value: number},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Items) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(out.Items))
	for _, raw := range out.Items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		projects = append(projects, fromProjectItem(it))
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:            p.ID,
		ProjectNumber: p.ProjectNumber,
		Name:          p.Name,
		Description:   p.Description,
		ClientID:      p.ClientID,
		Location:      p.Location,
		Building:      p.Building,
		Apartment:     p.Apartment,
		Status:        string(p.Status),
		Progress:      p.Progress,
		EngineerID:    p.EngineerID,
		WorkerIDs:     p.WorkerIDs,
		DriverID:      p.DriverID,

		WorkStartDate:        formatTimePtr(p.WorkStartDate),
		WorkEndDate:          formatTimePtr(p.WorkEndDate),
		WorkCompletionDate:   formatTimePtr(p.WorkCompletionDate),
		HandoverDate:         formatTimePtr(p.HandoverDate),
		AcceptanceDate:       formatTimePtr(p.AcceptanceDate),
		GRNNumber:            p.GRNNumber,
		WorkCompletionNumber: p.WorkCompletionNumber,

		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:            it.ID,
		ProjectNumber: it.ProjectNumber,
		Name:          it.Name,
		Description:   it.Description,
		ClientID:      it.ClientID,
		Location:      it.Location,
		Building:      it.Building,
		Apartment:     it.Apartment,
		Status:        entities.ProjectStatus(it.Status),
		Progress:      it.Progress,
		EngineerID:    it.EngineerID,
		WorkerIDs:     it.WorkerIDs,
		DriverID:      it.DriverID,

		WorkStartDate:        parseTimePtr(it.WorkStartDate),
		WorkEndDate:          parseTimePtr(it.WorkEndDate),
		WorkCompletionDate:   parseTimePtr(it.WorkCompletionDate),
		HandoverDate:         parseTimePtr(it.HandoverDate),
		AcceptanceDate:       parseTimePtr(it.AcceptanceDate),
		GRNNumber:            it.GRNNumber,
		WorkCompletionNumber: it.WorkCompletionNumber,

		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
