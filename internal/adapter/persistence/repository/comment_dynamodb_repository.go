package repository

import (
	"context"
	"sort"

	"aga_techserv/internal/domain/entities"
	"aga_techserv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCommentsTableName = "comments"
	commentsProjectIDIndex   = "project_id-index"
)

type commentItem struct {
	ID         string `dynamodbav:"id"`
	ProjectID  string `dynamodbav:"project_id"`
	ActorID    string `dynamodbav:"actor_id"`
	Content    string `dynamodbav:"content"`
	ActionType string `dynamodbav:"action_type"`
	Progress   *int   `dynamodbav:"progress,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// CommentDynamoRepository persists the append-only Comment activity log.
// There is intentionally no update or delete path.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: project_id-index (PK: project_id)

type CommentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICommentRepository = (*CommentDynamoRepository)(nil)

func NewCommentDynamoRepository(ddb *dynamodb.Client) *CommentDynamoRepository {
	return &CommentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMMENTS_TABLE", defaultCommentsTableName),
	}
}

func (r *CommentDynamoRepository) Create(ctx context.Context, c entities.Comment) (entities.Comment, error) {
	av, err := attributevalue.MarshalMap(toCommentItem(c))
	if err != nil {
		return entities.Comment{}, err
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
		return entities.Comment{}, err
	}
	return c, nil
}

func (r *CommentDynamoRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Comment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(commentsProjectIDIndex),
		KeyConditionExpression: aws.String("project_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: projectID},
		},
	})
	if err != nil {
		return nil, err
	}

	comments := make([]entities.Comment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it commentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		comments = append(comments, fromCommentItem(it))
	}

	// The GSI has no sort key; order newest-first in memory.
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func toCommentItem(c entities.Comment) commentItem {
	return commentItem{
		ID:         c.ID,
		ProjectID:  c.ProjectID,
		ActorID:    c.ActorID,
		Content:    c.Content,
		ActionType: string(c.ActionType),
		Progress:   c.Progress,
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func fromCommentItem(it commentItem) entities.Comment {
	return entities.Comment{
		ID:         it.ID,
		ProjectID:  it.ProjectID,
		ActorID:    it.ActorID,
		Content:    it.Content,
		ActionType: entities.CommentActionType(it.ActionType),
		Progress:   it.Progress,
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
