package repository

import (
	"context"
	"sort"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultVisitLogsTableName = "visit_logs"
	visitLogsSalespersonIndex = "salesperson_id-index"
)

type visitLogItem struct {
	ID            string `dynamodbav:"id"`
	SalespersonID string `dynamodbav:"salesperson_id"`
	CustomerName  string `dynamodbav:"customer_name"`
	CustomerPhone string `dynamodbav:"customer_phone"`
	Purpose       string `dynamodbav:"purpose"`
	Notes         string `dynamodbav:"notes,omitempty"`
	VisitDate     string `dynamodbav:"visit_date"`
	Status        string `dynamodbav:"status"`
	CreatedAt     string `dynamodbav:"created_at"`
	VerifiedAt    string `dynamodbav:"verified_at,omitempty"`
}

// VisitLogDynamoRepository persists salesperson visits.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: salesperson_id-index (PK: salesperson_id, SK: visit_date)
type VisitLogDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IVisitLogRepository = (*VisitLogDynamoRepository)(nil)

func NewVisitLogDynamoRepository(ddb DynamoAPI, tableName string) *VisitLogDynamoRepository {
	return &VisitLogDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultVisitLogsTableName),
	}
}

func (r *VisitLogDynamoRepository) Create(ctx context.Context, v entities.VisitLog) (entities.VisitLog, error) {
	av, err := attributevalue.MarshalMap(toVisitLogItem(v))
	if err != nil {
		return entities.VisitLog{}, err
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
		return entities.VisitLog{}, err
	}
	return v, nil
}

func (r *VisitLogDynamoRepository) GetByID(ctx context.Context, id string) (entities.VisitLog, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.VisitLog{}, err
	}
	if len(out.Item) == 0 {
		return entities.VisitLog{}, nil
	}
	var it visitLogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VisitLog{}, err
	}
	return fromVisitLogItem(it), nil
}

// MarkVerified flips a pending visit to verified. A visit that is already
// verified (or missing) yields a zero value.
func (r *VisitLogDynamoRepository) MarkVerified(ctx context.Context, id string, at time.Time) (entities.VisitLog, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :verified, #verified_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#status":      "status",
			"#verified_at": "verified_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":  &types.AttributeValueMemberS{Value: string(entities.VisitPendingVerification)},
			":verified": &types.AttributeValueMemberS{Value: string(entities.VisitVerified)},
			":at":       &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.VisitLog{}, nil
		}
		return entities.VisitLog{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.VisitLog{}, nil
	}
	var it visitLogItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.VisitLog{}, err
	}
	return fromVisitLogItem(it), nil
}

func (r *VisitLogDynamoRepository) ListBySalesperson(ctx context.Context, salespersonID, visitDate string) ([]entities.VisitLog, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(visitLogsSalespersonIndex),
		KeyConditionExpression: aws.String("#sp = :sp AND #day = :day"),
		ExpressionAttributeNames: map[string]string{
			"#sp":  "salesperson_id",
			"#day": "visit_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sp":  &types.AttributeValueMemberS{Value: salespersonID},
			":day": &types.AttributeValueMemberS{Value: visitDate},
		},
	}

	var list []entities.VisitLog
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it visitLogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			list = append(list, fromVisitLogItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })
	return list, nil
}

func toVisitLogItem(v entities.VisitLog) visitLogItem {
	return visitLogItem{
		ID:            v.ID,
		SalespersonID: v.SalespersonID,
		CustomerName:  v.CustomerName,
		CustomerPhone: v.CustomerPhone,
		Purpose:       v.Purpose,
		Notes:         v.Notes,
		VisitDate:     v.VisitDate,
		Status:        string(v.Status),
		CreatedAt:     formatTime(v.CreatedAt),
		VerifiedAt:    formatTimePtr(v.VerifiedAt),
	}
}

func fromVisitLogItem(it visitLogItem) entities.VisitLog {
	return entities.VisitLog{
		ID:            it.ID,
		SalespersonID: it.SalespersonID,
		CustomerName:  it.CustomerName,
		CustomerPhone: it.CustomerPhone,
		Purpose:       it.Purpose,
		Notes:         it.Notes,
		VisitDate:     it.VisitDate,
		Status:        entities.VisitStatus(it.Status),
		CreatedAt:     parseTime(it.CreatedAt),
		VerifiedAt:    parseTimePtr(it.VerifiedAt),
	}
}
