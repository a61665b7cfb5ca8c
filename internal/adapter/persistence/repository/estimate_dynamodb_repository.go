package repository

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	estimatesCustomerIndex    = "customer_id-index"
	estimatesNumberIndex      = "number-index"
)

type estimateItem struct {
	ID              string `dynamodbav:"id"`
	Number          int64  `dynamodbav:"number"`
	DraftID         string `dynamodbav:"draft_id"`
	CustomerID      string `dynamodbav:"customer_id"`
	SalespersonID   string `dynamodbav:"salesperson_id"`
	Date            string `dynamodbav:"date"`
	RateSheetID     string `dynamodbav:"rate_sheet_id"`
	Items           string `dynamodbav:"items"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	Totals          string `dynamodbav:"totals"`
	NetPayable      string `dynamodbav:"net_payable"`
	Status          string `dynamodbav:"status"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// EstimateDynamoRepository persists submitted estimates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//   - GSI: number-index (PK: number, N)
//
// Line items and totals are stored as JSON strings: an estimate is written
// once and only its status changes afterwards.
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultEstimatesTableName),
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}
	return unmarshalEstimate(out.Item)
}

func (r *EstimateDynamoRepository) GetByNumber(ctx context.Context, number int64) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesNumberIndex),
		KeyConditionExpression: aws.String("#number = :number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":number": &types.AttributeValueMemberN{Value: strconv.FormatInt(number, 10)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}
	return unmarshalEstimate(out.Items[0])
}

func (r *EstimateDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Estimate, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(estimatesCustomerIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	}

	var list []entities.Estimate
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalEstimates(out.Items)
		if err != nil {
			return nil, err
		}
		list = append(list, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	sortNewestFirst(list)
	return list, nil
}

// ListByDateRange scans for estimates created in [from, to]. It is an admin
// report path; the range is bounded by the caller.
func (r *EstimateDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Estimate, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#created_at BETWEEN :from AND :to"),
		ExpressionAttributeNames: map[string]string{
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	}

	var list []entities.Estimate
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		page, err := unmarshalEstimates(out.Items)
		if err != nil {
			return nil, err
		}
		list = append(list, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	sortNewestFirst(list)
	return list, nil
}

// UpdateStatus moves the estimate from -> to. It returns a zero Estimate when
// the estimate does not exist or is no longer in the from status.
func (r *EstimateDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.EstimateStatus) (entities.Estimate, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from":       &types.AttributeValueMemberS{Value: string(from)},
			":to":         &types.AttributeValueMemberS{Value: string(to)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	return unmarshalEstimate(out.Attributes)
}

func unmarshalEstimate(av map[string]types.AttributeValue) (entities.Estimate, error) {
	var it estimateItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func unmarshalEstimates(raw []map[string]types.AttributeValue) ([]entities.Estimate, error) {
	list := make([]entities.Estimate, 0, len(raw))
	for _, av := range raw {
		e, err := unmarshalEstimate(av)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, nil
}

func sortNewestFirst(list []entities.Estimate) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	items, err := json.Marshal(e.Items)
	if err != nil {
		return estimateItem{}, err
	}
	totals, err := json.Marshal(e.Totals)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:              e.ID,
		Number:          e.Number,
		DraftID:         e.DraftID,
		CustomerID:      e.CustomerID,
		SalespersonID:   e.SalespersonID,
		Date:            formatTime(e.Date),
		RateSheetID:     e.RateSheetID,
		Items:           string(items),
		DiscountPercent: e.DiscountPercent.String(),
		Totals:          string(totals),
		NetPayable:      e.Totals.NetPayableAmount.String(),
		Status:          string(e.Status),
		CreatedAt:       formatTime(e.CreatedAt),
		UpdatedAt:       formatTime(e.UpdatedAt),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	e := entities.Estimate{
		ID:              it.ID,
		Number:          it.Number,
		DraftID:         it.DraftID,
		CustomerID:      it.CustomerID,
		SalespersonID:   it.SalespersonID,
		Date:            parseTime(it.Date),
		RateSheetID:     it.RateSheetID,
		DiscountPercent: parseDecimal(it.DiscountPercent),
		Status:          entities.EstimateStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &e.Items); err != nil {
			return entities.Estimate{}, err
		}
	}
	if it.Totals != "" {
		if err := json.Unmarshal([]byte(it.Totals), &e.Totals); err != nil {
			return entities.Estimate{}, err
		}
	}
	return e, nil
}
