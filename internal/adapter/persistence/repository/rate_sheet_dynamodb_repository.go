package repository

import (
	"context"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultRateSheetsTableName = "rate_sheets"
	rateSheetPartition         = "RATES"
)

type rateSheetItem struct {
	PK            string `dynamodbav:"pk"`
	EffectiveDate string `dynamodbav:"effective_date"`
	Gold24K       string `dynamodbav:"gold_24k"`
	Gold22K       string `dynamodbav:"gold_22k"`
	Gold18K       string `dynamodbav:"gold_18k"`
	Gold16K       string `dynamodbav:"gold_16k"`
	Silver        string `dynamodbav:"silver"`
	CreatedBy     string `dynamodbav:"created_by,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// RateSheetDynamoRepository stores daily rate sheets.
//
// Table requirements:
//   - PK: pk (string, always "RATES")
//   - SK: effective_date (string, YYYY-MM-DD)
type RateSheetDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IRateSheetRepository = (*RateSheetDynamoRepository)(nil)

func NewRateSheetDynamoRepository(ddb DynamoAPI, tableName string) *RateSheetDynamoRepository {
	return &RateSheetDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultRateSheetsTableName),
	}
}

// Create stores s. Sheets are immutable: a second sheet for the same date
// yields a zero RateSheet.
func (r *RateSheetDynamoRepository) Create(ctx context.Context, s entities.RateSheet) (entities.RateSheet, error) {
	av, err := attributevalue.MarshalMap(toRateSheetItem(s))
	if err != nil {
		return entities.RateSheet{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "effective_date",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.RateSheet{}, nil
		}
		return entities.RateSheet{}, err
	}
	return s, nil
}

// GetEffective returns the newest sheet whose effective date is on or before date.
func (r *RateSheetDynamoRepository) GetEffective(ctx context.Context, date time.Time) (entities.RateSheet, error) {
	day := date.Format(entities.RateSheetDateLayout)
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#pk = :pk AND #sk <= :day"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "pk",
			"#sk": "effective_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":  &types.AttributeValueMemberS{Value: rateSheetPartition},
			":day": &types.AttributeValueMemberS{Value: day},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.RateSheet{}, err
	}
	if len(out.Items) == 0 {
		return entities.RateSheet{}, nil
	}

	var it rateSheetItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.RateSheet{}, err
	}
	return fromRateSheetItem(it), nil
}

func toRateSheetItem(s entities.RateSheet) rateSheetItem {
	return rateSheetItem{
		PK:            rateSheetPartition,
		EffectiveDate: s.EffectiveDate.Format(entities.RateSheetDateLayout),
		Gold24K:       s.Gold24K.String(),
		Gold22K:       s.Gold22K.String(),
		Gold18K:       s.Gold18K.String(),
		Gold16K:       s.Gold16K.String(),
		Silver:        s.Silver.String(),
		CreatedBy:     s.CreatedBy,
		CreatedAt:     formatTime(s.CreatedAt),
	}
}

func fromRateSheetItem(it rateSheetItem) entities.RateSheet {
	day, _ := time.Parse(entities.RateSheetDateLayout, it.EffectiveDate)
	return entities.RateSheet{
		ID:            it.EffectiveDate,
		EffectiveDate: day,
		Gold24K:       parseDecimal(it.Gold24K),
		Gold22K:       parseDecimal(it.Gold22K),
		Gold18K:       parseDecimal(it.Gold18K),
		Gold16K:       parseDecimal(it.Gold16K),
		Silver:        parseDecimal(it.Silver),
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
