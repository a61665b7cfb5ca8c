package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"jiyajewellery/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(in)
}

var conditionFailed = &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleEstimate(id string, createdAt time.Time) entities.Estimate {
	return entities.Estimate{
		ID:              id,
		Number:          7,
		DraftID:         "draft-1",
		CustomerID:      "cust-1",
		SalespersonID:   "sp-1",
		Date:            createdAt,
		RateSheetID:     "2026-03-01",
		DiscountPercent: dec("2.5"),
		Items: []entities.LineItem{{
			ID:          "li-1",
			Source:      entities.ItemSourceProduct,
			Name:        "Ring",
			MetalType:   entities.MetalGold,
			Purity:      "22K",
			PricingMode: entities.PricingByWeight,
			Quantity:    1,
			GrossWeight: dec("4.25"),
			TotalPrice:  dec("31476.80"),
		}},
		Totals:    entities.EstimateTotals{TotalAmount: dec("31476.80"), NetPayableAmount: dec("31477")},
		Status:    entities.EstimateStatusPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func marshalEstimate(t *testing.T, e entities.Estimate) map[string]types.AttributeValue {
	t.Helper()
	it, err := toEstimateItem(e)
	require.NoError(t, err)
	av, err := attributevalue.MarshalMap(it)
	require.NoError(t, err)
	return av
}

func TestEstimateRepository_CreateAndGetRoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	var stored map[string]types.AttributeValue
	ddb := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "estimates", aws.ToString(in.TableName))
			assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			assert.True(t, aws.ToBool(in.ConsistentRead))
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewEstimateDynamoRepository(ddb, "")

	_, err := repo.Create(context.Background(), sampleEstimate("est-1", created))
	require.NoError(t, err)

	n, ok := stored["number"].(*types.AttributeValueMemberN)
	require.True(t, ok, "number must be stored as N for the number-index")
	assert.Equal(t, "7", n.Value)

	got, err := repo.GetByID(context.Background(), "est-1")
	require.NoError(t, err)
	assert.Equal(t, "est-1", got.ID)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.DiscountPercent.Equal(dec("2.5")))
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].GrossWeight.Equal(dec("4.25")))
	assert.True(t, got.Totals.NetPayableAmount.Equal(dec("31477")))
}

func TestEstimateRepository_GetByIDMissing(t *testing.T) {
	ddb := &fakeDynamo{
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	got, err := NewEstimateDynamoRepository(ddb, "estimates").GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestEstimateRepository_GetByNumberUsesIndex(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			assert.Equal(t, estimatesNumberIndex, aws.ToString(in.IndexName))
			assert.Equal(t, &types.AttributeValueMemberN{Value: "7"}, in.ExpressionAttributeValues[":number"])
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalEstimate(t, sampleEstimate("est-1", created))}}, nil
		},
	}
	got, err := NewEstimateDynamoRepository(ddb, "").GetByNumber(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "est-1", got.ID)
}

func TestEstimateRepository_ListByCustomerIDPagesAndSorts(t *testing.T) {
	older := sampleEstimate("old", time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	newer := sampleEstimate("new", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	calls := 0
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			if calls == 1 {
				assert.Nil(t, in.ExclusiveStartKey)
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{marshalEstimate(t, older)},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "old"}},
				}, nil
			}
			assert.NotNil(t, in.ExclusiveStartKey)
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{marshalEstimate(t, newer)}}, nil
		},
	}
	list, err := NewEstimateDynamoRepository(ddb, "").ListByCustomerID(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "old", list[1].ID)
}

func TestEstimateRepository_ListByDateRangeFilter(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)
	ddb := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			assert.Equal(t, "#created_at BETWEEN :from AND :to", aws.ToString(in.FilterExpression))
			assert.Equal(t, &types.AttributeValueMemberS{Value: formatTime(from)}, in.ExpressionAttributeValues[":from"])
			return &dynamodb.ScanOutput{}, nil
		},
	}
	list, err := NewEstimateDynamoRepository(ddb, "").ListByDateRange(context.Background(), from, to)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEstimateRepository_UpdateStatus(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	accepted := sampleEstimate("est-1", created)
	accepted.Status = entities.EstimateStatusAccepted

	t.Run("moves from the observed status", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				assert.Equal(t, "attribute_exists(#id) AND #status = :from", aws.ToString(in.ConditionExpression))
				assert.Equal(t, &types.AttributeValueMemberS{Value: "pending"}, in.ExpressionAttributeValues[":from"])
				assert.Equal(t, &types.AttributeValueMemberS{Value: "accepted"}, in.ExpressionAttributeValues[":to"])
				assert.Equal(t, "id", in.ExpressionAttributeNames["#id"])
				return &dynamodb.UpdateItemOutput{Attributes: marshalEstimate(t, accepted)}, nil
			},
		}
		got, err := NewEstimateDynamoRepository(ddb, "").UpdateStatus(context.Background(), "est-1", entities.EstimateStatusPending, entities.EstimateStatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, entities.EstimateStatusAccepted, got.Status)
	})

	t.Run("condition failure yields zero value", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, conditionFailed
			},
		}
		got, err := NewEstimateDynamoRepository(ddb, "").UpdateStatus(context.Background(), "est-1", entities.EstimateStatusPending, entities.EstimateStatusAccepted)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, errors.New("throttled")
			},
		}
		_, err := NewEstimateDynamoRepository(ddb, "").UpdateStatus(context.Background(), "est-1", entities.EstimateStatusPending, entities.EstimateStatusAccepted)
		assert.EqualError(t, err, "throttled")
	})
}

func TestRateSheetRepository(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sheet := entities.RateSheet{
		ID:            "2026-03-01",
		EffectiveDate: day,
		Gold24K:       dec("7150"),
		Gold22K:       dec("6554.17"),
		Gold18K:       dec("5362.50"),
		Gold16K:       dec("4766.67"),
		Silver:        dec("92.5"),
		CreatedBy:     "admin-1",
		CreatedAt:     day.Add(9 * time.Hour),
	}

	t.Run("create stores decimals as strings", func(t *testing.T) {
		ddb := &fakeDynamo{
			putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				assert.Equal(t, "attribute_not_exists(#sk)", aws.ToString(in.ConditionExpression))
				assert.Equal(t, &types.AttributeValueMemberS{Value: "RATES"}, in.Item["pk"])
				assert.Equal(t, &types.AttributeValueMemberS{Value: "6554.17"}, in.Item["gold_22k"])
				return &dynamodb.PutItemOutput{}, nil
			},
		}
		got, err := NewRateSheetDynamoRepository(ddb, "").Create(context.Background(), sheet)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", got.ID)
	})

	t.Run("duplicate date yields zero value", func(t *testing.T) {
		ddb := &fakeDynamo{
			putItem: func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) { return nil, conditionFailed },
		}
		got, err := NewRateSheetDynamoRepository(ddb, "").Create(context.Background(), sheet)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("effective sheet is the newest on or before the date", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toRateSheetItem(sheet))
		require.NoError(t, err)
		ddb := &fakeDynamo{
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				assert.False(t, aws.ToBool(in.ScanIndexForward))
				assert.Equal(t, int32(1), aws.ToInt32(in.Limit))
				assert.Equal(t, &types.AttributeValueMemberS{Value: "2026-03-04"}, in.ExpressionAttributeValues[":day"])
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
			},
		}
		got, err := NewRateSheetDynamoRepository(ddb, "").GetEffective(context.Background(), day.AddDate(0, 0, 3))
		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", got.ID)
		assert.True(t, got.EffectiveDate.Equal(day))
		assert.True(t, got.Silver.Equal(dec("92.5")))
	})

	t.Run("no sheet yet", func(t *testing.T) {
		ddb := &fakeDynamo{
			query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) { return &dynamodb.QueryOutput{}, nil },
		}
		got, err := NewRateSheetDynamoRepository(ddb, "").GetEffective(context.Background(), day)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestAttendanceRepository(t *testing.T) {
	in := time.Date(2026, 3, 1, 4, 0, 0, 0, time.UTC)
	out := in.Add(9 * time.Hour)
	rec := entities.Attendance{
		ID:               "u-1#2026-03-01",
		UserID:           "u-1",
		Date:             "2026-03-01",
		State:            entities.AttendanceCheckedIn,
		CheckInAt:        &in,
		CheckInLocation:  &entities.Location{Latitude: 12.9716, Longitude: 77.5946, Accuracy: 8},
		CheckInDistanceM: 3.2,
		UpdatedAt:        in,
	}

	t.Run("second check-in for the day loses", func(t *testing.T) {
		ddb := &fakeDynamo{
			putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
				assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(in.ConditionExpression))
				return nil, conditionFailed
			},
		}
		got, err := NewAttendanceDynamoRepository(ddb, "").CreateCheckIn(context.Background(), rec)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("check-out requires checked_in", func(t *testing.T) {
		closed := rec
		closed.State = entities.AttendanceCheckedOut
		closed.CheckOutAt = &out
		closed.CheckOutLocation = &entities.Location{Latitude: 12.9717, Longitude: 77.5946, Accuracy: 5}
		closed.CheckOutDistanceM = 11.1
		closed.UpdatedAt = out

		ddb := &fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				assert.Equal(t, "attribute_exists(#id) AND #state = :checked_in", aws.ToString(in.ConditionExpression))
				assert.Equal(t, &types.AttributeValueMemberS{Value: "checked_in"}, in.ExpressionAttributeValues[":checked_in"])
				assert.Equal(t, &types.AttributeValueMemberN{Value: "11.1"}, in.ExpressionAttributeValues[":dist"])
				loc, ok := in.ExpressionAttributeValues[":loc"].(*types.AttributeValueMemberM)
				require.True(t, ok)
				assert.Contains(t, loc.Value, "lat")

				av, err := attributevalue.MarshalMap(toAttendanceItem(closed))
				require.NoError(t, err)
				return &dynamodb.UpdateItemOutput{Attributes: av}, nil
			},
		}
		got, err := NewAttendanceDynamoRepository(ddb, "").UpdateCheckOut(context.Background(), closed)
		require.NoError(t, err)
		assert.Equal(t, entities.AttendanceCheckedOut, got.State)
		require.NotNil(t, got.CheckOutAt)
		assert.True(t, got.CheckOutAt.Equal(out))
		require.NotNil(t, got.CheckInLocation)
		assert.Equal(t, 12.9716, got.CheckInLocation.Latitude)
	})

	t.Run("check-out on a closed record yields zero value", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) { return nil, conditionFailed },
		}
		got, err := NewAttendanceDynamoRepository(ddb, "").UpdateCheckOut(context.Background(), rec)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestVisitLogRepository(t *testing.T) {
	created := time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)
	visit := func(id string, at time.Time) entities.VisitLog {
		return entities.VisitLog{
			ID:            id,
			SalespersonID: "sp-1",
			CustomerName:  "Asha",
			CustomerPhone: "9876543210",
			Purpose:       "collection",
			VisitDate:     "2026-03-01",
			Status:        entities.VisitPendingVerification,
			CreatedAt:     at,
		}
	}

	t.Run("mark verified only from pending", func(t *testing.T) {
		ddb := &fakeDynamo{
			updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				assert.Equal(t, "attribute_exists(#id) AND #status = :pending", aws.ToString(in.ConditionExpression))
				return nil, conditionFailed
			},
		}
		got, err := NewVisitLogDynamoRepository(ddb, "").MarkVerified(context.Background(), "v-1", created)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("list is ordered by creation", func(t *testing.T) {
		late, err := attributevalue.MarshalMap(toVisitLogItem(visit("v-2", created.Add(time.Hour))))
		require.NoError(t, err)
		early, err := attributevalue.MarshalMap(toVisitLogItem(visit("v-1", created)))
		require.NoError(t, err)

		ddb := &fakeDynamo{
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				assert.Equal(t, visitLogsSalespersonIndex, aws.ToString(in.IndexName))
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{late, early}}, nil
			},
		}
		list, err := NewVisitLogDynamoRepository(ddb, "").ListBySalesperson(context.Background(), "sp-1", "2026-03-01")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "v-1", list[0].ID)
		assert.Equal(t, "v-2", list[1].ID)
		assert.Nil(t, list[0].VerifiedAt)
	})
}

func TestBillingPaymentRepository_RoundTrip(t *testing.T) {
	var stored map[string]types.AttributeValue
	ddb := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			assert.Equal(t, "billing_payments", aws.ToString(in.TableName))
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewBillingPaymentDynamoRepository(ddb, "")
	p := entities.BillingPayment{
		ID:              "pay-1",
		EstimateID:      "est-1",
		Amount:          dec("100744"),
		Date:            time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		Status:          entities.PaymentStatusApproved,
		ProviderPayload: map[string]any{"id": "987"},
	}
	_, err := repo.Create(context.Background(), p)
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "pay-1")
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(dec("100744")))
	assert.Equal(t, entities.PaymentStatusApproved, got.Status)
	assert.Equal(t, "987", got.ProviderPayload["id"])
}

func TestBillingPaymentRepository_ListByEstimateIDPages(t *testing.T) {
	item := func(id, date string) map[string]types.AttributeValue {
		av, err := attributevalue.MarshalMap(billingPaymentItem{ID: id, EstimateID: "est-1", Amount: "500", Date: date, Status: "denied"})
		require.NoError(t, err)
		return av
	}

	calls := 0
	ddb := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			calls++
			assert.Equal(t, paymentsEstimateIDIndex, aws.ToString(in.IndexName))
			assert.False(t, aws.ToBool(in.ScanIndexForward))
			if calls == 1 {
				assert.Nil(t, in.ExclusiveStartKey)
				return &dynamodb.QueryOutput{
					Items:            []map[string]types.AttributeValue{item("pay-3", "2026-03-03T10:00:00.000000Z")},
					LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "pay-3"}},
				}, nil
			}
			assert.NotNil(t, in.ExclusiveStartKey)
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{item("pay-1", "2026-03-01T10:00:00.000000Z")}}, nil
		},
	}

	list, err := NewBillingPaymentDynamoRepository(ddb, "").ListByEstimateID(context.Background(), "est-1")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, list, 2)
	assert.Equal(t, "pay-3", list[0].ID)
	assert.Equal(t, "pay-1", list[1].ID)
}

func TestBillingPaymentRepository_ListByEstimateIDEmpty(t *testing.T) {
	ddb := &fakeDynamo{
		query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{}, nil
		},
	}
	list, err := NewBillingPaymentDynamoRepository(ddb, "").ListByEstimateID(context.Background(), "est-1")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSequenceRepository_Next(t *testing.T) {
	ddb := &fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			assert.Equal(t, "counters", aws.ToString(in.TableName))
			assert.Equal(t, "ADD #value :one", aws.ToString(in.UpdateExpression))
			assert.Equal(t, &types.AttributeValueMemberS{Value: "estimate"}, in.Key["name"])
			return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
				"value": &types.AttributeValueMemberN{Value: "42"},
			}}, nil
		},
	}
	n, err := NewSequenceDynamoRepository(ddb, "").Next(context.Background(), "estimate")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestSequenceRepository_MissingValue(t *testing.T) {
	ddb := &fakeDynamo{
		updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}
	_, err := NewSequenceDynamoRepository(ddb, "").Next(context.Background(), "estimate")
	assert.Error(t, err)
}
