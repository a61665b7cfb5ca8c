package repository

import (
	"context"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAttendanceTableName = "attendance"

type locationItem struct {
	Latitude  float64 `dynamodbav:"lat"`
	Longitude float64 `dynamodbav:"lon"`
	Accuracy  float64 `dynamodbav:"accuracy"`
}

type attendanceItem struct {
	ID                string        `dynamodbav:"id"`
	UserID            string        `dynamodbav:"user_id"`
	Date              string        `dynamodbav:"date"`
	State             string        `dynamodbav:"state"`
	CheckInAt         string        `dynamodbav:"check_in_at,omitempty"`
	CheckInLocation   *locationItem `dynamodbav:"check_in_location,omitempty"`
	CheckInDistanceM  float64       `dynamodbav:"check_in_distance_m"`
	CheckOutAt        string        `dynamodbav:"check_out_at,omitempty"`
	CheckOutLocation  *locationItem `dynamodbav:"check_out_location,omitempty"`
	CheckOutDistanceM float64       `dynamodbav:"check_out_distance_m"`
	UpdatedAt         string        `dynamodbav:"updated_at"`
}

// AttendanceDynamoRepository stores one record per user per day.
//
// Table requirements:
//   - PK: id (string, "{user_id}#{YYYY-MM-DD}")
type AttendanceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IAttendanceRepository = (*AttendanceDynamoRepository)(nil)

func NewAttendanceDynamoRepository(ddb DynamoAPI, tableName string) *AttendanceDynamoRepository {
	return &AttendanceDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultAttendanceTableName),
	}
}

func (r *AttendanceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Attendance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Attendance{}, err
	}
	if len(out.Item) == 0 {
		return entities.Attendance{}, nil
	}
	return unmarshalAttendance(out.Item)
}

// CreateCheckIn writes the day's record. A concurrent check-in for the same
// day loses the condition and gets a zero value back.
func (r *AttendanceDynamoRepository) CreateCheckIn(ctx context.Context, a entities.Attendance) (entities.Attendance, error) {
	av, err := attributevalue.MarshalMap(toAttendanceItem(a))
	if err != nil {
		return entities.Attendance{}, err
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
		if isConditionFailed(err) {
			return entities.Attendance{}, nil
		}
		return entities.Attendance{}, err
	}
	return a, nil
}

// UpdateCheckOut closes a checked-in record. Records in any other state are
// left untouched and a zero value is returned.
func (r *AttendanceDynamoRepository) UpdateCheckOut(ctx context.Context, a entities.Attendance) (entities.Attendance, error) {
	it := toAttendanceItem(a)
	loc, err := attributevalue.Marshal(it.CheckOutLocation)
	if err != nil {
		return entities.Attendance{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: a.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #state = :checked_in"),
		UpdateExpression: aws.String("SET #state = :state, #check_out_at = :at, #check_out_location = :loc, " +
			"#check_out_distance_m = :dist, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#state":                "state",
			"#check_out_at":         "check_out_at",
			"#check_out_location":   "check_out_location",
			"#check_out_distance_m": "check_out_distance_m",
			"#updated_at":           "updated_at",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":checked_in": &types.AttributeValueMemberS{Value: string(entities.AttendanceCheckedIn)},
			":state":      &types.AttributeValueMemberS{Value: it.State},
			":at":         &types.AttributeValueMemberS{Value: it.CheckOutAt},
			":loc":        loc,
			":dist":       &types.AttributeValueMemberN{Value: floatToString(it.CheckOutDistanceM)},
			":updated_at": &types.AttributeValueMemberS{Value: it.UpdatedAt},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Attendance{}, nil
		}
		return entities.Attendance{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Attendance{}, nil
	}
	return unmarshalAttendance(out.Attributes)
}

func unmarshalAttendance(av map[string]types.AttributeValue) (entities.Attendance, error) {
	var it attendanceItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Attendance{}, err
	}
	return fromAttendanceItem(it), nil
}

func toLocationItem(l *entities.Location) *locationItem {
	if l == nil {
		return nil
	}
	return &locationItem{Latitude: l.Latitude, Longitude: l.Longitude, Accuracy: l.Accuracy}
}

func fromLocationItem(l *locationItem) *entities.Location {
	if l == nil {
		return nil
	}
	return &entities.Location{Latitude: l.Latitude, Longitude: l.Longitude, Accuracy: l.Accuracy}
}

func toAttendanceItem(a entities.Attendance) attendanceItem {
	return attendanceItem{
		ID:                a.ID,
		UserID:            a.UserID,
		Date:              a.Date,
		State:             string(a.State),
		CheckInAt:         formatTimePtr(a.CheckInAt),
		CheckInLocation:   toLocationItem(a.CheckInLocation),
		CheckInDistanceM:  a.CheckInDistanceM,
		CheckOutAt:        formatTimePtr(a.CheckOutAt),
		CheckOutLocation:  toLocationItem(a.CheckOutLocation),
		CheckOutDistanceM: a.CheckOutDistanceM,
		UpdatedAt:         formatTime(a.UpdatedAt),
	}
}

func fromAttendanceItem(it attendanceItem) entities.Attendance {
	return entities.Attendance{
		ID:                it.ID,
		UserID:            it.UserID,
		Date:              it.Date,
		State:             entities.AttendanceState(it.State),
		CheckInAt:         parseTimePtr(it.CheckInAt),
		CheckInLocation:   fromLocationItem(it.CheckInLocation),
		CheckInDistanceM:  it.CheckInDistanceM,
		CheckOutAt:        parseTimePtr(it.CheckOutAt),
		CheckOutLocation:  fromLocationItem(it.CheckOutLocation),
		CheckOutDistanceM: it.CheckOutDistanceM,
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
