package entities

import "time"

type AttendanceState string

const (
	AttendanceNotCheckedIn AttendanceState = "not_checked_in"
	AttendanceCheckedIn    AttendanceState = "checked_in"
	AttendanceCheckedOut   AttendanceState = "checked_out"
)

// Location is a geolocation reading reported by the salesperson's device.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Attendance is one user's attendance for one calendar day.
//
// Storage model (DynamoDB):
//   - PK: id ("{user_id}#{YYYY-MM-DD}")
type Attendance struct {
	ID                string          `json:"id"`
	UserID            string          `json:"user_id"`
	Date              string          `json:"date"`
	State             AttendanceState `json:"state"`
	CheckInAt         *time.Time      `json:"check_in_at,omitempty"`
	CheckInLocation   *Location       `json:"check_in_location,omitempty"`
	CheckInDistanceM  float64         `json:"check_in_distance_m"`
	CheckOutAt        *time.Time      `json:"check_out_at,omitempty"`
	CheckOutLocation  *Location       `json:"check_out_location,omitempty"`
	CheckOutDistanceM float64         `json:"check_out_distance_m"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

const AttendanceDateLayout = "2006-01-02"

func AttendanceID(userID string, day time.Time) string {
	return userID + "#" + day.Format(AttendanceDateLayout)
}
