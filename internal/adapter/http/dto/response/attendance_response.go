package response

import (
	"time"

	"jiyajewellery/internal/domain/entities"
)

type AttendanceResponse struct {
	UserID            string     `json:"user_id"`
	Date              string     `json:"date"`
	State             string     `json:"state"`
	CheckInAt         *time.Time `json:"check_in_at,omitempty"`
	CheckInDistanceM  float64    `json:"check_in_distance_m,omitempty"`
	CheckOutAt        *time.Time `json:"check_out_at,omitempty"`
	CheckOutDistanceM float64    `json:"check_out_distance_m,omitempty"`
}

func FromAttendance(a entities.Attendance) AttendanceResponse {
	state := a.State
	if state == "" {
		state = entities.AttendanceNotCheckedIn
	}
	return AttendanceResponse{
		UserID:            a.UserID,
		Date:              a.Date,
		State:             string(state),
		CheckInAt:         a.CheckInAt,
		CheckInDistanceM:  a.CheckInDistanceM,
		CheckOutAt:        a.CheckOutAt,
		CheckOutDistanceM: a.CheckOutDistanceM,
	}
}
