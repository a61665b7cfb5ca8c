package interfaces

import (
	"context"

	"jiyajewellery/internal/domain/entities"
)

// IAttendanceRepository persists one attendance record per user per day.
//
// CreateCheckIn fails with a zero value when the record already exists, and
// UpdateCheckOut when the stored record is not checked in.
type IAttendanceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Attendance, error)
	CreateCheckIn(ctx context.Context, a entities.Attendance) (entities.Attendance, error)
	UpdateCheckOut(ctx context.Context, a entities.Attendance) (entities.Attendance, error)
}
