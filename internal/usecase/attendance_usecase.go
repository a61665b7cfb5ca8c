package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/domain/geofence"
	"jiyajewellery/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidLocation   = errors.New("invalid location")
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrNotCheckedIn      = errors.New("not checked in")
)

// GeofenceViolationError is returned when a check-in is attempted from
// outside the showroom radius. It is recoverable: the user may retry once
// back in range.
type GeofenceViolationError struct {
	DistanceMeters float64
	RadiusMeters   float64
}

func (e *GeofenceViolationError) Error() string {
	return fmt.Sprintf("outside check-in range: %.2fm from showroom, limit %.0fm", e.DistanceMeters, e.RadiusMeters)
}

// IAttendanceUseCase runs the daily check-in/check-out flow.
//
//	not_checked_in -> checked_in -> checked_out
type IAttendanceUseCase interface {
	CheckIn(ctx context.Context, userID string, loc entities.Location) (entities.Attendance, error)
	CheckOut(ctx context.Context, userID string, loc entities.Location) (entities.Attendance, error)
	Status(ctx context.Context, userID string) (entities.Attendance, error)
}

type AttendanceUseCase struct {
	repo     interfaces.IAttendanceRepository
	fence    geofence.Fence
	location *time.Location
	now      func() time.Time
}

var _ IAttendanceUseCase = (*AttendanceUseCase)(nil)

func NewAttendanceUseCase(repo interfaces.IAttendanceRepository, fence geofence.Fence, location *time.Location) *AttendanceUseCase {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceUseCase{repo: repo, fence: fence, location: location, now: time.Now}
}

// Status returns today's record. A user with no record yet gets a synthetic
// not_checked_in record.
func (u *AttendanceUseCase) Status(ctx context.Context, userID string) (entities.Attendance, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Attendance{}, ErrInvalidUserID
	}
	today := u.now().In(u.location)
	id := entities.AttendanceID(userID, today)

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Attendance{}, err
	}
	if a.ID == "" {
		return entities.Attendance{
			ID:     id,
			UserID: userID,
			Date:   today.Format(entities.AttendanceDateLayout),
			State:  entities.AttendanceNotCheckedIn,
		}, nil
	}
	return a, nil
}

func (u *AttendanceUseCase) CheckIn(ctx context.Context, userID string, loc entities.Location) (entities.Attendance, error) {
	point := geofence.Point{Lat: loc.Latitude, Lon: loc.Longitude}
	if !point.Valid() {
		return entities.Attendance{}, ErrInvalidLocation
	}

	current, err := u.Status(ctx, userID)
	if err != nil {
		return entities.Attendance{}, err
	}
	switch current.State {
	case entities.AttendanceCheckedIn:
		return entities.Attendance{}, ErrAlreadyCheckedIn
	case entities.AttendanceCheckedOut:
		return entities.Attendance{}, ErrAlreadyCheckedOut
	}

	res := u.fence.Evaluate(point)
	if !res.WithinRange {
		log.Warn().
			Str("user_id", current.UserID).
			Float64("distance_m", res.DistanceMeters).
			Float64("accuracy_m", loc.Accuracy).
			Msg("[attendance][usecase] check-in outside geofence")
		return entities.Attendance{}, &GeofenceViolationError{DistanceMeters: res.DistanceMeters, RadiusMeters: u.fence.RadiusMeters}
	}

	now := u.now().UTC()
	current.State = entities.AttendanceCheckedIn
	current.CheckInAt = &now
	current.CheckInLocation = &loc
	current.CheckInDistanceM = res.DistanceMeters
	current.UpdatedAt = now

	created, err := u.repo.CreateCheckIn(ctx, current)
	if err != nil {
		return entities.Attendance{}, err
	}
	if created.ID == "" {
		return entities.Attendance{}, ErrAlreadyCheckedIn
	}
	log.Info().
		Str("user_id", created.UserID).
		Str("date", created.Date).
		Float64("distance_m", res.DistanceMeters).
		Msg("[attendance][usecase] checked in")
	return created, nil
}

// CheckOut records the leaving location. The geofence is not enforced here;
// the distance is stored for the admin attendance report.
func (u *AttendanceUseCase) CheckOut(ctx context.Context, userID string, loc entities.Location) (entities.Attendance, error) {
	point := geofence.Point{Lat: loc.Latitude, Lon: loc.Longitude}
	if !point.Valid() {
		return entities.Attendance{}, ErrInvalidLocation
	}

	current, err := u.Status(ctx, userID)
	if err != nil {
		return entities.Attendance{}, err
	}
	switch current.State {
	case entities.AttendanceNotCheckedIn:
		return entities.Attendance{}, ErrNotCheckedIn
	case entities.AttendanceCheckedOut:
		return entities.Attendance{}, ErrAlreadyCheckedOut
	}

	now := u.now().UTC()
	current.State = entities.AttendanceCheckedOut
	current.CheckOutAt = &now
	current.CheckOutLocation = &loc
	current.CheckOutDistanceM = u.fence.Evaluate(point).DistanceMeters
	current.UpdatedAt = now

	updated, err := u.repo.UpdateCheckOut(ctx, current)
	if err != nil {
		return entities.Attendance{}, err
	}
	if updated.ID == "" {
		return entities.Attendance{}, ErrNotCheckedIn
	}
	log.Info().Str("user_id", updated.UserID).Str("date", updated.Date).Msg("[attendance][usecase] checked out")
	return updated, nil
}
