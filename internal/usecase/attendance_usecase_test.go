package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/domain/geofence"
	mock_interfaces "jiyajewellery/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var showroom = geofence.Fence{
	Center:       geofence.Point{Lat: 12.9716, Lon: 77.5946},
	RadiusMeters: 15,
}

// metersNorth returns a reading the given distance due north of the showroom.
func metersNorth(m float64) entities.Location {
	dLat := m / geofence.EarthRadiusMeters * 180 / math.Pi
	return entities.Location{Latitude: showroom.Center.Lat + dLat, Longitude: showroom.Center.Lon, Accuracy: 5}
}

func newAttendanceUseCase(ctrl *gomock.Controller, loc *time.Location, now time.Time) (*AttendanceUseCase, *mock_interfaces.MockIAttendanceRepository) {
	repo := mock_interfaces.NewMockIAttendanceRepository(ctrl)
	uc := NewAttendanceUseCase(repo, showroom, loc)
	uc.now = func() time.Time { return now }
	return uc, repo
}

func TestAttendanceUseCase_Status(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		_, err := uc.Status(context.Background(), " ")
		assert.ErrorIs(t, err, ErrInvalidUserID)
	})

	t.Run("no record yet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		repo.EXPECT().GetByID(gomock.Any(), "sp-1#2026-03-01").Return(entities.Attendance{}, nil)

		a, err := uc.Status(context.Background(), "sp-1")
		require.NoError(t, err)
		assert.Equal(t, entities.AttendanceNotCheckedIn, a.State)
		assert.Equal(t, "2026-03-01", a.Date)
	})

	t.Run("day is cut in the showroom timezone", func(t *testing.T) {
		ist, err := time.LoadLocation("Asia/Kolkata")
		require.NoError(t, err)
		ctrl := gomock.NewController(t)
		late := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
		uc, repo := newAttendanceUseCase(ctrl, ist, late)
		repo.EXPECT().GetByID(gomock.Any(), "sp-1#2026-03-02").Return(entities.Attendance{}, nil)

		a, err := uc.Status(context.Background(), "sp-1")
		require.NoError(t, err)
		assert.Equal(t, "2026-03-02", a.Date)
	})
}

func TestAttendanceUseCase_CheckIn(t *testing.T) {
	t.Run("invalid coordinates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, _ := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		_, err := uc.CheckIn(context.Background(), "sp-1", entities.Location{Latitude: 91})
		assert.ErrorIs(t, err, ErrInvalidLocation)
	})

	t.Run("inside the fence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		repo.EXPECT().GetByID(gomock.Any(), "sp-1#2026-03-01").Return(entities.Attendance{}, nil)
		repo.EXPECT().CreateCheckIn(gomock.Any(), gomock.AssignableToTypeOf(entities.Attendance{})).DoAndReturn(
			func(_ context.Context, a entities.Attendance) (entities.Attendance, error) {
				if a.State != entities.AttendanceCheckedIn || a.CheckInAt == nil || a.CheckInLocation == nil {
					t.Fatalf("unexpected attendance: %+v", a)
				}
				if a.CheckInDistanceM < 14 || a.CheckInDistanceM > 15 {
					t.Fatalf("unexpected distance %.3f", a.CheckInDistanceM)
				}
				return a, nil
			},
		)

		a, err := uc.CheckIn(context.Background(), "sp-1", metersNorth(14.9))
		require.NoError(t, err)
		assert.Equal(t, entities.AttendanceCheckedIn, a.State)
	})

	t.Run("outside the fence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Attendance{}, nil)

		_, err := uc.CheckIn(context.Background(), "sp-1", metersNorth(15.5))
		var violation *GeofenceViolationError
		require.True(t, errors.As(err, &violation), "expected GeofenceViolationError, got %v", err)
		assert.Greater(t, violation.DistanceMeters, 15.0)
		assert.Equal(t, 15.0, violation.RadiusMeters)
	})

	t.Run("already checked in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Attendance{ID: "sp-1#2026-03-01", State: entities.AttendanceCheckedIn}, nil)

		_, err := uc.CheckIn(context.Background(), "sp-1", metersNorth(1))
		assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	})

	t.Run("already checked out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Attendance{ID: "sp-1#2026-03-01", State: entities.AttendanceCheckedOut}, nil)

		_, err := uc.CheckIn(context.Background(), "sp-1", metersNorth(1))
		assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
	})

	t.Run("lost the conditional create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Attendance{}, nil)
		repo.EXPECT().CreateCheckIn(gomock.Any(), gomock.Any()).Return(entities.Attendance{}, nil)

		_, err := uc.CheckIn(context.Background(), "sp-1", metersNorth(1))
		assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	})
}

func TestAttendanceUseCase_CheckOut(t *testing.T) {
	t.Run("not checked in", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Attendance{}, nil)

		_, err := uc.CheckOut(context.Background(), "sp-1", metersNorth(1))
		assert.ErrorIs(t, err, ErrNotCheckedIn)
	})

	t.Run("from outside the fence is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		in := fixedNow.Add(-8 * time.Hour)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Attendance{
			ID: "sp-1#2026-03-01", UserID: "sp-1", Date: "2026-03-01",
			State: entities.AttendanceCheckedIn, CheckInAt: &in,
		}, nil)
		repo.EXPECT().UpdateCheckOut(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Attendance) (entities.Attendance, error) { return a, nil },
		)

		a, err := uc.CheckOut(context.Background(), "sp-1", metersNorth(500))
		require.NoError(t, err)
		assert.Equal(t, entities.AttendanceCheckedOut, a.State)
		assert.InDelta(t, 500, a.CheckOutDistanceM, 1)
		require.NotNil(t, a.CheckOutAt)
	})

	t.Run("twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc, repo := newAttendanceUseCase(ctrl, time.UTC, fixedNow)
		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Attendance{ID: "x", State: entities.AttendanceCheckedOut}, nil)

		_, err := uc.CheckOut(context.Background(), "sp-1", metersNorth(1))
		assert.ErrorIs(t, err, ErrAlreadyCheckedOut)
	})
}
