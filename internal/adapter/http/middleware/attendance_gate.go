package middleware

import (
	"net/http"

	"jiyajewellery/internal/domain/entities"
	"jiyajewellery/internal/usecase"
	"jiyajewellery/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errCheckInRequired = pkg.NewDomainErrorSimple("CHECK_IN_REQUIRED", "Check in at the showroom before using this feature", http.StatusForbidden)

// RequireCheckedIn lets salespeople through only while checked in for the
// day. Other roles pass untouched.
func RequireCheckedIn(attendance usecase.IAttendanceUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if claims.Role != RoleSalesperson {
			c.Next()
			return
		}

		status, err := attendance.Status(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Error().Err(err).Str("user_id", claims.UserID).Msg("[attendance][middleware] status lookup failed")
			c.AbortWithStatusJSON(errInternal.HTTPStatus, errInternal.ToHTTPError())
			return
		}
		if status.State != entities.AttendanceCheckedIn {
			c.AbortWithStatusJSON(errCheckInRequired.HTTPStatus, errCheckInRequired.ToHTTPError())
			return
		}
		c.Next()
	}
}
