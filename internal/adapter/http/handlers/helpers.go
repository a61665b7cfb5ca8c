package handlers

import (
	"errors"
	"net/http"
	"reflect"

	"jiyajewellery/internal/adapter/http/middleware"
	"jiyajewellery/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

var (
	errInvalidJSON     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errValidation      = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Request validation failed", http.StatusUnprocessableEntity)
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	errInvalidDate     = pkg.NewDomainErrorSimple("INVALID_DATE", "Dates must be formatted as YYYY-MM-DD", http.StatusBadRequest)
)

func init() {
	// decimal.Decimal validates as a number so gt/gte/lte tags apply to it.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds the JSON body and runs the validate tags. On failure
// it has already written the response and the caller must return.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, errInvalidJSON)
		return false
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			respondError(c, errInvalidJSON)
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(errValidation.HTTPStatus, errValidation.ToHTTPErrorWithDetails(fields))
		return false
	}
	return true
}

func respondError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// currentUser returns the authenticated caller. Routes are always mounted
// behind JWTAuth; a missing claim is still answered with 401.
func currentUser(c *gin.Context) (*middleware.Claims, bool) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		respondError(c, errUnauthenticated)
		return nil, false
	}
	return claims, true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
