package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campusreg/deptregistry/internal/app/models/dto"
)

var validate = validator.New()

// BindAndValidate decodes the JSON body into obj and checks its validate
// tags. On failure it writes a field-tagged 400 and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid request body").WithError(err.Error()))
		return false
	}

	if err := validate.Struct(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			first := validationErrors[0]
			field := strings.ToLower(first.Field())
			c.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(formatValidationError(first)).WithField(field))
			return false
		}

		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid request body").WithError(err.Error()))
		return false
	}

	return true
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
