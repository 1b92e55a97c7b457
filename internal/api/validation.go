package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrors converts a binding error into field errors. It returns nil
// when err is not a validator error (malformed input, parse failures).
func ValidationErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: errorMessage(fe),
		})
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "gtfield":
		return fe.Field() + " must be after " + fe.Param()
	case "gtefield":
		return fe.Field() + " must not be before " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// RespondBindError writes a 400 for a failed ShouldBind* call.
func RespondBindError(c *gin.Context, err error) {
	if details := ValidationErrors(err); details != nil {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   "validation failed",
			Details: details,
		})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query parameters"})
}
