package middleware

import (
	stderrors "errors"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"interview-coach/internal/api/errors"
)

func init() {
	// Report fields by their wire names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})
	}
}

// Validator is implemented by requests with rules beyond struct tags
type Validator interface {
	Validate() error
}

// ValidateRequest binds the JSON body, then applies the request's own rules
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.NewValidationError("Validation failed", map[string]string{
				"request": "body is required",
			})
		}
		return bindingError(err, "request", "invalid JSON format")
	}
	return validateDomain(req)
}

// ValidateQuery binds query parameters, then applies the request's own rules
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return bindingError(err, "query", "invalid query parameters")
	}
	return validateDomain(req)
}

func validateDomain(req interface{}) error {
	if v, ok := req.(Validator); ok {
		return v.Validate()
	}
	return nil
}

func bindingError(err error, fallbackField, fallbackMessage string) error {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return errors.NewValidationError("Validation failed", map[string]string{
			fallbackField: fallbackMessage,
		})
	}

	details := make(map[string]string, len(validationErrs))
	for _, fieldError := range validationErrs {
		details[fieldError.Field()] = describe(fieldError)
	}
	return errors.NewValidationError("Validation failed", details)
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fieldError.Param()
	case "max":
		return "must be at most " + fieldError.Param()
	case "oneof":
		return "must be one of " + fieldError.Param()
	default:
		return "is invalid"
	}
}
