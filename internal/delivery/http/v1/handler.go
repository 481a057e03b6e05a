package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"
)

// bindAndValidate decodes the JSON body, trims it, runs the validation
// pipeline and HTML-escapes the accepted values. Escaping happens after
// validation so format rules judge the raw input; "O'Brien" must not be
// rejected because of its escaped form. On failure it appends the
// aggregated field errors to the context and reports false; the handler
// must return.
func bindAndValidate(c *gin.Context, validate *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.Error(apperror.BadRequest("Invalid JSON payload"))
		return false
	}

	validation.Trim(req)

	if err := validate.Struct(req); err != nil {
		c.Error(apperror.Unprocessable("Validation failed", validation.Translate(err)))
		return false
	}

	validation.Escape(req)
	return true
}
