// Package validator plugs request struct validation into echo.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct {
	validate *validator.Validate
}

// New creates an echo.Validator backed by go-playground/validator.
func New() echo.Validator {
	return &requestValidator{
		validate: validator.New(),
	}
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
