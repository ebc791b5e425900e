package handler

import (
	"fmt"

	domainerrors "kuttyport/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request body into dst and runs its validate tags.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		details := err.Error()
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			details = fmt.Sprint(httpErr.Message)
			if httpErr.Internal != nil {
				details = fmt.Sprintf("%s: %v", details, httpErr.Internal)
			}
		}

		return domainerrors.ErrInvalidInput.WithDetails(details)
	}

	return errors.WithStack(c.Validate(dst))
}
