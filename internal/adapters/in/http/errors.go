package http

import (
	"errors"
	"net/http"
	"strings"

	"kitchenpos/internal/core/domain/model/kernel"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var errMalformedBody = errors.New("malformed request body")

func statusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindInvalidArgument:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindFailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an ErrorResponse. Unclassified errors are logged and
// answered without their details.
func (s *Server) fail(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(status)
	}
	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

func (s *Server) bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", errMalformedBody)
	}
	return nil
}

// pathID reads the :id route parameter.
func pathID(c echo.Context) (kernel.UUID, error) {
	return parseID("id", c.Param("id"))
}

// parseID leaves blank input as the zero UUID so constructors report it as missing.
func parseID(field string, raw string) (kernel.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return kernel.UUID{}, nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}
