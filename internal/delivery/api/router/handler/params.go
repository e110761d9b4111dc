// Package handler contains the admin API's echo handlers.
package handler

import (
	"net/http"
	"strconv"

	domainerrors "careadmin/internal/domain/errors"
	"careadmin/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck answers liveness probes.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, validation.Failed(name, "must be a UUID")
	}

	return id, nil
}

func int64Param(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.Failed(name, "must be a positive integer")
	}

	return id, nil
}

// intQuery parses an optional integer query parameter.
func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validation.Failed(name, "must be an integer")
	}

	return v, nil
}

func boolQuery(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, validation.Failed(name, "must be a boolean")
	}

	return v, nil
}

// paging reads skip and limit. A zero limit is left for the use case to default.
func paging(c echo.Context) (skip, limit int, err error) {
	if skip, err = intQuery(c, "skip", 0); err != nil {
		return 0, 0, err
	}
	if limit, err = intQuery(c, "limit", 0); err != nil {
		return 0, 0, err
	}

	return skip, limit, nil
}

// bind decodes the body into v and runs its validation tags.
func bind(c echo.Context, v any) error {
	if err := decode(c, v); err != nil {
		return err
	}

	return c.Validate(v)
}

// decode only decodes the body. It is for types the use case validates after
// filling server-side defaults.
func decode(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return nil
}
