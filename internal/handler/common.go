// Package handler wires HTTP requests to the service layer.
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gymcrm/internal/auth"
	"gymcrm/internal/authz"
	"gymcrm/internal/errors"
)

// session resolves the caller's session, from the page guard or from the
// validated API token.
func session(c echo.Context) *auth.Session {
	if sess := authz.CurrentSession(c); sess != nil {
		return sess
	}
	return authz.SessionFromToken(c)
}

// fail maps a domain error onto the standard error response.
func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message, code string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// parseUUID parses a UUID request field, naming it in the error.
func parseUUID(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, badRequest("invalid "+field, "INVALID_UUID")
	}
	return id, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, badRequest("invalid id", "INVALID_UUID")
	}
	return id, nil
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body", "INVALID_REQUEST")
	}
	if err := c.Validate(req); err != nil {
		return badRequest(err.Error(), "VALIDATION_ERROR")
	}
	return nil
}
