package handlers

import (
	"fmt"
	"strings"
	"time"

	"recurrence-ledger/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getDateParam parses an optional YYYY-MM-DD query parameter
func getDateParam(c echo.Context, name string) (*time.Time, error) {
	param := c.QueryParam(name)
	if param == "" {
		return nil, nil
	}

	date, err := models.ParseDate(param)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format, use YYYY-MM-DD", name)
	}
	return &date, nil
}

// getRequiredDateParam parses a mandatory YYYY-MM-DD query parameter
func getRequiredDateParam(c echo.Context, name string) (time.Time, error) {
	date, err := getDateParam(c, name)
	if err != nil {
		return time.Time{}, err
	}
	if date == nil {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	return *date, nil
}

func getUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a valid UUID", name)
	}
	return id, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
