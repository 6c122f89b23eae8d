// Package handlers contains the gin HTTP handlers for the API.
package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fibernet/internal/shared/authorization"
	"fibernet/internal/shared/errors"
)

// actorFromContext pulls the authenticated caller out of the gin context.
// Handlers behind RequireAuth can rely on both values being present.
func actorFromContext(c *gin.Context) (uint, string, error) {
	userID, ok := authorization.UserIDFromContext(c)
	if !ok {
		return 0, "", errors.NewUnauthorizedError("authentication required")
	}
	role, ok := authorization.RoleFromContext(c)
	if !ok {
		return 0, "", errors.NewUnauthorizedError("authentication required")
	}
	return userID, string(role), nil
}

// uintQuery parses an optional unsigned integer query parameter.
func uintQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("invalid " + name + " parameter")
	}
	id := uint(value)
	return &id, nil
}

// timeQuery parses an optional RFC 3339 timestamp query parameter.
func timeQuery(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.NewValidationError(name + " must be an RFC 3339 timestamp")
	}
	t = t.UTC()
	return &t, nil
}
