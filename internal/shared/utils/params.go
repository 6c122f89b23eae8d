package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"fibernet/internal/shared/errors"
)

// ParseUintParam parses a numeric path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(value), nil
}

// ParseIntQuery parses an optional numeric query parameter with a default.
func ParseIntQuery(c *gin.Context, name string, defaultValue int) int {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParsePagination extracts page and page_size with sane bounds.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page = ParseIntQuery(c, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize = ParseIntQuery(c, "page_size", 20)
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
