package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses a numeric ID from a URL path parameter.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// parseDate parses a "2006-01-02" date string.
func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// parseMonth parses a "2006-01" month string.
func parseMonth(value string) (time.Time, error) {
	return time.Parse("2006-01", value)
}
