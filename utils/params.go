package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	ErrInvalidID    = errors.New("id must be a positive integer")
	ErrInvalidSkip  = errors.New("skip must be a non-negative integer")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// ParseID reads the :id path parameter. Any id that fits in a uint is
// well-formed; whether it exists is the store's concern.
func ParseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// ParsePagination reads ?skip=&limit=, falling back to the given defaults
// when a parameter is absent. Range checks beyond sign are left to callers.
func ParsePagination(c *gin.Context, defaultLimit int) (skip, limit int, err error) {
	skip, limit = 0, defaultLimit

	if raw, ok := c.GetQuery("skip"); ok {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, ErrInvalidSkip
		}
	}
	if raw, ok := c.GetQuery("limit"); ok {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, ErrInvalidLimit
		}
	}
	return skip, limit, nil
}
