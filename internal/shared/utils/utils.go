package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID reads a positive integer path parameter.
// ok is false for anything else, which callers answer with 404.
func ParseID(c *gin.Context, name string) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
