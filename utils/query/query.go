package query

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Pagination reads the optional page/limit query parameters. The second
// return is false when the caller asked for the full (unpaginated) set,
// which is the default and the compatible behavior.
func Pagination(c *fiber.Ctx) (offset int, limit int, paginated bool) {
	pageStr := c.Query("page")
	if pageStr == "" {
		return 0, 0, false
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	return (page - 1) * limit, limit, true
}

// UintParam parses a numeric path parameter.
func UintParam(c *fiber.Ctx, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}
