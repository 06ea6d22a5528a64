package utils

import (
	"strconv"
)

// ParsePagination reads the limit and p query values. Limit defaults to 10;
// "all" or an explicit 0 disables it, in which case p is ignored. Pages are
// 1-indexed.
func ParsePagination(limitStr, pageStr string) (limit, page int, apiErr *APIError) {
	limit, page = 10, 1

	switch limitStr {
	case "":
	case "all":
		limit = 0
	default:
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 0 {
			return 0, 0, BadRequest(MsgInvalidPagination)
		}
		limit = n
	}

	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			return 0, 0, BadRequest(MsgInvalidPagination)
		}
		page = n
	}

	if limit == 0 {
		page = 1
	}

	return limit, page, nil
}
