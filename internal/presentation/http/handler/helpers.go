package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/follonierjack89-bit/fte-facturation/pkg/pagination"
)

// parseID parses the ":id" route parameter as an unsigned integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// paginationParams reads page-based pagination from the query string.
func paginationParams(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	return &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
}
