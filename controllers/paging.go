package controllers

import (
	"strconv"

	"gin-crud-api/constants"

	"github.com/gin-gonic/gin"
)

// pagingParams reads skip/limit query params with the API defaults. The limit
// is not capped here.
func pagingParams(ctx *gin.Context) (int, int, error) {
	skip, err := strconv.Atoi(ctx.DefaultQuery("skip", strconv.Itoa(constants.DefaultSkip)))
	if err != nil {
		return 0, 0, err
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(constants.DefaultLimit)))
	if err != nil {
		return 0, 0, err
	}
	return skip, limit, nil
}
