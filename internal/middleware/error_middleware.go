package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/campus/internal/app/models/dto"
	"github.com/yigit/campus/internal/pkg/apperrors"
	"github.com/yigit/campus/internal/pkg/logger"
)

// HandleAPIError writes err as the response. Not-found errors become a plain
// text 404 carrying only the sentinel message; every other error is
// serialized as-is with status 500.
func HandleAPIError(c *gin.Context, err error) {
	if notFound := apperrors.NotFound(err); notFound != nil {
		c.String(http.StatusNotFound, notFound.Error())
		return
	}

	resp := dto.NewErrorResponse(err)
	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("errorName", resp.Name).
		Msg("Request failed")
	c.JSON(http.StatusInternalServerError, resp)
}
