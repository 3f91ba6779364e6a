package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/http/response"
	"github.com/healthybites-next/internal/logger"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		logger.Warnw("admin_request_failed",
			"path", c.FullPath(),
			"code", code,
			"error", err,
		)
	}
	response.Error(c, code, msg)
}
