package shared

import (
	"errors"

	"github.com/cartella/internal/catalog"
	"github.com/cartella/internal/http/response"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.S().With("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondServiceError 提示类错误返回 400（目录错误返回 502）并附带标题，其余按 500 处理。
func RespondServiceError(c *gin.Context, err error, fallbackMsg string) {
	var alert *service.AppError
	if !errors.As(err, &alert) {
		RespondError(c, response.CodeInternal, fallbackMsg, err)
		return
	}
	code := response.CodeBadRequest
	if isCatalogError(alert.Err) {
		code = response.CodeBadGateway
		RequestLog(c).Warnw("handler_catalog_error", "error", alert.Err)
	}
	response.Alert(c, code, alert.Title, alert.Message)
}

func isCatalogError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, catalog.ErrInvalidURL) ||
		errors.Is(err, catalog.ErrInvalidResponse) ||
		errors.Is(err, catalog.ErrServerError) ||
		errors.Is(err, catalog.ErrDecodeFailed)
}
