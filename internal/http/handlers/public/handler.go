package public

import (
	handlershared "github.com/cartella/internal/http/handlers/shared"
	"github.com/cartella/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler 本地 API 处理器入口
type Handler struct {
	*provider.Container
}

// New 创建处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	handlershared.RespondServiceError(c, err, fallbackMsg)
}
