package shared

import (
	"strconv"
	"strings"

	"github.com/cartella/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ParamInt 读取路径中的整数参数，非法时直接写入 400 响应。
func ParamInt(c *gin.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.Atoi(raw)
	if err != nil {
		RespondError(c, response.CodeBadRequest, "invalid "+name, nil)
		return 0, false
	}
	return value, true
}

// ParamString 读取非空路径参数。
func ParamString(c *gin.Context, name string) (string, bool) {
	value := strings.TrimSpace(c.Param(name))
	if value == "" {
		RespondError(c, response.CodeBadRequest, "invalid "+name, nil)
		return "", false
	}
	return value, true
}

// QueryInt 读取整数查询参数，缺失或非法时返回默认值。
func QueryInt(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// QueryBool 读取布尔查询参数。
func QueryBool(c *gin.Context, name string) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(c.Query(name)))
	return err == nil && value
}
