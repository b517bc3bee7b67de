package public

import (
	"strings"

	"github.com/cartella/internal/constants"
	"github.com/cartella/internal/http/handlers/shared"
	"github.com/cartella/internal/http/response"
	"github.com/cartella/internal/queue"

	"github.com/gin-gonic/gin"
)

// GetCatalogProducts 拉取远端目录（写入本地缓存）并按分类/关键字过滤
func (h *Handler) GetCatalogProducts(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	query := strings.TrimSpace(c.Query("q"))

	result, err := h.HomeService.FetchProducts(c.Request.Context(), category, query)
	if err != nil {
		respondServiceError(c, err, "catalog fetch failed")
		return
	}
	response.Success(c, result)
}

// GetCatalogCategories 远端目录的分类列表
func (h *Handler) GetCatalogCategories(c *gin.Context) {
	result, err := h.HomeService.FetchProducts(c.Request.Context(), "", "")
	if err != nil {
		respondServiceError(c, err, "catalog fetch failed")
		return
	}
	response.Success(c, result.Categories)
}

// SyncCatalog 同步远端目录到本地缓存；?async=true 且队列可用时改为投递后台任务
func (h *Handler) SyncCatalog(c *gin.Context) {
	if shared.QueryBool(c, "async") && h.QueueClient.Enabled() {
		taskID, err := h.QueueClient.EnqueueCatalogSync(queue.CatalogSyncPayload{Reason: constants.SyncReasonManual})
		if err != nil {
			respondError(c, response.CodeInternal, "catalog sync enqueue failed", err)
			return
		}
		response.Success(c, gin.H{"queued": true, "task_id": taskID})
		return
	}
	saved, err := h.HomeService.SyncCatalog(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "catalog sync failed")
		return
	}
	response.Success(c, gin.H{"queued": false, "saved": saved})
}
