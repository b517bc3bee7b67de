package public

import (
	"strings"

	handlershared "github.com/cartella/internal/http/handlers/shared"
	"github.com/cartella/internal/http/response"
	"github.com/cartella/internal/service"

	"github.com/gin-gonic/gin"
)

// FavouriteRequest 收藏请求
type FavouriteRequest struct {
	IsFavourite *bool `json:"is_favourite" binding:"required"`
}

// GetProducts 本地缓存商品（分页）
func (h *Handler) GetProducts(c *gin.Context) {
	page, pageSize := handlershared.NormalizePagination(
		handlershared.QueryInt(c, "page", 1),
		handlershared.QueryInt(c, "page_size", 20),
	)
	items, total := h.ProductService.List(service.ProductListInput{
		Category:      strings.TrimSpace(c.Query("category")),
		Query:         strings.TrimSpace(c.Query("q")),
		OnlyFavourite: handlershared.QueryBool(c, "favourite"),
		Page:          page,
		PageSize:      pageSize,
	})
	response.SuccessWithPage(c, items, response.NewPagination(page, pageSize, total))
}

// GetProductCategories 本地缓存分类
func (h *Handler) GetProductCategories(c *gin.Context) {
	response.Success(c, h.ProductService.Categories())
}

// GetFavourites 收藏列表
func (h *Handler) GetFavourites(c *gin.Context) {
	response.Success(c, h.ProductService.Favourites())
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParamInt(c, "id")
	if !ok {
		return
	}
	detail, err := h.ProductService.Get(id)
	if err != nil {
		respondServiceError(c, err, "product fetch failed")
		return
	}
	response.Success(c, detail)
}

// SetFavourite 设置收藏标记
func (h *Handler) SetFavourite(c *gin.Context) {
	id, ok := handlershared.ParamInt(c, "id")
	if !ok {
		return
	}
	var req FavouriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	product, err := h.ProductService.SetFavourite(id, *req.IsFavourite)
	if err != nil {
		respondServiceError(c, err, "product update failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除缓存商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := handlershared.ParamInt(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondServiceError(c, err, "product delete failed")
		return
	}
	response.Success(c, nil)
}

// ClearProducts 清空商品缓存
func (h *Handler) ClearProducts(c *gin.Context) {
	if err := h.ProductService.Clear(); err != nil {
		respondServiceError(c, err, "product clear failed")
		return
	}
	response.Success(c, nil)
}
