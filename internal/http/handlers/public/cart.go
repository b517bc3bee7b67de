package public

import (
	handlershared "github.com/cartella/internal/http/handlers/shared"
	"github.com/cartella/internal/http/response"
	"github.com/cartella/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求
type AddCartItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest 修改数量请求，<=0 视为移除
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart 购物车
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, h.CartService.Summary())
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	result, err := h.ProductService.AddToCart(req.ProductID)
	if err != nil {
		respondServiceError(c, err, service.MsgAddToCartFailed)
		return
	}
	response.SuccessWithMsg(c, result.Message, result)
}

// UpdateCartItem 修改购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, ok := handlershared.ParamInt(c, "product_id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	if !h.CartService.UpdateQuantity(productID, *req.Quantity) {
		response.Alert(c, response.CodeNotFound, service.TitleError, service.MsgItemNotInCart)
		return
	}
	response.Success(c, h.CartService.Summary())
}

// DeleteCartItem 移除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	productID, ok := handlershared.ParamInt(c, "product_id")
	if !ok {
		return
	}
	if err := h.CartService.Remove(productID); err != nil {
		respondServiceError(c, err, service.MsgCartUpdateFailed)
		return
	}
	response.Success(c, h.CartService.Summary())
}

// PayCartItem 校验卡信息后结清单个购物车项
func (h *Handler) PayCartItem(c *gin.Context) {
	productID, ok := handlershared.ParamInt(c, "product_id")
	if !ok {
		return
	}
	var req service.CheckoutCard
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	if err := h.CartService.PayForItem(productID, req); err != nil {
		respondServiceError(c, err, service.MsgCartUpdateFailed)
		return
	}
	response.Success(c, h.CartService.Summary())
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.CartService.Clear(); err != nil {
		respondServiceError(c, err, service.MsgCartUpdateFailed)
		return
	}
	response.Success(c, nil)
}

// GetCartTotal 购物车总额
func (h *Handler) GetCartTotal(c *gin.Context) {
	response.Success(c, gin.H{"total": h.CartService.Total()})
}
