package public

import (
	handlershared "github.com/cartella/internal/http/handlers/shared"
	"github.com/cartella/internal/http/response"
	"github.com/cartella/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCards 支付卡列表
func (h *Handler) GetCards(c *gin.Context) {
	response.Success(c, h.ProfileService.Cards())
}

// GetDefaultCard 默认卡
func (h *Handler) GetDefaultCard(c *gin.Context) {
	card, err := h.ProfileService.DefaultCard()
	if err != nil {
		respondServiceError(c, err, "card fetch failed")
		return
	}
	response.Success(c, card)
}

// CreateCard 新增支付卡
func (h *Handler) CreateCard(c *gin.Context) {
	var req service.CardInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	card, err := h.ProfileService.AddCard(req)
	if err != nil {
		respondServiceError(c, err, service.MsgCardSaveFailed)
		return
	}
	response.Success(c, card)
}

// UpdateCard 修改支付卡
func (h *Handler) UpdateCard(c *gin.Context) {
	id, ok := handlershared.ParamString(c, "id")
	if !ok {
		return
	}
	var req service.CardInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request", nil)
		return
	}
	card, err := h.ProfileService.UpdateCard(id, req)
	if err != nil {
		respondServiceError(c, err, service.MsgCardSaveFailed)
		return
	}
	response.Success(c, card)
}

// SetDefaultCard 设为默认卡
func (h *Handler) SetDefaultCard(c *gin.Context) {
	id, ok := handlershared.ParamString(c, "id")
	if !ok {
		return
	}
	if err := h.ProfileService.SetDefaultCard(id); err != nil {
		respondServiceError(c, err, "set default card failed")
		return
	}
	response.Success(c, h.ProfileService.Cards())
}

// DeleteCard 删除支付卡
func (h *Handler) DeleteCard(c *gin.Context) {
	id, ok := handlershared.ParamString(c, "id")
	if !ok {
		return
	}
	if err := h.ProfileService.DeleteCard(id); err != nil {
		respondServiceError(c, err, "delete card failed")
		return
	}
	response.Success(c, nil)
}

// ClearCards 清空支付卡
func (h *Handler) ClearCards(c *gin.Context) {
	if err := h.ProfileService.ClearCards(); err != nil {
		respondServiceError(c, err, service.MsgPaymentCardsClearFail)
		return
	}
	response.Success(c, nil)
}
