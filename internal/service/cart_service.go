package service

import (
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/models"
	"github.com/cartella/internal/store"
	"github.com/cartella/internal/validator"
)

// CartSummary 购物车页数据
type CartSummary struct {
	Items             []models.CartItemWrapper `json:"items"`
	Count             int                      `json:"count"`
	Total             float64                  `json:"total"`
	TotalAmount       models.Money             `json:"total_amount"`
	DefaultCardNumber string                   `json:"default_card_number,omitempty"`
}

// CheckoutCard 结算时填写的卡信息（仅做非空校验，不发起支付）
type CheckoutCard struct {
	CardNumber     string `json:"card_number"`
	ExpirationDate string `json:"expiration_date"`
	CVV            string `json:"cvv"`
}

// CartService 购物车页操作
type CartService struct {
	store *store.Store
}

// NewCartService 创建购物车服务
func NewCartService(s *store.Store) *CartService {
	return &CartService{store: s}
}

// Summary 购物车项、件数、总额与默认卡（掩码）
func (s *CartService) Summary() CartSummary {
	items := s.store.GetCartItems()
	wrappers := make([]models.CartItemWrapper, 0, len(items))
	for _, item := range items {
		wrappers = append(wrappers, models.NewCartItemWrapper(item))
	}
	summary := CartSummary{
		Items:       wrappers,
		Count:       s.store.GetCartItemCount(),
		Total:       s.store.GetCartTotal(),
		TotalAmount: s.store.GetCartTotalAmount(),
	}
	if card := s.store.LoadDefaultPaymentCard(); card != nil {
		summary.DefaultCardNumber = MaskCardNumber(card.CardNumber)
	}
	return summary
}

// Total 购物车总额
func (s *CartService) Total() models.Money {
	return s.store.GetCartTotalAmount()
}

// Remove 移除商品
func (s *CartService) Remove(productID int) error {
	if !s.store.IsProductInCart(productID) {
		return newAppError(TitleError, MsgItemNotInCart)
	}
	if !s.store.RemoveFromCart(productID) {
		return newAppError(TitleError, MsgCartUpdateFailed)
	}
	return nil
}

// UpdateQuantity 设置数量，<=0 时移除；商品不在购物车时不做处理并返回 false
func (s *CartService) UpdateQuantity(productID, quantity int) bool {
	return s.store.UpdateCartItemQuantity(productID, quantity)
}

// Clear 清空购物车
func (s *CartService) Clear() error {
	if !s.store.ClearCart() {
		return newAppError(TitleError, MsgCartUpdateFailed)
	}
	return nil
}

// ValidateCheckout 结算卡信息依次做非空校验
func (s *CartService) ValidateCheckout(card CheckoutCard) error {
	switch {
	case !validator.NonEmpty(card.CardNumber).IsValid():
		return newAppError(TitleError, MsgEnterCardNumber)
	case !validator.NonEmpty(card.ExpirationDate).IsValid():
		return newAppError(TitleError, MsgEnterExpirationDate)
	case !validator.NonEmpty(card.CVV).IsValid():
		return newAppError(TitleError, MsgEnterCVV)
	}
	return nil
}

// PayForItem 校验卡信息后将商品移出购物车；不做真实扣款
func (s *CartService) PayForItem(productID int, card CheckoutCard) error {
	if err := s.ValidateCheckout(card); err != nil {
		return err
	}
	if err := s.Remove(productID); err != nil {
		return err
	}
	logger.Infow("cart_item_paid", "product_id", productID, "card", MaskCardNumber(card.CardNumber))
	return nil
}
