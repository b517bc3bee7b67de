package models

import "github.com/shopspring/decimal"

// CheckoutStatusActive 结算商品的有效状态
const CheckoutStatusActive = 1

// CheckoutProduct 结算商品（商品快照 + 状态）
type CheckoutProduct struct {
	ID             string   `json:"_id"`
	ProductDetails *Product `json:"productDetails"`
	Status         int      `json:"status"`
}

// CartItemWrapper 购物车展示行，只读派生数据
type CartItemWrapper struct {
	CheckoutProduct CheckoutProduct `json:"checkout_product"`
	Quantity        int             `json:"quantity"`
}

// NewCartItemWrapper 由购物车项构建展示行
func NewCartItemWrapper(item CartItem) CartItemWrapper {
	return CartItemWrapper{
		CheckoutProduct: item.ToCheckoutProduct(),
		Quantity:        item.Quantity,
	}
}

// UnitPrice 单价，缺少商品信息时为 0
func (w CartItemWrapper) UnitPrice() float64 {
	if w.CheckoutProduct.ProductDetails == nil {
		return 0
	}
	return w.CheckoutProduct.ProductDetails.Price
}

// TotalPrice 小计 = 单价 × 数量
func (w CartItemWrapper) TotalPrice() float64 {
	return w.subtotal().InexactFloat64()
}

// TotalAmount 小计金额（2 位小数）
func (w CartItemWrapper) TotalAmount() Money {
	return NewMoneyFromDecimal(w.subtotal())
}

func (w CartItemWrapper) subtotal() decimal.Decimal {
	return decimal.NewFromFloat(w.UnitPrice()).Mul(decimal.NewFromInt(int64(w.Quantity)))
}
