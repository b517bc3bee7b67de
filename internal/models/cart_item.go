package models

import "time"

// Cart 购物车（单例，首次访问时创建）
type Cart struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"` // 主键（UUID）
	CreatedAt time.Time `json:"created_at"`                            // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                            // 更新时间

	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartItem 购物车项，加入时保存商品快照
type CartItem struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"` // 主键（UUID）
	CartID      string    `gorm:"index;type:varchar(36)" json:"cart_id"` // 所属购物车
	ProductID   int       `gorm:"index;not null" json:"product_id"`      // 商品ID（软引用）
	Title       string    `gorm:"type:varchar(500)" json:"title"`        // 快照：标题
	Price       float64   `gorm:"not null;default:0" json:"price"`       // 快照：单价
	Description string    `gorm:"type:text" json:"description"`          // 快照：描述
	Category    string    `gorm:"type:varchar(255)" json:"category"`     // 快照：分类
	Image       string    `gorm:"type:varchar(1000)" json:"image"`       // 快照：图片
	Rating      float64   `gorm:"not null;default:0" json:"rating"`      // 快照：评分
	RatingCount int       `gorm:"not null;default:0" json:"rating_count"` // 快照：评分人数
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`    // 数量
	AddedAt     time.Time `gorm:"index" json:"added_at"`                 // 加入（或最近一次累加）时间
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}

// ToProduct 将快照还原为商品（收藏标记恒为 false）
func (i CartItem) ToProduct() Product {
	return Product{
		ID:          i.ProductID,
		Title:       i.Title,
		Price:       i.Price,
		Description: i.Description,
		Category:    i.Category,
		Image:       i.Image,
		Rating:      i.Rating,
		RatingCount: i.RatingCount,
	}
}

// ToCheckoutProduct 转换为结算商品
func (i CartItem) ToCheckoutProduct() CheckoutProduct {
	product := i.ToProduct()
	return CheckoutProduct{
		ID:             i.ID,
		ProductDetails: &product,
		Status:         CheckoutStatusActive,
	}
}
