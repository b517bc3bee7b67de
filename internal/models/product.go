package models

import "time"

// Product 远端商品目录的本地缓存
type Product struct {
	LocalID     string    `gorm:"primaryKey;type:varchar(36)" json:"local_id"`   // 本地主键（UUID）
	ID          int       `gorm:"uniqueIndex;not null" json:"id"`                // 目录商品ID（自然键）
	Title       string    `gorm:"type:varchar(500)" json:"title"`                // 标题
	Price       float64   `gorm:"not null;default:0" json:"price"`               // 价格
	Description string    `gorm:"type:text" json:"description"`                  // 描述
	Category    string    `gorm:"type:varchar(255);index" json:"category"`       // 分类标签
	Image       string    `gorm:"type:varchar(1000)" json:"image"`               // 图片地址
	Rating      float64   `gorm:"not null;default:0" json:"rating"`              // 评分
	RatingCount int       `gorm:"not null;default:0" json:"rating_count"`        // 评分人数
	IsFavourite bool      `gorm:"not null;default:false;index" json:"is_favourite"` // 是否收藏（仅本地）
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt   time.Time `json:"updated_at"`                                    // 更新时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
