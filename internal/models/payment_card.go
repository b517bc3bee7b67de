package models

import "time"

// 卡片类型（仅用于展示层，存储层不做校验）
const (
	CardTypeVisa            = "Visa"
	CardTypeMasterCard      = "MasterCard"
	CardTypeAmericanExpress = "AmericanExpress"
	CardTypeUnknown         = "Unknown"
)

// PaymentCard 本地保存的支付卡（不做任何真实支付）
type PaymentCard struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)" json:"id"`   // 主键（UUID）
	CardNumber     string    `gorm:"type:varchar(32)" json:"card_number"`     // 卡号（原样保存）
	CardType       string    `gorm:"type:varchar(32)" json:"card_type"`       // 卡类型（自由文本）
	ExpiryDate     string    `gorm:"type:varchar(16)" json:"expiry_date"`     // 有效期
	CVV            string    `gorm:"column:cvv;type:varchar(8)" json:"cvv"`   // CVV（原样保存）
	CardholderName string    `gorm:"type:varchar(255)" json:"cardholder_name"` // 持卡人
	IsDefault      bool      `gorm:"not null;default:false;index" json:"is_default"` // 是否默认卡
	CreatedAt      time.Time `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt      time.Time `json:"updated_at"`                              // 更新时间
}

// TableName 指定表名
func (PaymentCard) TableName() string {
	return "payment_cards"
}

// NormalizeCardType 将自由文本映射为展示用卡类型
func NormalizeCardType(raw string) string {
	switch raw {
	case CardTypeVisa, CardTypeMasterCard, CardTypeAmericanExpress:
		return raw
	default:
		return CardTypeUnknown
	}
}
