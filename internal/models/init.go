package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewID 生成本地主键
func NewID() string {
	return uuid.NewString()
}

func ensureID(id *string) {
	if strings.TrimSpace(*id) == "" {
		*id = NewID()
	}
}

// BeforeCreate 写入前补全主键
func (u *User) BeforeCreate(_ *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

// BeforeCreate 写入前补全本地主键
func (p *Product) BeforeCreate(_ *gorm.DB) error {
	ensureID(&p.LocalID)
	return nil
}

// BeforeCreate 写入前补全主键
func (c *Cart) BeforeCreate(_ *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

// BeforeCreate 写入前补全主键
func (i *CartItem) BeforeCreate(_ *gorm.DB) error {
	ensureID(&i.ID)
	return nil
}

// BeforeCreate 写入前补全主键
func (c *PaymentCard) BeforeCreate(_ *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
