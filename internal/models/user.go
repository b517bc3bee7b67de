package models

import "time"

// User 本地用户（单设备单账号）
type User struct {
	ID                 string    `gorm:"primaryKey;type:varchar(36)" json:"id"`    // 主键（UUID）
	Email              string    `gorm:"index;type:varchar(255)" json:"email"`     // 邮箱（查询键）
	Password           string    `gorm:"type:varchar(255)" json:"-"`               // 明文密码（不返回给前端）
	Name               string    `gorm:"type:varchar(255)" json:"name"`            // 姓名
	IsProfileCompleted bool      `gorm:"not null;default:false" json:"is_profile_completed"` // 资料是否完善
	IsActive           bool      `gorm:"not null;default:false" json:"is_active"`  // 是否处于登录状态
	CreatedAt          time.Time `json:"created_at"`                               // 创建时间
	UpdatedAt          time.Time `json:"updated_at"`                               // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
