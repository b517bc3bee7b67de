package repository

import (
	"errors"

	"github.com/cartella/internal/models"

	"gorm.io/gorm"
)

// PaymentCardRepository 支付卡数据访问接口
type PaymentCardRepository interface {
	Create(card *models.PaymentCard) error
	GetByID(id string) (*models.PaymentCard, error)
	List() ([]models.PaymentCard, error)
	GetDefault() (*models.PaymentCard, error)
	SetDefault(id string) (bool, error)
	Update(card *models.PaymentCard) error
	Delete(id string) error
	DeleteAll() error
	WithTx(tx *gorm.DB) *GormPaymentCardRepository
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormPaymentCardRepository GORM 实现
type GormPaymentCardRepository struct {
	db *gorm.DB
}

// NewPaymentCardRepository 创建支付卡仓库
func NewPaymentCardRepository(db *gorm.DB) *GormPaymentCardRepository {
	return &GormPaymentCardRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPaymentCardRepository) WithTx(tx *gorm.DB) *GormPaymentCardRepository {
	if tx == nil {
		return r
	}
	return &GormPaymentCardRepository{db: tx}
}

// Transaction 执行事务
func (r *GormPaymentCardRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create 新增支付卡
func (r *GormPaymentCardRepository) Create(card *models.PaymentCard) error {
	return r.db.Create(card).Error
}

// GetByID 根据 ID 获取支付卡
func (r *GormPaymentCardRepository) GetByID(id string) (*models.PaymentCard, error) {
	var card models.PaymentCard
	if err := r.db.Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

// List 支付卡列表（创建时间倒序）
func (r *GormPaymentCardRepository) List() ([]models.PaymentCard, error) {
	var cards []models.PaymentCard
	if err := r.db.Order("created_at desc").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// GetDefault 获取默认卡
func (r *GormPaymentCardRepository) GetDefault() (*models.PaymentCard, error) {
	var card models.PaymentCard
	if err := r.db.Where("is_default = ?", true).Order("updated_at desc").First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

// SetDefault 先取消全部默认，再设置目标卡；需在事务中调用，返回目标是否存在
func (r *GormPaymentCardRepository) SetDefault(id string) (bool, error) {
	if err := r.db.Model(&models.PaymentCard{}).Where("is_default = ?", true).Update("is_default", false).Error; err != nil {
		return false, err
	}
	result := r.db.Model(&models.PaymentCard{}).Where("id = ?", id).Update("is_default", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update 保存支付卡
func (r *GormPaymentCardRepository) Update(card *models.PaymentCard) error {
	return r.db.Save(card).Error
}

// Delete 删除支付卡
func (r *GormPaymentCardRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.PaymentCard{}).Error
}

// DeleteAll 清空支付卡
func (r *GormPaymentCardRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.PaymentCard{}).Error
}
