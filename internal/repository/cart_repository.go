package repository

import (
	"errors"
	"time"

	"github.com/cartella/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetOrCreateCart() (*models.Cart, error)
	TouchCart(cartID string) error
	ListItems() ([]models.CartItem, error)
	GetItemByProduct(productID int) (*models.CartItem, error)
	CreateItem(item *models.CartItem) error
	UpdateItem(item *models.CartItem) error
	DeleteByProduct(productID int) error
	ClearItems() error
	SumQuantity() (int, error)
	ExistsByProduct(productID int) (bool, error)
	WithTx(tx *gorm.DB) *GormCartRepository
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// Transaction 执行事务
func (r *GormCartRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetOrCreateCart 获取单例购物车，不存在时创建
func (r *GormCartRepository) GetOrCreateCart() (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Order("created_at asc").First(&cart).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cart = models.Cart{}
	if err := r.db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// TouchCart 刷新购物车更新时间
func (r *GormCartRepository) TouchCart(cartID string) error {
	if cartID == "" {
		return nil
	}
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).Update("updated_at", time.Now()).Error
}

// ListItems 购物车项列表（加入时间倒序）
func (r *GormCartRepository) ListItems() ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Order("added_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemByProduct 根据商品ID获取购物车项
func (r *GormCartRepository) GetItemByProduct(productID int) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("product_id = ?", productID).Order("added_at asc").First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// CreateItem 新增购物车项
func (r *GormCartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

// UpdateItem 保存购物车项
func (r *GormCartRepository) UpdateItem(item *models.CartItem) error {
	return r.db.Save(item).Error
}

// DeleteByProduct 删除该商品的全部购物车项
func (r *GormCartRepository) DeleteByProduct(productID int) error {
	return r.db.Where("product_id = ?", productID).Delete(&models.CartItem{}).Error
}

// ClearItems 清空购物车项
func (r *GormCartRepository) ClearItems() error {
	return r.db.Where("1 = 1").Delete(&models.CartItem{}).Error
}

// SumQuantity 购物车商品件数
func (r *GormCartRepository) SumQuantity() (int, error) {
	var total int64
	if err := r.db.Model(&models.CartItem{}).Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error; err != nil {
		return 0, err
	}
	return int(total), nil
}

// ExistsByProduct 商品是否已在购物车
func (r *GormCartRepository) ExistsByProduct(productID int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.CartItem{}).Where("product_id = ?", productID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
