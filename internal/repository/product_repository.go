package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/cartella/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品缓存数据访问接口
type ProductRepository interface {
	GetByID(id int) (*models.Product, error)
	List(filter ProductListFilter) ([]models.Product, int64, error)
	ListAll() ([]models.Product, error)
	ListFavourites() ([]models.Product, error)
	ListCategories() ([]string, error)
	Upsert(product *models.Product, keepFavourite bool) error
	UpdateFavourite(id int, isFavourite bool) (bool, error)
	Delete(id int) error
	DeleteAll() error
	WithTx(tx *gorm.DB) *GormProductRepository
	Transaction(fn func(tx *gorm.DB) error) error
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProductRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// GetByID 根据目录商品ID获取
func (r *GormProductRepository) GetByID(id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// List 商品列表（支持分类、标题搜索与收藏过滤）
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where(caseInsensitiveLikeCondition(r.db, "title"), likePattern(search))
	}
	if filter.OnlyFavourite {
		query = query.Where("is_favourite = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var products []models.Product
	if err := query.Order("created_at desc").Order("id asc").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ListAll 全部商品（创建时间倒序）
func (r *GormProductRepository) ListAll() ([]models.Product, error) {
	products, _, err := r.List(ProductListFilter{})
	return products, err
}

// ListFavourites 收藏商品（创建时间倒序）
func (r *GormProductRepository) ListFavourites() ([]models.Product, error) {
	products, _, err := r.List(ProductListFilter{OnlyFavourite: true})
	return products, err
}

// ListCategories 去重后的分类标签
func (r *GormProductRepository) ListCategories() ([]string, error) {
	var categories []string
	if err := r.db.Model(&models.Product{}).
		Where("category <> ?", "").
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Upsert 按目录商品ID插入或覆盖，keepFavourite 为真时保留已有收藏标记
func (r *GormProductRepository) Upsert(product *models.Product, keepFavourite bool) error {
	if product == nil {
		return nil
	}
	var existing models.Product
	err := r.db.Where("id = ?", product.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		product.LocalID = ""
		return r.db.Create(product).Error
	}
	if err != nil {
		return err
	}
	isFavourite := product.IsFavourite
	if keepFavourite && !isFavourite {
		isFavourite = existing.IsFavourite
	}
	updates := map[string]interface{}{
		"title":        product.Title,
		"price":        product.Price,
		"description":  product.Description,
		"category":     product.Category,
		"image":        product.Image,
		"rating":       product.Rating,
		"rating_count": product.RatingCount,
		"is_favourite": isFavourite,
		"updated_at":   time.Now(),
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return err
	}
	product.LocalID = existing.LocalID
	product.IsFavourite = isFavourite
	product.CreatedAt = existing.CreatedAt
	return nil
}

// UpdateFavourite 更新收藏标记，返回商品是否存在
func (r *GormProductRepository) UpdateFavourite(id int, isFavourite bool) (bool, error) {
	result := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_favourite": isFavourite,
		"updated_at":   time.Now(),
	})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete 删除商品
func (r *GormProductRepository) Delete(id int) error {
	return r.db.Where("id = ?", id).Delete(&models.Product{}).Error
}

// DeleteAll 清空商品缓存
func (r *GormProductRepository) DeleteAll() error {
	return r.db.Where("1 = 1").Delete(&models.Product{}).Error
}
