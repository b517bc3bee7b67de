package store

import (
	"strconv"

	"github.com/cartella/internal/events"
	"github.com/cartella/internal/models"
	"github.com/cartella/internal/repository"

	"gorm.io/gorm"
)

// SaveProduct 按目录ID插入或更新，收藏标记以传入值为准
func (s *Store) SaveProduct(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stampProduct(&product)
	if err := s.productRepo.Upsert(&product, false); err != nil {
		logFailure("store_save_product_failed", err, "product_id", product.ID)
		return false
	}
	s.publish(events.TopicProduct, "saved", strconv.Itoa(product.ID))
	return true
}

// SaveProducts 批量写入（目录同步），保留本地已有的收藏标记
func (s *Store) SaveProducts(products []models.Product) int {
	if len(products) == 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	batch := append([]models.Product(nil), products...)
	err := s.productRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		for i := range batch {
			s.stampProduct(&batch[i])
			if err := repo.Upsert(&batch[i], true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logFailure("store_save_products_failed", err, "count", len(products))
		return 0
	}
	s.publish(events.TopicProduct, "synced", strconv.Itoa(len(products)))
	return len(products)
}

// LoadProduct 按目录ID读取
func (s *Store) LoadProduct(id int) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.productRepo.GetByID(id)
	if err != nil {
		logFailure("store_load_product_failed", err, "product_id", id)
		return nil
	}
	return product
}

// LoadAllProducts 全部缓存商品（创建时间倒序）
func (s *Store) LoadAllProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.productRepo.ListAll()
	if err != nil {
		logFailure("store_load_all_products_failed", err)
		return []models.Product{}
	}
	return nonNilProducts(products)
}

// LoadFavouriteProducts 收藏商品（创建时间倒序）
func (s *Store) LoadFavouriteProducts() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.productRepo.ListFavourites()
	if err != nil {
		logFailure("store_load_favourite_products_failed", err)
		return []models.Product{}
	}
	return nonNilProducts(products)
}

// QueryProducts 按分类与标题过滤缓存商品
func (s *Store) QueryProducts(filter repository.ProductListFilter) ([]models.Product, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, total, err := s.productRepo.List(filter)
	if err != nil {
		logFailure("store_query_products_failed", err)
		return []models.Product{}, 0
	}
	return nonNilProducts(products), total
}

// LoadProductCategories 缓存商品的分类标签
func (s *Store) LoadProductCategories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories, err := s.productRepo.ListCategories()
	if err != nil {
		logFailure("store_load_product_categories_failed", err)
		return []string{}
	}
	if categories == nil {
		return []string{}
	}
	return categories
}

// UpdateProductFavouriteStatus 更新收藏标记，商品不存在时返回 false
func (s *Store) UpdateProductFavouriteStatus(id int, isFavourite bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := s.productRepo.UpdateFavourite(id, isFavourite)
	if err != nil {
		logFailure("store_update_favourite_failed", err, "product_id", id)
		return false
	}
	if found {
		s.publish(events.TopicProduct, "favourite_updated", strconv.Itoa(id))
	}
	return found
}

// DeleteProduct 删除缓存商品（不影响购物车快照）
func (s *Store) DeleteProduct(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.productRepo.Delete(id); err != nil {
		logFailure("store_delete_product_failed", err, "product_id", id)
		return false
	}
	s.publish(events.TopicProduct, "deleted", strconv.Itoa(id))
	return true
}

// ClearAllProducts 清空商品缓存
func (s *Store) ClearAllProducts() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.productRepo.DeleteAll(); err != nil {
		logFailure("store_clear_products_failed", err)
		return false
	}
	s.publish(events.TopicProduct, "cleared", "")
	return true
}

// stampProduct 新记录的时间戳取自存储时钟，更新时由仓库忽略 CreatedAt
func (s *Store) stampProduct(product *models.Product) {
	now := s.now()
	product.CreatedAt = now
	product.UpdatedAt = now
}

func nonNilProducts(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return products
}
