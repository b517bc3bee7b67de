package store

import (
	"strconv"
	"time"

	"github.com/cartella/internal/events"
	"github.com/cartella/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoadCart 获取单例购物车，不存在时创建
func (s *Store) LoadCart() *models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.cartRepo.GetOrCreateCart()
	if err != nil {
		logFailure("store_load_cart_failed", err)
		return nil
	}
	return cart
}

// AddToCart 已存在则数量加一并刷新加入时间，否则写入数量为 1 的快照
func (s *Store) AddToCart(product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	action := "item_added"
	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.GetOrCreateCart()
		if err != nil {
			return err
		}
		existing, err := repo.GetItemByProduct(product.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			existing.Quantity++
			existing.AddedAt = now
			if err := repo.UpdateItem(existing); err != nil {
				return err
			}
			action = "item_incremented"
		} else {
			item := snapshotCartItem(product, cart.ID, now)
			if err := repo.CreateItem(&item); err != nil {
				return err
			}
		}
		return repo.TouchCart(cart.ID)
	})
	if err != nil {
		logFailure("store_add_to_cart_failed", err, "product_id", product.ID)
		return false
	}
	s.publish(events.TopicCart, action, strconv.Itoa(product.ID))
	return true
}

// RemoveFromCart 删除该商品的全部购物车项
func (s *Store) RemoveFromCart(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		if err := repo.DeleteByProduct(productID); err != nil {
			return err
		}
		return touchSingletonCart(repo)
	})
	if err != nil {
		logFailure("store_remove_from_cart_failed", err, "product_id", productID)
		return false
	}
	s.publish(events.TopicCart, "item_removed", strconv.Itoa(productID))
	return true
}

// UpdateCartItemQuantity quantity<=0 删除，否则直接设置；购物车项不存在时不做处理
func (s *Store) UpdateCartItemQuantity(productID, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	action := "item_quantity_updated"
	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		item, err := repo.GetItemByProduct(productID)
		if err != nil || item == nil {
			return err
		}
		if quantity <= 0 {
			if err := repo.DeleteByProduct(productID); err != nil {
				return err
			}
			action = "item_removed"
		} else {
			item.Quantity = quantity
			if err := repo.UpdateItem(item); err != nil {
				return err
			}
		}
		changed = true
		return touchSingletonCart(repo)
	})
	if err != nil {
		logFailure("store_update_cart_quantity_failed", err, "product_id", productID, "quantity", quantity)
		return false
	}
	if changed {
		s.publish(events.TopicCart, action, strconv.Itoa(productID))
	}
	return changed
}

// ClearCart 清空购物车项，购物车本身保留
func (s *Store) ClearCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.cartRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		if err := repo.ClearItems(); err != nil {
			return err
		}
		return touchSingletonCart(repo)
	})
	if err != nil {
		logFailure("store_clear_cart_failed", err)
		return false
	}
	s.publish(events.TopicCart, "cleared", "")
	return true
}

// GetCartItems 购物车项（加入时间倒序）
func (s *Store) GetCartItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartItems()
}

func (s *Store) cartItems() []models.CartItem {
	items, err := s.cartRepo.ListItems()
	if err != nil {
		logFailure("store_get_cart_items_failed", err)
		return []models.CartItem{}
	}
	if items == nil {
		return []models.CartItem{}
	}
	return items
}

// GetCartItemCount 购物车商品总件数（数量之和）
func (s *Store) GetCartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count, err := s.cartRepo.SumQuantity()
	if err != nil {
		logFailure("store_get_cart_item_count_failed", err)
		return 0
	}
	return count
}

// GetCartTotal Σ(快照单价 × 数量)
func (s *Store) GetCartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.cartItems()).InexactFloat64()
}

// GetCartTotalAmount 购物车总额（保留 2 位小数）
func (s *Store) GetCartTotalAmount() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.NewMoneyFromDecimal(cartTotal(s.cartItems()))
}

// IsProductInCart 商品是否已在购物车
func (s *Store) IsProductInCart(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.cartRepo.ExistsByProduct(productID)
	if err != nil {
		logFailure("store_is_product_in_cart_failed", err, "product_id", productID)
		return false
	}
	return exists
}

type cartToucher interface {
	GetOrCreateCart() (*models.Cart, error)
	TouchCart(cartID string) error
}

func touchSingletonCart(repo cartToucher) error {
	cart, err := repo.GetOrCreateCart()
	if err != nil {
		return err
	}
	return repo.TouchCart(cart.ID)
}

func cartTotal(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func snapshotCartItem(product models.Product, cartID string, now time.Time) models.CartItem {
	return models.CartItem{
		ID:          models.NewID(),
		CartID:      cartID,
		ProductID:   product.ID,
		Title:       product.Title,
		Price:       product.Price,
		Description: product.Description,
		Category:    product.Category,
		Image:       product.Image,
		Rating:      product.Rating,
		RatingCount: product.RatingCount,
		Quantity:    1,
		AddedAt:     now,
	}
}
