package service

import (
	"github.com/cartella/internal/models"
	"github.com/cartella/internal/repository"
	"github.com/cartella/internal/store"
)

// ProductListInput 本地商品查询参数
type ProductListInput struct {
	Category      string
	Query         string
	OnlyFavourite bool
	Page          int
	PageSize      int
}

// ProductDetail 商品详情（附带购物车状态）
type ProductDetail struct {
	Product models.Product `json:"product"`
	InCart  bool           `json:"in_cart"`
}

// AddToCartResult 加入购物车结果
type AddToCartResult struct {
	Message   string `json:"message"`
	CartCount int    `json:"cart_count"`
}

// ProductService 商品详情、收藏与加购
type ProductService struct {
	store *store.Store
}

// NewProductService 创建商品服务
func NewProductService(s *store.Store) *ProductService {
	return &ProductService{store: s}
}

// List 查询本地缓存商品
func (s *ProductService) List(input ProductListInput) ([]models.Product, int64) {
	return s.store.QueryProducts(repository.ProductListFilter{
		Page:          input.Page,
		PageSize:      input.PageSize,
		Category:      input.Category,
		Search:        input.Query,
		OnlyFavourite: input.OnlyFavourite,
	})
}

// Categories 本地缓存的分类
func (s *ProductService) Categories() []string {
	return s.store.LoadProductCategories()
}

// Favourites 收藏列表
func (s *ProductService) Favourites() []models.Product {
	return s.store.LoadFavouriteProducts()
}

// Get 商品详情
func (s *ProductService) Get(id int) (*ProductDetail, error) {
	product := s.store.LoadProduct(id)
	if product == nil {
		return nil, newAppError(TitleAlert, MsgProductNotAvailable)
	}
	return &ProductDetail{Product: *product, InCart: s.store.IsProductInCart(id)}, nil
}

// SetFavourite 设置收藏标记
func (s *ProductService) SetFavourite(id int, isFavourite bool) (*models.Product, error) {
	if !s.store.UpdateProductFavouriteStatus(id, isFavourite) {
		return nil, newAppError(TitleAlert, MsgProductNotAvailable)
	}
	return s.store.LoadProduct(id), nil
}

// AddToCart 将缓存商品加入购物车
func (s *ProductService) AddToCart(id int) (*AddToCartResult, error) {
	product := s.store.LoadProduct(id)
	if product == nil {
		return nil, newAppError(TitleAlert, MsgProductNotAvailable)
	}
	if !s.store.AddToCart(*product) {
		return nil, newAppError(TitleError, MsgAddToCartFailed)
	}
	return &AddToCartResult{Message: MsgAddedToCart, CartCount: s.store.GetCartItemCount()}, nil
}

// IsInCart 商品是否已在购物车
func (s *ProductService) IsInCart(id int) bool {
	return s.store.IsProductInCart(id)
}

// Delete 删除缓存商品
func (s *ProductService) Delete(id int) error {
	if s.store.LoadProduct(id) == nil {
		return newAppError(TitleAlert, MsgProductNotAvailable)
	}
	if !s.store.DeleteProduct(id) {
		return newAppError(TitleError, MsgProductUpdateFailed)
	}
	return nil
}

// Clear 清空商品缓存
func (s *ProductService) Clear() error {
	if !s.store.ClearAllProducts() {
		return newAppError(TitleError, MsgProductUpdateFailed)
	}
	return nil
}
