package repository

// ProductListFilter 查询本地商品缓存的过滤条件
type ProductListFilter struct {
	Page          int
	PageSize      int
	Category      string
	Search        string
	OnlyFavourite bool
}
