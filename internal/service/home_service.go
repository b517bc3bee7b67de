package service

import (
	"context"

	"github.com/cartella/internal/catalog"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/store"
)

// CatalogFetcher 目录拉取（一次性结果通道）
type CatalogFetcher interface {
	FetchProductsAsync(ctx context.Context) <-chan catalog.Result
}

// HomeResult 首页数据：过滤后的商品与完整分类列表
type HomeResult struct {
	Products   []catalog.Product `json:"products"`
	Categories []string          `json:"categories"`
}

// HomeService 首页商品浏览
type HomeService struct {
	fetcher CatalogFetcher
	store   *store.Store
}

// NewHomeService 创建首页服务
func NewHomeService(fetcher CatalogFetcher, s *store.Store) *HomeService {
	return &HomeService{fetcher: fetcher, store: s}
}

// FetchProducts 拉取目录并写入本地缓存，再按分类与关键字过滤；分类取自未过滤列表
func (s *HomeService) FetchProducts(ctx context.Context, category, query string) (*HomeResult, error) {
	products, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if s.store != nil {
		s.store.SaveProducts(catalog.ToModels(products))
	}
	return &HomeResult{
		Products:   catalog.FilterProducts(products, category, query),
		Categories: catalog.Categories(products),
	}, nil
}

// SyncCatalog 拉取目录并批量写入本地缓存，返回写入数量
func (s *HomeService) SyncCatalog(ctx context.Context) (int, error) {
	products, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}
	saved := s.store.SaveProducts(catalog.ToModels(products))
	logger.Infow("catalog_synced", "fetched", len(products), "saved", saved)
	return saved, nil
}

func (s *HomeService) fetch(ctx context.Context) ([]catalog.Product, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case result, ok := <-s.fetcher.FetchProductsAsync(ctx):
		if !ok {
			return nil, newAppError(TitleAlert, MsgFetchProductsFailed)
		}
		if result.Err != nil {
			logger.Warnw("catalog_fetch_failed", "error", result.Err)
			return nil, wrapAppError(TitleAlert, describeCatalogError(result.Err), result.Err)
		}
		return result.Products, nil
	case <-ctx.Done():
		return nil, wrapAppError(TitleAlert, MsgFetchProductsFailed, ctx.Err())
	}
}

func describeCatalogError(err error) string {
	return MsgFetchProductsFailed + ": " + err.Error()
}
