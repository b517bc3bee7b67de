package app

import (
	"context"
	"errors"

	"github.com/cartella/internal/logger"
)

// CatalogSyncer 目录同步
type CatalogSyncer interface {
	SyncCatalog(ctx context.Context) (int, error)
}

// CatalogSyncService 启动时同步一次远端目录，随后常驻直至退出
type CatalogSyncService struct {
	syncer CatalogSyncer
	done   chan struct{}
}

// NewCatalogSyncService 创建目录同步服务
func NewCatalogSyncService(syncer CatalogSyncer) *CatalogSyncService {
	return &CatalogSyncService{syncer: syncer, done: make(chan struct{})}
}

// Name 服务名称
func (s *CatalogSyncService) Name() string {
	return "catalog_sync"
}

// Start 同步失败只记录日志，不终止其他服务
func (s *CatalogSyncService) Start(ctx context.Context) error {
	defer close(s.done)
	if s.syncer == nil {
		return errors.New("catalog syncer not initialized")
	}
	saved, err := s.syncer.SyncCatalog(ctx)
	if err != nil {
		logger.Warnw("catalog_sync_on_start_failed", "error", err)
	} else {
		logger.Infow("catalog_sync_on_start_done", "saved", saved)
	}
	<-ctx.Done()
	return nil
}

// Stop 等待服务退出
func (s *CatalogSyncService) Stop(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
