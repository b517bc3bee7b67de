package worker

import (
	"context"
	"errors"

	"github.com/cartella/internal/catalog"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/queue"

	"github.com/hibiken/asynq"
)

// CatalogSyncer 目录同步
type CatalogSyncer interface {
	SyncCatalog(ctx context.Context) (int, error)
}

// Consumer 异步任务消费者
type Consumer struct {
	Syncer CatalogSyncer
}

// NewConsumer 创建消费者
func NewConsumer(syncer CatalogSyncer) *Consumer {
	return &Consumer{Syncer: syncer}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCatalogSync, c.handleCatalogSync)
}

func (c *Consumer) handleCatalogSync(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_catalog_sync_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseCatalogSyncPayload(task)
	if err != nil {
		logger.Warnw("worker_catalog_sync_unmarshal_failed", "error", err)
		return errors.Join(err, asynq.SkipRetry)
	}
	if c.Syncer == nil {
		logger.Warnw("worker_catalog_sync_skip_syncer_nil", "reason", payload.Reason)
		return nil
	}
	saved, err := c.Syncer.SyncCatalog(ctx)
	if err != nil {
		// 地址配置错误重试无意义
		if errors.Is(err, catalog.ErrInvalidURL) {
			logger.Warnw("worker_catalog_sync_invalid_url", "reason", payload.Reason, "error", err)
			return errors.Join(err, asynq.SkipRetry)
		}
		logger.Warnw("worker_catalog_sync_failed", "reason", payload.Reason, "error", err)
		return err
	}
	logger.Infow("worker_catalog_sync_done", "reason", payload.Reason, "saved", saved)
	return nil
}
