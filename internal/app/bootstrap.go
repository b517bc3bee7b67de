package app

import (
	"context"
	"errors"
	"time"

	"github.com/cartella/internal/config"
	"github.com/cartella/internal/events"
	"github.com/cartella/internal/provider"
	"github.com/cartella/internal/router"
	"github.com/cartella/internal/worker"
)

const redisPingTimeout = 3 * time.Second

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, container *provider.Container, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if container == nil {
		return nil, errors.New("container is nil")
	}

	var services []Service

	// HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		services = append(services, NewHTTPService(cfg.Server.Addr(), engine))
	}

	// 后台服务：事件桥接、任务队列与启动时目录同步
	if mode == ModeAll || mode == ModeBackground {
		if container.Redis.Enabled() {
			services = append(services, events.NewBridgeService(container.Bus, container.Redis))
		}
		if cfg.Queue.Enabled {
			workerSvc, err := worker.NewService(&cfg.Queue, &cfg.Redis, worker.NewConsumer(container.HomeService))
			if err != nil {
				return nil, err
			}
			services = append(services, workerSvc)
		}
		if cfg.Catalog.SyncOnStart {
			services = append(services, NewCatalogSyncService(container.HomeService))
		}
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts = normalizeOptions(opts)
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	container, err := provider.NewContainer(opts.Config)
	if err != nil {
		return err
	}
	defer container.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	if err := container.Redis.Ping(pingCtx); err != nil {
		opts.Logger.Warnw("app_redis_unreachable", "error", err)
	}
	cancel()

	runner, err := BuildRunner(opts.Config, container, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start",
		"addr", opts.Config.Server.Addr(),
		"mode", opts.Mode,
		"catalog", container.CatalogClient.BaseURL(),
		"services", runner.Names(),
	)
	return RunWithOptions(runner, opts)
}
