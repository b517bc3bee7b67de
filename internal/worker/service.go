package worker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cartella/internal/config"
	"github.com/cartella/internal/constants"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 异步队列服务：消费任务，并按 cron 表达式定时投递目录同步
type Service struct {
	name      string
	server    *asynq.Server
	mux       *asynq.ServeMux
	scheduler *asynq.Scheduler
	cronSpec  string
	consumer  *Consumer
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, redisCfg *config.RedisConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if redisCfg == nil || !redisCfg.Enabled {
		return nil, errors.New("queue requires redis")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg, redisCfg)
	serverCfg.Logger = logger.S().Named("asynq")
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)

	svc := &Service{
		name:     "worker",
		server:   server,
		mux:      mux,
		consumer: consumer,
		cronSpec: strings.TrimSpace(cfg.CatalogSyncCron),
	}
	if svc.cronSpec != "" {
		svc.scheduler = asynq.NewScheduler(opt, &asynq.SchedulerOpts{Logger: logger.S().Named("asynq_scheduler")})
	}
	return svc, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务，阻塞至 ctx 结束
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if err := s.server.Start(s.mux); err != nil {
		return err
	}
	if s.scheduler != nil {
		if err := s.registerSchedule(); err != nil {
			return err
		}
		if err := s.scheduler.Start(); err != nil {
			return err
		}
		logger.Infow("worker_catalog_sync_scheduled", "cron", s.cronSpec)
	}
	<-ctx.Done()
	return nil
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	if s.scheduler != nil {
		s.scheduler.Shutdown()
	}
	s.server.Shutdown()
	return nil
}

func (s *Service) registerSchedule() error {
	task, err := queue.NewCatalogSyncTask(queue.CatalogSyncPayload{
		Reason:      constants.SyncReasonSchedule,
		RequestedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	_, err = s.scheduler.Register(s.cronSpec, task, queue.CatalogSyncOptions(queue.DefaultQueue)...)
	return err
}
