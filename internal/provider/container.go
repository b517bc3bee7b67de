package provider

import (
	"time"

	"github.com/cartella/internal/cache"
	"github.com/cartella/internal/catalog"
	"github.com/cartella/internal/config"
	"github.com/cartella/internal/events"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/models"
	"github.com/cartella/internal/queue"
	"github.com/cartella/internal/service"
	"github.com/cartella/internal/store"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Bus    *events.Bus
	Redis  *cache.Redis
	Store  *store.Store

	CatalogClient *catalog.Client
	QueueClient   *queue.Client

	// Services
	AuthService    *service.AuthService
	HomeService    *service.HomeService
	ProductService *service.ProductService
	CartService    *service.CartService
	ProfileService *service.ProfileService
}

// NewContainer 打开本地存储并初始化容器
func NewContainer(cfg *config.Config) (*Container, error) {
	db, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}, logger.NewGormLogger(cfg.Server.Mode))
	if err != nil {
		return nil, err
	}
	if err := models.AutoMigrate(db); err != nil {
		return nil, err
	}
	return NewContainerWithDB(cfg, db), nil
}

// NewContainerWithDB 基于已迁移的数据库初始化容器
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
		Bus:    events.NewBus(),
		Redis:  cache.NewRedis(&cfg.Redis),
	}
	c.QueueClient = queue.NewClient(&cfg.Queue, &cfg.Redis)
	c.CatalogClient = catalog.NewClient(cfg.Catalog.BaseURL, time.Duration(cfg.Catalog.TimeoutSeconds)*time.Second)
	c.Store = store.New(db, store.WithPublisher(c.Bus))

	c.initServices()
	return c
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Store)
	c.HomeService = service.NewHomeService(c.CatalogClient, c.Store)
	c.ProductService = service.NewProductService(c.Store)
	c.CartService = service.NewCartService(c.Store)
	c.ProfileService = service.NewProfileService(c.Store)
}

// Close 释放数据库、队列与 Redis 连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_failed", "error", err)
	}
	if err := c.Redis.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
	if c.DB == nil {
		return
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		logger.Warnw("provider_close_db_failed", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warnw("provider_close_db_failed", "error", err)
	}
}
