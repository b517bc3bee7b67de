package queue

import (
	"fmt"
	"strings"
	"time"

	"github.com/cartella/internal/config"
	"github.com/cartella/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault

	catalogSyncUniqueTTL = time.Minute
)

// Client 队列客户端封装
type Client struct {
	client       *asynq.Client
	enabled      bool
	defaultQueue string
}

// NewClient 创建队列客户端；未启用队列或 Redis 时返回禁用的客户端
func NewClient(cfg *config.QueueConfig, redisCfg *config.RedisConfig) *Client {
	if cfg == nil || !cfg.Enabled || redisCfg == nil || !redisCfg.Enabled {
		return &Client{enabled: false, defaultQueue: DefaultQueue}
	}
	return &Client{
		client:       asynq.NewClient(BuildRedisOpt(redisCfg)),
		enabled:      true,
		defaultQueue: DefaultQueue,
	}
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueCatalogSync 推送目录同步任务；一分钟内重复推送会被去重
func (c *Client) EnqueueCatalogSync(payload CatalogSyncPayload, opts ...asynq.Option) (string, error) {
	if !c.Enabled() {
		return "", nil
	}
	if payload.RequestedAt.IsZero() {
		payload.RequestedAt = time.Now()
	}
	task, err := NewCatalogSyncTask(payload)
	if err != nil {
		return "", err
	}
	options := append(CatalogSyncOptions(c.defaultQueue), opts...)
	info, err := c.client.Enqueue(task, options...)
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

// CatalogSyncOptions 目录同步任务的默认投递选项
func CatalogSyncOptions(queueName string) []asynq.Option {
	if strings.TrimSpace(queueName) == "" {
		queueName = DefaultQueue
	}
	return []asynq.Option{
		asynq.Queue(queueName),
		asynq.MaxRetry(3),
		asynq.Unique(catalogSyncUniqueTTL),
	}
}

// BuildServerConfig 生成队列服务配置
func BuildServerConfig(cfg *config.QueueConfig, redisCfg *config.RedisConfig) (asynq.RedisClientOpt, asynq.Config) {
	opt := BuildRedisOpt(redisCfg)
	concurrency := 2
	if cfg != nil && cfg.Concurrency > 0 {
		concurrency = cfg.Concurrency
	}
	queues := map[string]int{DefaultQueue: 1}
	if cfg != nil && len(cfg.Queues) > 0 {
		queues = cfg.Queues
	}
	return opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      queues,
	}
}

// BuildRedisOpt 由 Redis 配置生成 asynq 连接参数
func BuildRedisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	host := "127.0.0.1"
	port := 6379
	password := ""
	db := 0
	if cfg != nil {
		if strings.TrimSpace(cfg.Host) != "" {
			host = strings.TrimSpace(cfg.Host)
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		password = cfg.Password
		db = cfg.DB
	}
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	}
}
