package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cartella/internal/config"

	"github.com/redis/go-redis/v9"
)

const lastEventTTL = 24 * time.Hour

// Redis Redis 客户端封装（键与频道统一加前缀）
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis 初始化 Redis 客户端，未启用时返回 nil
func NewRedis(cfg *config.RedisConfig) *Redis {
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "cartella"
	}

	return &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", addr, port),
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: prefix,
	}
}

// Enabled 判断缓存是否启用
func (r *Redis) Enabled() bool {
	return r != nil && r.client != nil
}

// Client 获取 Redis 客户端
func (r *Redis) Client() *redis.Client {
	if !r.Enabled() {
		return nil
	}
	return r.client
}

// Ping 检查连通性
func (r *Redis) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Ping(ctx).Err()
}

// Close 关闭连接
func (r *Redis) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}

// GetJSON 获取 JSON 缓存
func (r *Redis) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !r.Enabled() {
		return false, nil
	}
	val, err := r.client.Get(ctx, r.buildKey(key)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetRaw 写入原始缓存
func (r *Redis) SetRaw(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Set(ctx, r.buildKey(key), payload, ttl).Err()
}

// PublishEvent 发布到 <prefix>:events:<topic> 频道，并保留该主题最近一次事件
func (r *Redis) PublishEvent(ctx context.Context, topic string, payload []byte) error {
	if !r.Enabled() {
		return nil
	}
	if err := r.client.Publish(ctx, r.EventChannel(topic), payload).Err(); err != nil {
		return err
	}
	return r.SetRaw(ctx, LastEventKey(topic), payload, lastEventTTL)
}

// EventChannel 事件频道名
func (r *Redis) EventChannel(topic string) string {
	return r.buildKey("events:" + strings.TrimSpace(topic))
}

// LastEventKey 最近事件缓存键（不含前缀）
func LastEventKey(topic string) string {
	return "events:last:" + strings.TrimSpace(topic)
}

func (r *Redis) buildKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return r.prefix
	}
	return fmt.Sprintf("%s:%s", r.prefix, trimmed)
}
