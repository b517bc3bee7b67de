package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cartella/internal/logger"
)

// Sink 外部事件出口（如 Redis 频道）
type Sink interface {
	PublishEvent(ctx context.Context, topic string, payload []byte) error
}

// BridgeService 将总线事件转发到外部出口
type BridgeService struct {
	bus  *Bus
	sink Sink
	done chan struct{}
}

// NewBridgeService 创建桥接服务
func NewBridgeService(bus *Bus, sink Sink) *BridgeService {
	return &BridgeService{bus: bus, sink: sink, done: make(chan struct{})}
}

// Name 服务名称
func (s *BridgeService) Name() string {
	return "event_bridge"
}

// Start 阻塞转发直至 ctx 取消
func (s *BridgeService) Start(ctx context.Context) error {
	defer close(s.done)
	if s.bus == nil || s.sink == nil {
		return errors.New("event bridge not initialized")
	}
	ch, cancel := s.bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			payload, err := json.Marshal(event)
			if err != nil {
				logger.Warnw("event_bridge_marshal_failed", "topic", event.Topic, "error", err)
				continue
			}
			if err := s.sink.PublishEvent(ctx, string(event.Topic), payload); err != nil {
				logger.Warnw("event_bridge_publish_failed", "topic", event.Topic, "error", err)
			}
		}
	}
}

// Stop 等待转发循环退出
func (s *BridgeService) Stop(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
