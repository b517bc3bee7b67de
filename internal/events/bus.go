package events

import (
	"sync"
	"time"
)

// Topic 变更主题
type Topic string

const (
	TopicUser        Topic = "user"
	TopicProduct     Topic = "product"
	TopicCart        Topic = "cart"
	TopicPaymentCard Topic = "payment_card"
)

// AllTopics 全部主题
var AllTopics = []Topic{TopicUser, TopicProduct, TopicCart, TopicPaymentCard}

const defaultSubscriberBuffer = 64

// Event 存储变更通知
type Event struct {
	Topic  Topic     `json:"topic"`
	Action string    `json:"action"`
	Key    string    `json:"key,omitempty"`
	At     time.Time `json:"at"`
}

// Publisher 事件发布接口
type Publisher interface {
	Publish(event Event)
}

type subscription struct {
	ch     chan Event
	topics map[Topic]struct{}
}

func (s *subscription) wants(topic Topic) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[topic]
	return ok
}

// Bus 进程内订阅/通知总线，发布方永不阻塞
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*subscription
	buffer int
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return NewBusWithBuffer(defaultSubscriberBuffer)
}

// NewBusWithBuffer 指定订阅缓冲区大小
func NewBusWithBuffer(buffer int) *Bus {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Bus{subs: make(map[int]*subscription), buffer: buffer}
}

// Subscribe 订阅主题（为空表示全部），返回事件通道与取消函数
func (b *Bus) Subscribe(topics ...Topic) (<-chan Event, func()) {
	sub := &subscription{
		ch:     make(chan Event, b.buffer),
		topics: make(map[Topic]struct{}, len(topics)),
	}
	for _, topic := range topics {
		sub.topics[topic] = struct{}{}
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish 广播事件；订阅方缓冲区满时丢弃
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}
	if event.At.IsZero() {
		event.At = time.Now()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if !sub.wants(event.Topic) {
			continue
		}
		select {
		case sub.ch <- event:
		default:
		}
	}
}

// SubscriberCount 当前订阅数
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
