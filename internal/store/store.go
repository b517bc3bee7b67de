// Package store 本地存储：用户、商品缓存、购物车与支付卡的唯一读写入口。
//
// 所有操作串行执行；底层错误在此处记录日志并折叠为 nil/false/空集合，
// 调用方无法区分“不存在”与“存储失败”。
package store

import (
	"sync"
	"time"

	"github.com/cartella/internal/events"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/repository"

	"gorm.io/gorm"
)

// Store 本地存储
type Store struct {
	mu sync.Mutex

	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	cardRepo    repository.PaymentCardRepository

	publisher events.Publisher
	now       func() time.Time
}

// Option 存储选项
type Option func(*Store)

// WithPublisher 写操作成功后发布变更事件
func WithPublisher(p events.Publisher) Option {
	return func(s *Store) {
		s.publisher = p
	}
}

// WithClock 替换时间源
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New 基于已迁移的数据库创建存储
func New(db *gorm.DB, opts ...Option) *Store {
	return NewWithRepositories(
		repository.NewUserRepository(db),
		repository.NewProductRepository(db),
		repository.NewCartRepository(db),
		repository.NewPaymentCardRepository(db),
		opts...,
	)
}

// NewWithRepositories 使用指定仓库创建存储
func NewWithRepositories(
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	cardRepo repository.PaymentCardRepository,
	opts ...Option,
) *Store {
	s := &Store{
		userRepo:    userRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		cardRepo:    cardRepo,
		now:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Store) publish(topic events.Topic, action, key string) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(events.Event{Topic: topic, Action: action, Key: key, At: s.now()})
}

func logFailure(event string, err error, kv ...interface{}) {
	logger.Errorw(event, append(kv, "error", err)...)
}
