package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cartella/internal/events"
	"github.com/cartella/internal/models"

	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) actions(topic events.Topic) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		if e.Topic == topic {
			out = append(out, e.Action)
		}
	}
	return out
}

func steppingClock() func() time.Time {
	var mu sync.Mutex
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

func openStoreTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:store_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func setupStoreTest(t *testing.T) (*Store, *recordingPublisher, *gorm.DB) {
	t.Helper()
	db := openStoreTestDB(t)
	pub := &recordingPublisher{}
	return New(db, WithPublisher(pub), WithClock(steppingClock())), pub, db
}

func product(id int, title, category string, price float64) models.Product {
	return models.Product{
		ID:          id,
		Title:       title,
		Category:    category,
		Price:       price,
		Description: title + " description",
		Image:       fmt.Sprintf("https://img.example/%d.png", id),
		Rating:      4.1,
		RatingCount: 120,
	}
}
