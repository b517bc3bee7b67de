package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cartella/internal/catalog"
	"github.com/cartella/internal/models"
	"github.com/cartella/internal/store"
)

func newServiceTestStore(t *testing.T) *store.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := models.OpenDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return store.New(db)
}

type fakeFetcher struct {
	products []catalog.Product
	err      error
	calls    int
}

func (f *fakeFetcher) FetchProductsAsync(ctx context.Context) <-chan catalog.Result {
	f.calls++
	ch := make(chan catalog.Result, 1)
	ch <- catalog.Result{Products: f.products, Err: f.err}
	close(ch)
	return ch
}

type blockingFetcher struct{}

func (blockingFetcher) FetchProductsAsync(ctx context.Context) <-chan catalog.Result {
	return make(chan catalog.Result)
}

func catalogProduct(id int, title, category string, price float64) catalog.Product {
	return catalog.Product{
		ID:       id,
		Title:    title,
		Price:    price,
		Category: catalog.Category(category),
		Image:    fmt.Sprintf("https://img.example/%d.png", id),
		Rating:   catalog.Rating{Rate: 4.5, Count: 10},
	}
}

func requireAppError(t *testing.T, err error, title, message string) {
	t.Helper()
	var appErr *AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Title != title || appErr.Message != message {
		t.Fatalf("unexpected app error: title=%q message=%q", appErr.Title, appErr.Message)
	}
}
