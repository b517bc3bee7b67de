package store

import (
	"testing"

	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/models"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStorageFailuresCollapseToBenignResults(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	s, pub, db := setupStoreTest(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db failed: %v", err)
	}

	if s.SaveUser(&models.User{Email: "a@shop.io"}) != nil {
		t.Fatalf("expected nil user on failure")
	}
	if s.LoadUser() != nil || s.UserExists("a@shop.io") || s.GetCurrentUser() != nil {
		t.Fatalf("expected absent user on failure")
	}
	if s.AddToCart(product(1, "A", "x", 1)) {
		t.Fatalf("expected add to cart failure")
	}
	if items := s.GetCartItems(); items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", items)
	}
	if s.GetCartItemCount() != 0 || s.GetCartTotal() != 0 || s.IsProductInCart(1) {
		t.Fatalf("expected zero cart aggregates")
	}
	if products := s.LoadAllProducts(); products == nil || len(products) != 0 {
		t.Fatalf("expected empty non-nil products")
	}
	if s.SetDefaultPaymentCard("x") || s.SavePaymentCard(cardInput("1")) != nil {
		t.Fatalf("expected card operations to fail")
	}

	if logs.FilterMessage("store_add_to_cart_failed").Len() == 0 {
		t.Fatalf("expected failure to be logged")
	}
	if logs.FilterMessage("store_save_user_failed").Len() == 0 {
		t.Fatalf("expected save user failure to be logged")
	}
	if len(pub.events) != 0 {
		t.Fatalf("failed writes must not publish events: %+v", pub.events)
	}
}
