package models

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)


func TestOpenDBAndAutoMigrate(t *testing.T) {
	dsn := fmt.Sprintf("file:models_migrate_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := OpenDB("sqlite", dsn, DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, nil)
	if err != nil {
		t.Fatalf("open db failed: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	for _, table := range []string{"users", "products", "carts", "cart_items", "payment_cards"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("expected table %s", table)
		}
	}

	user := User{Email: "a@b.co", Password: "secret123"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	product := Product{ID: 7, Title: "Bag"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.LocalID == "" {
		t.Fatalf("expected generated local id")
	}
	dup := Product{ID: 7, Title: "Other"}
	if err := db.Create(&dup).Error; err == nil {
		t.Fatalf("expected unique violation on product id")
	}
}

func TestOpenDBRejectsUnknownDriver(t *testing.T) {
	if _, err := OpenDB("mysql", "x", DBPoolConfig{}, nil); err == nil {
		t.Fatalf("expected unsupported driver error")
	}
}

func TestCartItemWrapperTotalPrice(t *testing.T) {
	item := CartItem{ID: "i1", ProductID: 3, Title: "Shirt", Price: 12.5, Quantity: 3}
	wrapper := NewCartItemWrapper(item)
	if wrapper.TotalPrice() != 37.5 {
		t.Fatalf("expected 37.5, got %v", wrapper.TotalPrice())
	}
	if wrapper.TotalAmount().String() != "37.50" {
		t.Fatalf("unexpected money: %s", wrapper.TotalAmount().String())
	}
	if wrapper.CheckoutProduct.Status != CheckoutStatusActive {
		t.Fatalf("expected active status")
	}
	if wrapper.CheckoutProduct.ProductDetails.ID != 3 || wrapper.CheckoutProduct.ProductDetails.IsFavourite {
		t.Fatalf("unexpected product snapshot: %+v", wrapper.CheckoutProduct.ProductDetails)
	}

	empty := CartItemWrapper{Quantity: 4}
	if empty.TotalPrice() != 0 {
		t.Fatalf("expected zero without product details")
	}
}

func TestMoneyJSON(t *testing.T) {
	m := NewMoneyFromFloat(1.005).Add(NewMoneyFromDecimal(decimal.NewFromInt(2)))
	raw, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back Money
	if err := back.UnmarshalJSON(raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !back.Equal(m.Decimal) {
		t.Fatalf("expected %s, got %s", m.String(), back.String())
	}
	if err := back.UnmarshalJSON([]byte("19.999")); err != nil {
		t.Fatalf("unmarshal number failed: %v", err)
	}
	if back.Float() != 20 {
		t.Fatalf("expected 20, got %v", back.Float())
	}
}

func TestNormalizeCardType(t *testing.T) {
	cases := map[string]string{
		"Visa":            CardTypeVisa,
		"MasterCard":      CardTypeMasterCard,
		"AmericanExpress": CardTypeAmericanExpress,
		"Discover":        CardTypeUnknown,
		"":                CardTypeUnknown,
	}
	for in, want := range cases {
		if got := NormalizeCardType(in); got != want {
			t.Fatalf("NormalizeCardType(%q)=%q want %q", in, got, want)
		}
	}
}
