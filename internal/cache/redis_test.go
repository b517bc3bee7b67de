package cache

import (
	"context"
	"testing"
	"time"

	"github.com/cartella/internal/config"
)

func TestNewRedisDisabled(t *testing.T) {
	r := NewRedis(&config.RedisConfig{Enabled: false})
	if r != nil {
		t.Fatalf("expected nil client when disabled")
	}
	if r.Enabled() {
		t.Fatalf("nil client must report disabled")
	}
	ctx := context.Background()
	if err := r.PublishEvent(ctx, "cart", []byte(`{}`)); err != nil {
		t.Fatalf("disabled publish should be a no-op: %v", err)
	}
	var dest map[string]interface{}
	hit, err := r.GetJSON(ctx, "x", &dest)
	if err != nil || hit {
		t.Fatalf("disabled get should miss, hit=%v err=%v", hit, err)
	}
	if err := r.SetRaw(ctx, "x", []byte("1"), time.Second); err != nil {
		t.Fatalf("disabled set should be a no-op: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("disabled close should be a no-op: %v", err)
	}
}

func TestRedisKeyNaming(t *testing.T) {
	r := NewRedis(&config.RedisConfig{Enabled: true, Prefix: " shop "})
	defer r.Close()
	if got := r.EventChannel("cart"); got != "shop:events:cart" {
		t.Fatalf("unexpected channel: %s", got)
	}
	if got := r.buildKey(LastEventKey("user")); got != "shop:events:last:user" {
		t.Fatalf("unexpected key: %s", got)
	}
	if got := r.buildKey(" "); got != "shop" {
		t.Fatalf("unexpected empty key: %s", got)
	}

	def := NewRedis(&config.RedisConfig{Enabled: true})
	defer def.Close()
	if got := def.EventChannel("product"); got != "cartella:events:product" {
		t.Fatalf("unexpected default channel: %s", got)
	}
}
