package main

import (
	"context"
	"flag"
	"time"

	"github.com/cartella/internal/config"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/provider"
	"github.com/cartella/internal/service"
)

func main() {
	var (
		configPath string
		email      string
		password   string
		name       string
		cartItems  int
	)
	flag.StringVar(&configPath, "config", "", "配置文件路径")
	flag.StringVar(&email, "email", "demo@cartella.local", "演示账号邮箱")
	flag.StringVar(&password, "password", "demo-pass-123", "演示账号密码")
	flag.StringVar(&name, "name", "Demo Shopper", "演示账号姓名")
	flag.IntVar(&cartItems, "cart", 2, "加入购物车的商品数量")
	flag.Parse()

	cfg := config.LoadFile(configPath)
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	container, err := provider.NewContainer(cfg)
	if err != nil {
		stdLog.Fatalf("Failed to open local store: %v", err)
	}
	defer container.Close()

	// 同步目录
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	saved, err := container.HomeService.SyncCatalog(ctx)
	cancel()
	if err != nil {
		stdLog.Fatalf("Failed to sync catalog: %v", err)
	}
	stdLog.Printf("Synced %d products", saved)

	// 演示账号
	if container.Store.UserExists(email) {
		stdLog.Printf("User already exists: %s", email)
	} else if _, err := container.AuthService.SignUp(email, password); err != nil {
		stdLog.Fatalf("Failed to create user %s: %v", email, err)
	} else {
		stdLog.Printf("Created user: %s", email)
	}
	if _, err := container.AuthService.CompleteProfile(email, name); err != nil {
		stdLog.Fatalf("Failed to complete profile: %v", err)
	}

	// 演示支付卡
	if len(container.ProfileService.Cards()) == 0 {
		card, err := container.ProfileService.AddCard(service.CardInput{
			CardNumber:     "4242 4242 4242 4242",
			ExpiryDate:     "12/30",
			CVV:            "123",
			CardholderName: name,
		})
		if err != nil {
			stdLog.Fatalf("Failed to add card: %v", err)
		}
		if err := container.ProfileService.SetDefaultCard(card.ID); err != nil {
			stdLog.Printf("Failed to set default card: %v", err)
		}
		stdLog.Printf("Added card: %s", card.MaskedNumber)
	} else {
		stdLog.Printf("Cards already exist, skipped")
	}

	// 购物车
	products, _ := container.ProductService.List(service.ProductListInput{Page: 1, PageSize: cartItems})
	for _, p := range products {
		if container.ProductService.IsInCart(p.ID) {
			continue
		}
		if _, err := container.ProductService.AddToCart(p.ID); err != nil {
			stdLog.Printf("Failed to add product %d to cart: %v", p.ID, err)
			continue
		}
		stdLog.Printf("Added to cart: %s", p.Title)
	}
	stdLog.Printf("Cart total: %s", container.CartService.Total().String())
	stdLog.Printf("Seed data created successfully!")
}
