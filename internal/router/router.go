package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cartella/internal/config"
	publichandlers "github.com/cartella/internal/http/handlers/public"
	"github.com/cartella/internal/http/response"
	"github.com/cartella/internal/logger"
	"github.com/cartella/internal/provider"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/v1"

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	r := gin.New()

	h := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "cartella"
	}
	redisClient := c.Redis.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}
	signupRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:signup", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group(apiPrefix)
	{
		// 远端目录
		catalog := apiV1.Group("/catalog")
		{
			catalog.GET("/products", h.GetCatalogProducts)
			catalog.GET("/categories", h.GetCatalogCategories)
			catalog.POST("/sync", h.SyncCatalog)
		}

		// 本地商品缓存
		products := apiV1.Group("/products")
		{
			products.GET("", h.GetProducts)
			products.GET("/categories", h.GetProductCategories)
			products.GET("/favourites", h.GetFavourites)
			products.GET("/:id", h.GetProduct)
			products.PUT("/:id/favourite", h.SetFavourite)
			products.DELETE("/:id", h.DeleteProduct)
			products.DELETE("", h.ClearProducts)
		}

		// 认证
		auth := apiV1.Group("/auth")
		{
			auth.GET("/start", h.GetStartScreen)
			auth.POST("/signup", RateLimitMiddleware(redisClient, signupRule, KeyByIP), h.SignUp)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), h.Login)
			auth.POST("/logout", h.Logout)
			auth.POST("/profile", h.CompleteProfile)
		}

		// 购物车
		cart := apiV1.Group("/cart")
		{
			cart.GET("", h.GetCart)
			cart.GET("/total", h.GetCartTotal)
			cart.POST("/items", h.AddCartItem)
			cart.PUT("/items/:product_id", h.UpdateCartItem)
			cart.DELETE("/items/:product_id", h.DeleteCartItem)
			cart.POST("/items/:product_id/pay", h.PayCartItem)
			cart.DELETE("", h.ClearCart)
		}

		// 当前用户与支付卡（需登录）
		me := apiV1.Group("/me")
		me.Use(ActiveUserMiddleware(c.Store))
		{
			me.GET("", h.GetCurrentUser)
			me.DELETE("", h.DeleteCurrentUser)
		}
		cards := apiV1.Group("/cards")
		cards.Use(ActiveUserMiddleware(c.Store))
		{
			cards.GET("", h.GetCards)
			cards.POST("", h.CreateCard)
			cards.GET("/default", h.GetDefaultCard)
			cards.PUT("/:id", h.UpdateCard)
			cards.PUT("/:id/default", h.SetDefaultCard)
			cards.DELETE("/:id", h.DeleteCard)
			cards.DELETE("", h.ClearCards)
		}

		// 变更事件
		apiV1.GET("/events", h.StreamEvents)
		apiV1.GET("/events/last", h.GetLastEvent)
	}

	routes := buildRouteCatalog(r)
	apiV1.GET("/routes", func(c *gin.Context) {
		response.Success(c, routes)
	})

	return r
}

// routeCatalogItem 路由目录项
type routeCatalogItem struct {
	Module string `json:"module"`
	Method string `json:"method"`
	Path   string `json:"path"`
}

func buildRouteCatalog(engine *gin.Engine) []routeCatalogItem {
	if engine == nil {
		return []routeCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]routeCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, apiPrefix+"/") {
			continue
		}
		key := method + ":" + item.Path
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, routeCatalogItem{
			Module: deriveRouteModule(item.Path),
			Method: method,
			Path:   item.Path,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Path == items[j].Path {
				return items[i].Method < items[j].Method
			}
			return items[i].Path < items[j].Path
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveRouteModule(path string) string {
	normalized := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(path), apiPrefix), "/")
	if normalized == "" {
		return "system"
	}
	return strings.SplitN(normalized, "/", 2)[0]
}
