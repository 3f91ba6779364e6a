package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/cache"
	"github.com/healthybites-next/internal/config"
	adminhandlers "github.com/healthybites-next/internal/http/handlers/admin"
	publichandlers "github.com/healthybites-next/internal/http/handlers/public"
	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/provider"
)

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "hb"
	}
	couponRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:coupon", redisPrefix),
		WindowSeconds: cfg.Security.CouponRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CouponRateLimit.MaxAttempts,
		Message:       "too many coupon attempts",
	}
	redisClient := cache.Client()

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded images are served straight from disk.
	uploadDir := strings.TrimSpace(cfg.Upload.Dir)
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	r.Static("/uploads", uploadDir)

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/catalog", publicHandler.GetCatalog)
			public.GET("/coupons", publicHandler.GetCoupons)
			public.POST("/coupons/validate", RateLimitMiddleware(redisClient, couponRule, KeyByIP), publicHandler.ValidateCoupon)
			public.POST("/cart/price", publicHandler.PriceCart)
			public.POST("/orders", publicHandler.CreateOrder)
		}

		admin := apiV1.Group("/admin")
		admin.Use(AdminSecretMiddleware(cfg.Admin.Secret))
		{
			admin.GET("/document", adminHandler.GetDocument)
			admin.POST("/catalog", adminHandler.SaveCatalog)
			admin.GET("/orders", adminHandler.ListOrders)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.DELETE("/orders", adminHandler.DeleteOrders)
			admin.POST("/upload", adminHandler.UploadFile)
		}
	}

	return r
}
