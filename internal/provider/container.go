package provider

import (
	"github.com/healthybites-next/internal/cache"
	"github.com/healthybites-next/internal/config"
	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/queue"
	"github.com/healthybites-next/internal/service"
	"github.com/healthybites-next/internal/store"
)

// Container wires the store and services together once at startup.
type Container struct {
	Config      *config.Config
	Store       store.Store
	QueueClient *queue.Client

	CatalogService      *service.CatalogService
	CouponService       *service.CouponService
	OrderService        *service.OrderService
	NotificationService *service.NotificationService
	UploadService       *service.UploadService
}

func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	st, err := store.New(&cfg.Store)
	if err != nil {
		logger.Errorw("provider_init_store_failed", "error", err)
		panic(err)
	}

	c := &Container{
		Config:      cfg,
		Store:       st,
		QueueClient: queueClient,
	}

	c.NotificationService = service.NewNotificationService(cfg.Telegram)
	c.CatalogService = service.NewCatalogService(c.Store)
	c.CouponService = service.NewCouponService(c.Store)
	c.OrderService = service.NewOrderService(c.Store, c.NotificationService, c.QueueClient, cfg.Shipping)
	c.UploadService = service.NewUploadService(cfg)

	return c
}
