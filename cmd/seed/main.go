package main

import (
	"context"
	"flag"
	"time"

	"github.com/healthybites-next/internal/cache"
	"github.com/healthybites-next/internal/config"
	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/store"
)

// Seeds the document store with the initial catalog. With -force the
// existing document is overwritten; without it an already-populated store
// is left alone.
func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "overwrite an existing document")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := cache.InitRedis(&cfg.Redis); err != nil {
		stdLog.Printf("warning: redis unavailable: %v", err)
	}

	st, err := store.New(&cfg.Store)
	if err != nil {
		stdLog.Fatalf("store init failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !force {
		doc, err := st.ReadAll(ctx)
		if err == nil && len(doc.Orders) > 0 {
			stdLog.Printf("store already holds %d orders, refusing to overwrite (use -force)", len(doc.Orders))
			return
		}
	}

	doc := store.InitialDocument()
	if err := st.WriteAll(ctx, doc); err != nil {
		stdLog.Fatalf("seed write failed: %v", err)
	}
	stdLog.Printf("seeded %d products, %d coupons", len(doc.Products), len(doc.Coupons))
}
