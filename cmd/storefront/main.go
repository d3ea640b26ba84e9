package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"techstore/internal/config"
	"techstore/internal/util"
	"techstore/pkg/kv"
	"techstore/pkg/store"
)

func main() {
	path := config.ConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	delay, err := config.ParseProcessingDelay(cfg.ProcessingDelay)
	if err != nil {
		log.Fatalf("failed to parse processing delay: %v", err)
	}

	util.InitLogger(cfg.LogLevel)

	var records kv.Store
	if cfg.RedisAddr != "" {
		records = kv.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
	} else {
		fileStore, err := kv.NewFile(cfg.DataDir)
		if err != nil {
			log.Fatalf("failed to open data dir: %v", err)
		}
		records = fileStore
	}

	sessions := store.NewSessionStore(
		store.DefaultAccounts(),
		records,
		store.NewIdentityCodec(cfg.SessionSecret),
	)
	catalog := store.NewCatalogStore(
		store.DefaultSeed(),
		store.Pricing{
			TaxRate:          cfg.TaxRate,
			ShippingFee:      cfg.ShippingFee,
			FreeShippingOver: cfg.FreeShippingOver,
		},
		records,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("storefront ready",
		"products", len(catalog.Products()),
		"categories", len(catalog.Categories()),
	)

	r := newREPL(sessions, catalog, delay)
	r.run(ctx, os.Stdin, os.Stdout)
}
