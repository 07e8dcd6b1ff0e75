// Package main is the entry point for the printshop-quote server.
package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"printshop-quote/api"
	"printshop-quote/core/quote"
	"printshop-quote/internal/catalog"
	"printshop-quote/internal/config"
	"printshop-quote/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	catalogPath := flag.String("catalog", "", "catalog file or directory (overrides config)")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			logging.Fatal("load config", zap.Error(err))
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}

	var store catalog.Store
	if _, err := os.Stat(cfg.Catalog.Path); err == nil {
		loaded, err := catalog.LoadPath(cfg.Catalog.Path)
		if err != nil {
			logging.Fatal("load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		}
		store = loaded
		logging.Info("catalog loaded", zap.String("path", cfg.Catalog.Path))
	} else {
		logging.Warn("no catalog found, serving inline quotes only",
			zap.String("path", cfg.Catalog.Path))
	}

	engine := quote.NewEngine(quote.WithDiscounts(cfg.Discounts()))
	server := api.NewServerWithStore(version, engine, store)

	if err := server.ListenAndServe(cfg.Server.Addr); err != nil {
		logging.Fatal("server exited", zap.Error(err))
	}
}
