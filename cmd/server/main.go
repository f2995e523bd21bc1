package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/meur/ffscope/internal/api"
	"github.com/meur/ffscope/internal/catalog"
	"github.com/meur/ffscope/internal/config"
	"github.com/meur/ffscope/internal/upstream"
	"github.com/meur/ffscope/internal/web"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Flags override the environment.
	port := flag.String("port", cfg.Port, "Server port")
	catalogPath := flag.String("catalog", cfg.CatalogPath, "Item catalog JSON path")
	flag.Parse()

	// Phase one of startup: load the item catalog. A failed load is a
	// degraded mode, not a fatal one; lookups fall back to raw identifiers.
	var catalogWarning string
	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		logger.Warn("failed to load item catalog", zap.String("path", *catalogPath), zap.Error(err))
		catalogWarning = "Failed to load item definitions (app.json). Image lookup may be incomplete."
		cat = catalog.New(nil)
	} else {
		logger.Info("item catalog loaded", zap.String("path", *catalogPath), zap.Int("items", cat.Len()))
	}

	up := upstream.New(cfg.PlayerInfoAPIBase, cfg.ImageAPIBase)
	page := web.NewPage("http://localhost:"+*port, cat, catalogWarning,
		cfg.DefaultUID, cfg.DefaultRegion, logger)
	srv := api.New(up, page, cfg.StaticDir, logger)

	logger.Info("ffscope relay starting",
		zap.String("addr", "http://localhost:"+*port),
		zap.String("static_dir", cfg.StaticDir))

	// Phase two: warm up the default lookup once the listener is up. Its
	// failure is isolated from startup.
	go page.Warmup(context.Background())

	if err := http.ListenAndServe(":"+*port, srv); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
