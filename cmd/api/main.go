package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"libcatalog/internal/catalog"
	"libcatalog/internal/config"
	"libcatalog/internal/httpx"
	"libcatalog/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	catalogLogger := mustOpenCatalogLog(cfg.CatalogLog)

	var fileStore catalog.Store
	if cfg.StrictLoad {
		fileStore = store.NewStrictJSONFile(cfg.CatalogPath)
	} else {
		fileStore = store.NewJSONFile(cfg.CatalogPath)
	}

	svc := catalog.NewService(catalog.New(catalogLogger), fileStore)
	router := newRouter(catalog.NewHTTPHandler(svc))

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, int(cfg.RateLimitRPS)*2)
	chained := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log.Default()),
		httpx.RecoveryMiddleware,
		rateLimit.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      chained,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s (catalog file %s)", cfg.Addr, cfg.CatalogPath)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func newRouter(handler *catalog.HTTPHandler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /items", handler.List)
	router.HandleFunc("POST /items", handler.Add)
	router.HandleFunc("DELETE /items", handler.Remove)
	router.HandleFunc("POST /catalog/save", handler.Save)
	router.HandleFunc("POST /catalog/load", handler.Load)

	return router
}

func mustOpenCatalogLog(path string) *log.Logger {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatalf("cannot open catalog log %s: %v", path, err)
	}
	return log.New(f, "", log.LstdFlags)
}
