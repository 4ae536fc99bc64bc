package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaronzipp/aljasus/internal/categories"
	"github.com/aaronzipp/aljasus/internal/config"
	"github.com/aaronzipp/aljasus/internal/game"
	"github.com/aaronzipp/aljasus/internal/handlers"
	"github.com/aaronzipp/aljasus/internal/models"
	"github.com/aaronzipp/aljasus/internal/sse"
	"github.com/aaronzipp/aljasus/internal/store"
)

func main() {
	cfg := config.Load()

	kv, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer closeStore()

	catalog, err := loadCatalog(cfg)
	if err != nil {
		log.Fatal("Failed to load categories:", err)
	}

	templates, err := handlers.ParseTemplates()
	if err != nil {
		log.Fatal("Failed to parse templates:", err)
	}

	engine := game.New(kv, catalog, game.Options{})
	defer engine.Close()

	ctx := &handlers.Context{
		Engine:     engine,
		Hub:        sse.NewHub(),
		Categories: catalog,
		Templates:  templates,
		BaseURL:    cfg.BaseURL,
	}
	engine.SetOnChange(ctx.Publish)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           ctx.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-sigCtx.Done()
		log.Printf("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown: %v", err)
		}
	}()

	log.Printf("Server starting on %s (session %s)", cfg.BaseURL, engine.ID)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Server error: %v", err)
	}
}

// openStore returns the configured key-value store and its closer
func openStore(cfg config.Config) (store.KV, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Printf("Using in-memory store; nothing survives a restart")
		return store.NewMemoryStore(), func() {}, nil
	}
	s, err := store.OpenSQLite(cfg.StorePath)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Using SQLite store at %s", cfg.StorePath)
	return s, func() {
		if err := s.Close(); err != nil {
			log.Printf("Closing store: %v", err)
		}
	}, nil
}

// loadCatalog builds the category data: the embedded list or WORDS_FILE,
// plus every Lua word pack
func loadCatalog(cfg config.Config) (*categories.Catalog, error) {
	catalog := categories.Default()
	if cfg.WordsFile != "" {
		c, err := categories.LoadFile(cfg.WordsFile)
		if err != nil {
			return nil, err
		}
		catalog = c
	}
	for _, path := range cfg.WordPacks {
		pack, err := categories.LoadLuaPack(path)
		if err != nil {
			return nil, fmt.Errorf("word pack %s: %w", path, err)
		}
		catalog.Merge(pack)
	}
	log.Printf("Loaded %d classic and %d chameleon categories",
		len(catalog.Categories(models.ModeClassic)), len(catalog.Categories(models.ModeChameleon)))
	return catalog, nil
}
