package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aaronzipp/aljasus/internal/config"
	"github.com/aaronzipp/aljasus/internal/models"
	"github.com/aaronzipp/aljasus/internal/store"
)

func TestLoadCatalogWithPack(t *testing.T) {
	pack := filepath.Join(t.TempDir(), "extra.lua")
	src := `return { classic = { { category = "Planets", words = { "Mars", "Venus" } } } }`
	if err := os.WriteFile(pack, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := loadCatalog(config.Config{WordPacks: []string{pack}})
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if _, ok := catalog.Lookup(models.ModeClassic, "Planets"); !ok {
		t.Fatalf("pack category missing")
	}
	if _, err := loadCatalog(config.Config{WordPacks: []string{pack + ".missing"}}); err == nil {
		t.Fatalf("missing pack accepted")
	}
}

func TestOpenStore(t *testing.T) {
	kv, closeStore, err := openStore(config.Config{StoreDriver: config.DriverSQLite, StorePath: filepath.Join(t.TempDir(), "t.db")})
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer closeStore()
	if _, ok := kv.(*store.SQLiteStore); !ok {
		t.Fatalf("store = %T", kv)
	}

	mem, closeMem, _ := openStore(config.Config{StoreDriver: config.DriverMemory})
	defer closeMem()
	if _, ok := mem.(*store.MemoryStore); !ok {
		t.Fatalf("store = %T", mem)
	}
}
