package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config is the server configuration read from the environment
type Config struct {
	Port        int
	BaseURL     string
	StoreDriver string
	StorePath   string
	WordsFile   string   // replaces the embedded catalog when set
	WordPacks   []string // Lua packs merged into the catalog
}

// Load reads .env (if present) and then the environment
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment. Invalid values
// fall back to their defaults.
func FromEnv() Config {
	c := Config{
		Port:        8080,
		StoreDriver: getenv("STORE_DRIVER", DriverSQLite),
		StorePath:   getenv("STORE_PATH", "aljasus.db"),
		WordsFile:   strings.TrimSpace(os.Getenv("WORDS_FILE")),
		WordPacks:   splitList(os.Getenv("WORD_PACKS")),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			log.Printf("config: invalid PORT %q, using %d", v, c.Port)
		} else {
			c.Port = port
		}
	}

	switch c.StoreDriver {
	case DriverSQLite, DriverMemory:
	default:
		log.Printf("config: unknown STORE_DRIVER %q, using %s", c.StoreDriver, DriverSQLite)
		c.StoreDriver = DriverSQLite
	}

	c.BaseURL = strings.TrimRight(getenv("BASE_URL", fmt.Sprintf("http://localhost:%d", c.Port)), "/")
	return c
}

// Addr is the listen address
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getenv(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
