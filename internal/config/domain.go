package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvPresentationsStore    = "PRESENTATIONS_STORE"
	EnvPresentationsCapacity = "PRESENTATIONS_CAPACITY"
	EnvSessionsCapacity      = "SESSIONS_CAPACITY"
)

// Presentation store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// PresentationsConfig selects the presentation store.
type PresentationsConfig struct {
	Store string `toml:"store"`

	// Capacity bounds the memory store; older presentations are evicted first.
	Capacity int `toml:"capacity"`
}

func (c *PresentationsConfig) Finalize() error {
	if c.Store == "" {
		c.Store = StoreMemory
	}
	if c.Capacity == 0 {
		c.Capacity = 256
	}
	if v := os.Getenv(EnvPresentationsStore); v != "" {
		c.Store = v
	}
	if n, ok := envInt(EnvPresentationsCapacity); ok {
		c.Capacity = n
	}

	switch c.Store {
	case StoreMemory, StorePostgres:
	default:
		return fmt.Errorf("invalid store: %s (must be memory or postgres)", c.Store)
	}
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive")
	}
	return nil
}

func (c *PresentationsConfig) Merge(overlay *PresentationsConfig) {
	if overlay.Store != "" {
		c.Store = overlay.Store
	}
	if overlay.Capacity != 0 {
		c.Capacity = overlay.Capacity
	}
}

// SessionsConfig bounds the in-memory wizard session store.
type SessionsConfig struct {
	Capacity int `toml:"capacity"`
}

func (c *SessionsConfig) Finalize() error {
	if c.Capacity == 0 {
		c.Capacity = 1024
	}
	if n, ok := envInt(EnvSessionsCapacity); ok {
		c.Capacity = n
	}
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive")
	}
	return nil
}

func (c *SessionsConfig) Merge(overlay *SessionsConfig) {
	if overlay.Capacity != 0 {
		c.Capacity = overlay.Capacity
	}
}

func envInt(name string) (int, bool) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	return n, err == nil
}
