package main

import (
	"fmt"
	"log"
	"os"
	"time"
)

const (
	defaultDBPath    = "blog.db"
	defaultLatency   = time.Second
	defaultDemoEmail = "demo@example.com"
)

type Config struct {
	DBPath  string
	Latency time.Duration

	DemoEmail        string
	DemoPasswordHash string

	// Now is the clock used for post timestamps.
	Now func() time.Time
}

func loadConfig() (Config, error) {
	cfg := Config{
		DBPath:    os.Getenv("BLOG_DB"),
		Latency:   defaultLatency,
		DemoEmail: os.Getenv("DEMO_EMAIL"),
		Now:       time.Now,
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.DemoEmail == "" {
		cfg.DemoEmail = defaultDemoEmail
	}

	if v := os.Getenv("BLOG_LATENCY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parsing BLOG_LATENCY: %w", err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("BLOG_LATENCY must not be negative, got %s", d)
		}
		cfg.Latency = d
	}

	pass := os.Getenv("DEMO_PASS")
	if pass == "" {
		log.Println("WARNING: DEMO_PASS not set, using default password")
		pass = "password"
	}
	cfg.DemoPasswordHash = mustHashPassword(pass)

	return cfg, nil
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}
