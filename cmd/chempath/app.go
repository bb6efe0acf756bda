package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/aretw0/chempath"
	"github.com/aretw0/chempath/internal/config"
	"github.com/aretw0/chempath/internal/logging"
	"github.com/aretw0/chempath/pkg/adapters/memory"
	"github.com/aretw0/chempath/pkg/adapters/redis"
	"github.com/aretw0/chempath/pkg/ports"
	"github.com/spf13/cobra"
)

// app carries what every command needs once flags are parsed.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	redis  *redis.Cache
}

func (a *app) load(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	if f, _ := cmd.Flags().GetString("log-format"); f != "" {
		cfg.Log.Format = f
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.NewWithFormat(os.Stderr, level, cfg.Log.Format)
	return nil
}

// cache builds the configured result cache. A Redis backend that cannot be
// reached degrades to the in-memory cache.
func (a *app) cache() ports.PathCache {
	c := a.cfg.Cache
	switch c.Backend {
	case "none":
		return nil
	case "redis":
		rc := redis.New(c.Redis.Addr, c.Redis.Password, c.Redis.DB,
			redis.WithTTL(c.TTL),
			redis.WithPrefix(c.Redis.Prefix),
		)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			a.logger.Warn("redis cache unavailable, using memory", "addr", c.Redis.Addr, "error", err)
			rc.Close()
			break
		}
		a.redis = rc
		return rc
	}
	return memory.NewCache(memory.WithTTL(c.TTL), memory.WithMaxEntries(c.MaxEntries))
}

// planner builds a Planner from the config. A nil cache disables caching;
// extra options are applied last.
func (a *app) planner(c ports.PathCache, extra ...chempath.Option) *chempath.Planner {
	opts := []chempath.Option{
		chempath.WithLogger(a.logger),
		chempath.WithMaxVisited(a.cfg.Search.MaxVisited),
	}
	if c != nil {
		opts = append(opts, chempath.WithCache(c))
	}
	return chempath.New(append(opts, extra...)...)
}

func (a *app) close() {
	if a.redis != nil {
		a.redis.Close()
		a.redis = nil
	}
}
