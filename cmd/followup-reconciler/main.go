package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"followup/internal/modkit"
	"followup/internal/modkit/module"
	"followup/internal/platform/config"
	"followup/internal/platform/logger"
	"followup/internal/platform/store"

	reconcilermod "followup/internal/services/reconciler/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	root := config.New()
	dbCfg := root.Prefix("SERVICE_PGSQL_")

	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         dbCfg.MustString("DBURL"),
			MaxConns:    int32(dbCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: dbCfg.MayInt("SLOW_MS", 500),
			LogSQL:      dbCfg.MayBool("LOG_SQL", false),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		fInterval = flag.Duration("interval", time.Minute, "delay between reconcile cycles")
		fBatch    = flag.Int("batch", 256, "staged rows consumed per cycle")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	// Export as env so the module can also read via FromConfig
	mustSetEnv("RECONCILER_INTERVAL", fInterval.String())
	mustSetEnv("RECONCILER_BATCH_LIMIT", fmt.Sprintf("%d", *fBatch))

	mod := reconcilermod.New(deps, reconcilermod.Options{
		Interval:   *fInterval,
		BatchLimit: *fBatch,
	})
	module.Register(mod.Name(), mod.Ports())

	ports := module.MustPortsOf[reconcilermod.Ports](mod)

	if err := ports.Worker.Run(context.Background()); err != nil {
		l.Fatal().Err(err).Msg("reconciler worker failed")
	}
}
