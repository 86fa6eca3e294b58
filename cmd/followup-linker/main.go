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

	linkermod "followup/internal/services/linker/module"
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
		fInterval  = flag.Duration("interval", time.Minute, "delay between link cycles")
		fBatch     = flag.Int("batch", 128, "unlinked events leased per cycle")
		fThreshold = flag.Duration("threshold", 30*time.Minute, "nearest-sample fallback window per event")
		fPad       = flag.Duration("window_pad", 24*time.Hour, "sample load padding around the batch")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	// Export as env so the module can also read via FromConfig
	mustSetEnv("LINKER_INTERVAL", fInterval.String())
	mustSetEnv("LINKER_BATCH_LIMIT", fmt.Sprintf("%d", *fBatch))
	mustSetEnv("LINKER_THRESHOLD", fThreshold.String())
	mustSetEnv("LINKER_WINDOW_PAD", fPad.String())

	mod := linkermod.New(deps, linkermod.Options{
		Interval:   *fInterval,
		BatchLimit: *fBatch,
		Threshold:  *fThreshold,
		WindowPad:  *fPad,
	})
	module.Register(mod.Name(), mod.Ports())

	ports := module.MustPortsOf[linkermod.Ports](mod)

	if err := ports.Worker.Run(context.Background()); err != nil {
		l.Fatal().Err(err).Msg("linker worker failed")
	}
}
