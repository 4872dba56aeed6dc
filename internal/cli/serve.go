package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/eduviz/internal/app"
	"github.com/yungbote/eduviz/internal/config"
	"github.com/yungbote/eduviz/internal/platform/logger"
	"github.com/yungbote/eduviz/internal/platform/shutdown"
)

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the generation API and the mesh service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := opts.configPath
			if strings.TrimSpace(path) == "" {
				path = os.Getenv("EDUVIZ_CONFIG_PATH")
			}
			cfg, err := config.LoadFrom(opts.v, path)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Env)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			a, err := app.New(cfg, log)
			if err != nil {
				log.Sync()
				return err
			}
			defer a.Close()

			ctx, stop := shutdown.NotifyContext(context.Background())
			defer stop()

			return a.Run(ctx)
		},
	}

	f := cmd.Flags()
	f.String("addr", "", "generation API listen address (http.addr)")
	f.String("mesh-addr", "", "mesh service listen address (mesh.addr)")
	f.Bool("mesh", true, "run the mesh service (mesh.enabled)")
	f.String("db-driver", "", "postgres, sqlite or none (db.driver)")
	f.String("db-dsn", "", "database DSN (db.dsn)")
	f.String("redis-addr", "", "Redis address for the realtime bus (redis.addr)")
	f.Bool("metrics", false, "serve /metrics (metrics.enabled)")

	for key, flag := range map[string]string{
		"http.addr":       "addr",
		"mesh.addr":       "mesh-addr",
		"mesh.enabled":    "mesh",
		"db.driver":       "db-driver",
		"db.dsn":          "db-dsn",
		"redis.addr":      "redis-addr",
		"metrics.enabled": "metrics",
	} {
		_ = opts.v.BindPFlag(key, f.Lookup(flag))
	}
	return cmd
}
