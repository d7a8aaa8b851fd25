package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sbmgmt/siteshell"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the website",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := siteshell.LoadConfig(v, configPath)
			if err != nil {
				return err
			}
			app := siteshell.New(cfg, siteshell.ViewFuncs{})
			if err := app.Init(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- app.Start() }()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			app.Echo.Logger.Info("shutting down")
			return app.Shutdown(shutdownCtx)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (yaml, toml or json)")
	flags.String("addr", ":3000", "listen address")
	flags.String("url", "https://sbmgmt.co", "public base URL")
	flags.String("static-dir", "public", "directory served at the site root")
	flags.String("log-level", "info", "debug, info, warn, error or off")
	_ = v.BindPFlag("addr", flags.Lookup("addr"))
	_ = v.BindPFlag("url", flags.Lookup("url"))
	_ = v.BindPFlag("static_dir", flags.Lookup("static-dir"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	return cmd
}
