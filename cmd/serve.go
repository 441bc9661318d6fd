package cmd

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/deepdive/internal/dashboard"
	"github.com/ziadkadry99/deepdive/internal/render"
	"github.com/ziadkadry99/deepdive/internal/server"
	"github.com/ziadkadry99/deepdive/internal/session"
	"github.com/ziadkadry99/deepdive/internal/site"
)

var (
	serveApp  string
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a tutorial dashboard web server",
	Long:  `Starts the web server for one tutorial dashboard. The mcp-tutorial and agents-tutorial launchers run this command for you.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		registry, sim := newRegistry()
		app, err := registry.Lookup(serveApp)
		if err != nil {
			return err
		}

		appCfg, err := cfg.App(app.ID)
		if err != nil {
			return err
		}
		port := appCfg.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		store, closeStore, err := openSessionStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		renderer, err := render.New()
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}

		dash := dashboard.New(app, session.NewManager(store, app.ID), renderer, sim,
			dashboard.WithMetricsInterval(cfg.Metrics.Interval))

		srv := server.New(server.Config{
			Host:     cfg.Host,
			Port:     port,
			AllowAll: cfg.AllowAllOrigins,
		}, dash)

		ln, err := net.Listen("tcp", srv.Config().Addr())
		if err != nil {
			return fmt.Errorf("listening on port %d: %w", port, err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		url := srv.Config().URL()
		fmt.Fprintf(os.Stderr, "%s %s v%s\n", app.Icon, app.Title, Version)
		fmt.Fprintf(os.Stderr, "  URL: %s\n", url)
		fmt.Fprintf(os.Stderr, "  Sessions: %s\n", cfg.Session.Driver)

		if serveOpen {
			go site.OpenBrowser(url)
		}

		return srv.Serve(ln)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveApp, "app", "", "tutorial to serve (mcp or agents)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (default from config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the dashboard in a browser")
	_ = serveCmd.MarkFlagRequired("app")
	rootCmd.AddCommand(serveCmd)
}
