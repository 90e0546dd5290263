package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/urlpath/urlpath/httpnorm"
	"github.com/urlpath/urlpath/internal/config"
)

func newServeCmd() *cobra.Command {
	var configPath string
	var redirectOverride bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run a reverse proxy that canonicalizes request paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				return errors.New("config path is required")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if redirectOverride {
				cfg.Normalize.Redirect = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Server.Listen == "" {
				return errors.New("server.listen is required")
			}
			if cfg.Upstream.URL == "" {
				return errors.New("upstream.url is required")
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.Flags().BoolVar(&redirectOverride, "redirect", false, "Redirect to the canonical path instead of rewriting")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	target, err := url.Parse(cfg.Upstream.URL)
	if err != nil {
		return fmt.Errorf("parse upstream url: %w", err)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		http.Error(w, "upstream error", http.StatusBadGateway)
	}

	handler := httpnorm.Handler(proxy, httpnorm.Options{
		Redirect:     cfg.Normalize.Redirect,
		RedirectCode: cfg.Normalize.RedirectCode,
	})

	metricsSrv := startMetricsServer(cfg, handler)
	defer func() {
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(context.Background())
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	signalCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-signalCtx.Done():
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func startMetricsServer(cfg *config.Config, handler *httpnorm.Middleware) *http.Server {
	if !cfg.Metrics.Enabled {
		return nil
	}

	reg := prometheus.NewRegistry()
	metrics := httpnorm.NewMetrics(reg)
	handler.SetMetrics(metrics)

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(reg))

	srv := &http.Server{Addr: cfg.Metrics.Listen, Handler: mux}
	go func() {
		_ = srv.ListenAndServe()
	}()
	return srv
}
