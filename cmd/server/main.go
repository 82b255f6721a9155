package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devadigapratham/cncdro/api"
	"github.com/devadigapratham/cncdro/config"
	"github.com/devadigapratham/cncdro/console"
	"github.com/devadigapratham/cncdro/motion"
	"github.com/devadigapratham/cncdro/settings"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	v := viper.New()
	root := &cobra.Command{
		Use:          "cncdro",
		Short:        "Headless machine-control panel with switchable display units",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	if err := config.BindFlags(root.Flags(), v); err != nil {
		logrus.Fatalf("Failed to bind flags: %v", err)
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	if cfg.LogLevel < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the settings store
	var store *settings.Store
	if cfg.SettingsPath == "" {
		store = settings.NewInmem()
	} else {
		var err error
		store, err = settings.OpenBolt(cfg.SettingsPath)
		if err != nil {
			return err
		}
	}

	// No machine transport here: motion lines are recorded and served over HTTP
	recorder := motion.NewRecorder()

	c, err := console.New(console.Config{
		Travel:  cfg.Travel(),
		JogFeed: cfg.JogFeed,
	}, store, recorder, log)
	if err != nil {
		store.Close()
		return err
	}

	// Setup HTTP router
	router := api.SetupRouter(c, recorder, log)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		log.WithField("addr", cfg.HTTPAddr).Info("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Handle shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("error shutting down HTTP server")
	}

	if err := c.Close(); err != nil {
		log.WithError(err).Warn("error closing console")
	}

	log.Info("shutdown complete")
	return nil
}
