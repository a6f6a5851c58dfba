package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"portfolio/internal/api"
	"portfolio/internal/api/auth"
	"portfolio/internal/config"
	"portfolio/internal/storage"
)

var rootCmdPersistentFlags struct {
	ConfigFile string
	LogLevel   string
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootCmdPersistentFlags.ConfigFile, "config", "c", "", "Path to config file (default: search for config.yml in current dir, ~/.portfolio, /etc/portfolio)")
	rootCmd.PersistentFlags().StringVar(&rootCmdPersistentFlags.LogLevel, "log-level", "", "Log level (debug, info, warn, error) - overrides config file setting")
}

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio is the API server behind a personal portfolio site",
	Long:  `Portfolio serves the public content of a personal portfolio site and an admin API for editing it, backed by either an in-memory store or SurrealDB.`,
	Example: `portfolio --config config.yml
  portfolio -c /path/to/config.yml --log-level debug`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Run: root,
}

func root(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(rootCmdPersistentFlags.ConfigFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	setLogLevel(cfg, rootCmdPersistentFlags.LogLevel)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer store.Close()

	if cfg.Admin != nil && cfg.Admin.Password != "" {
		if err := auth.Bootstrap(ctx, store, cfg.Admin.Username, cfg.Admin.Password); err != nil {
			log.Fatalf("failed to provision admin user: %v", err)
		}
	} else {
		log.Warn("admin.password not set, skipping admin user bootstrap")
	}

	server, err := api.New(cfg, store, log.GetLevel() == log.DebugLevel)
	if err != nil {
		log.Fatalf("failed to create API server: %v", err)
	}

	go func() {
		log.Info("starting API server", "listen", cfg.Listen)
		if err := server.Run(); err != nil {
			log.Error("API server error", "error", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	log.Info("portfolio started successfully")
	<-c
	log.Info("shutting down gracefully...")

	cancel()
	time.Sleep(2 * time.Second)
}

func openStorage(cfg *config.Config) (storage.Storage, error) {
	backend := storage.BackendMemory
	surreal := storage.SurrealConfig{}
	if cfg.Storage != nil {
		backend = cfg.Storage.Backend
		if cfg.Storage.SurrealDB != nil {
			surreal = storage.SurrealConfig{
				URL:       cfg.Storage.SurrealDB.URL,
				Namespace: cfg.Storage.SurrealDB.Namespace,
				Database:  cfg.Storage.SurrealDB.Database,
				Username:  cfg.Storage.SurrealDB.Username,
				Password:  cfg.Storage.SurrealDB.Password,
			}
		}
	}
	return storage.Open(backend, surreal)
}

func setLogLevel(cfg *config.Config, override string) {
	level := cfg.LogLevel
	if override != "" {
		level = override
	}
	switch level {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info", "":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.Warnf("unknown log level %s, defaulting to info", level)
		log.SetLevel(log.InfoLevel)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
