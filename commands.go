package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"huile-de-sfax/config"
	"huile-de-sfax/controllers"
	"huile-de-sfax/middleware"
	"huile-de-sfax/routes"
	"huile-de-sfax/store"
	"huile-de-sfax/utils"
)

const (
	flagNamePort              = "port"
	connectTimeout            = 10 * time.Second
	shutdownTimeout           = 10 * time.Second
	readHeaderTimeout         = 5 * time.Second
	loggerCreationErrorPrefix = "logger"
)

func newRootCommand(configurationLoader *viper.Viper) *cobra.Command {
	config.SetDefaults(configurationLoader)

	rootCommand := &cobra.Command{
		Use:          "huiledesfax",
		Short:        "Run the Huile de Sfax catalog API",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return runServer(command.Context(), config.Load(configurationLoader))
		},
	}
	rootCommand.Flags().String(flagNamePort, "", "port for the HTTP server (overrides PORT)")
	_ = configurationLoader.BindPFlag(config.KeyPort, rootCommand.Flags().Lookup(flagNamePort))

	rootCommand.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert the default catalogs into empty product collections",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, _ []string) error {
			return runSeed(command.Context(), config.Load(configurationLoader))
		},
	})

	return rootCommand
}

func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loggerCreationErrorPrefix, err)
	}
	return logger, nil
}

func connectStore(ctx context.Context, cfg config.Config) (*store.MongoDatabase, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	return store.ConnectMongo(connectCtx, cfg.MongoURL, cfg.DatabaseName)
}

func newEmailService(cfg config.Config) *utils.EmailService {
	switch {
	case cfg.PostmarkAPIToken != "":
		return utils.NewPostmarkEmailService(cfg.PostmarkAPIToken, cfg.EmailSender)
	case cfg.SendGridAPIKey != "":
		return utils.NewSendGridEmailService(cfg.SendGridAPIKey, cfg.EmailSender)
	}
	return nil
}

// buildRouter wires the controllers over db. Split out so tests can serve the
// exact production routing over an in-memory store.
func buildRouter(db store.Database, cfg config.Config, notifier controllers.ContactNotifier, logger *zap.Logger) *mux.Router {
	validator := utils.NewValidator()
	tokens := utils.NewTokenSigner(cfg.JWTSecret)

	adminAuth := middleware.NewAdminAuth(middleware.AdminCredentials{
		Username:     cfg.AdminUsername,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	}, tokens, logger)

	router := mux.NewRouter()
	routes.RegisterRoutes(router, routes.Controllers{
		Contact:     controllers.NewContactController(db, validator, logger, notifier, cfg.NotifyEmail),
		OliveOil:    controllers.NewOliveOilController(db, validator, logger),
		Kitchenware: controllers.NewKitchenwareController(db, validator, logger),
		Settings:    controllers.NewSettingsController(db, validator, logger),
		Admin:       controllers.NewAdminController(tokens, controllers.NewSeeder(db, logger), logger),
	}, adminAuth)
	return router
}

func runServer(ctx context.Context, cfg config.Config) error {
	if err := cfg.ValidateServer(); err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := connectStore(ctx, cfg)
	if err != nil {
		logger.Error("open store", zap.Error(err))
		return err
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	// A nil *EmailService must not become a non-nil interface.
	var notifier controllers.ContactNotifier
	if emailService := newEmailService(cfg); emailService != nil {
		notifier = emailService
	}

	router := buildRouter(db, cfg, notifier, logger)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewHandler(router, cfg.CORSOrigins, logger),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", httpServer.Addr))
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server", zap.Error(err))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	return httpServer.Shutdown(shutdownCtx)
}

func runSeed(ctx context.Context, cfg config.Config) error {
	if err := cfg.ValidateStore(); err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	db, err := connectStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close(context.Background())
	}()

	result, err := controllers.NewSeeder(db, logger).SeedIfEmpty(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d olive oil and %d kitchenware products\n", result.OliveOil, result.Kitchenware)
	return nil
}
