package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"visitordesk/config"
	_ "visitordesk/docs"
	"visitordesk/internal/adapters/auth"
	"visitordesk/internal/adapters/email"
	"visitordesk/internal/blobstore"
	deskhttp "visitordesk/internal/delivery/http"
	"visitordesk/internal/delivery/http/controllers"
	"visitordesk/internal/delivery/http/middleware"
	"visitordesk/internal/repository/blob"
	"visitordesk/internal/services"
)

// @title VisitorDesk API
// @version 1.0
// @description Front-desk visitor management: bookings, kiosk check-in/out, audit log and saved directories.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	store, err := newStore(cfg)
	if err != nil {
		logger.Error("open store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	visitorRepo := blob.NewVisitorRepository(ctx, store, logger)
	logRepo := blob.NewLogRepository(ctx, store, logger)
	hostRepo := blob.NewSavedHostRepository(ctx, store, logger)
	savedVisitorRepo := blob.NewSavedVisitorRepository(ctx, store, logger)

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.MailProvider,
		FromAddress: cfg.MailFromAddress,
		FromName:    cfg.MailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)

	visitorSvc := services.NewVisitorService(visitorRepo, logRepo, hostRepo, savedVisitorRepo, mailer, cfg.NotifyDomain, logger, nil, nil)
	directorySvc := services.NewDirectoryService(hostRepo, savedVisitorRepo)
	registrySvc := services.NewRegistryService(hostRepo, savedVisitorRepo, nil)

	pins, err := auth.NewPinVerifier(cfg.AdminPIN)
	if err != nil {
		logger.Error("init pin verifier", "err", err)
		os.Exit(1)
	}
	issuer, verifier := auth.NewJWTTokens(cfg.JWTSecret)

	authController := controllers.NewAuthController(logger, pins, issuer, cfg.TokenExpiry)
	kioskController := controllers.NewKioskController(logger, visitorSvc)
	visitorController := controllers.NewVisitorController(logger, visitorSvc)
	registryController := controllers.NewRegistryController(logger, registrySvc, directorySvc)

	mux := deskhttp.NewRouter(authController, kioskController, visitorController, registryController, verifier)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	addr := ":" + cfg.Port
	logger.Info("starting server", "addr", addr, "env", cfg.Environment, "store", cfg.StoreDriver)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func newStore(cfg *config.Config) (blobstore.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return blobstore.NewMemoryStore(), nil
	case "sqlite":
		return blobstore.OpenSQLite(cfg.SQLitePath)
	case "postgres":
		return blobstore.OpenPostgres(cfg.DBUrl)
	case "s3":
		return blobstore.NewS3Store(blobstore.S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Prefix:          cfg.S3Prefix,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
	default:
		return blobstore.NewFSStore(cfg.DataDir)
	}
}
