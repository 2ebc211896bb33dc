package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/handlewall/backend/admin"
	admddb "github.com/handlewall/backend/admin/ddbrepo"
	admpg "github.com/handlewall/backend/admin/pgrepo"
	"github.com/handlewall/backend/conf"
	"github.com/handlewall/backend/filestore"
	apihttp "github.com/handlewall/backend/http"
	"github.com/handlewall/backend/migrations"
	"github.com/handlewall/backend/s3bucket"
	"github.com/handlewall/backend/subm"
	submddb "github.com/handlewall/backend/subm/ddbrepo"
	submpg "github.com/handlewall/backend/subm/pgrepo"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := conf.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := conf.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.SetDefault(newLogger(cfg))

	ctx := context.Background()

	adminRepo, submRepo, closeStore, err := newRepos(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up %s store: %w", cfg.StoreBackend, err)
	}
	defer closeStore()

	fileBackend, err := newFileBackend(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up %s file area: %w", cfg.FileBackend, err)
	}

	adminSrvc := admin.NewAdminSrvc(adminRepo, cfg.JwtKey)
	submSrvc := subm.NewSubmSrvc(submRepo)

	handler := apihttp.NewHttpServer(apihttp.Config{
		AllowedOrigins: cfg.AllowedOrigins,
		LogLevel:       cfg.LogLevel,
		Env:            cfg.Env,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, adminSrvc, submSrvc, filestore.New(fileBackend))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			"addr", srv.Addr,
			"store_backend", cfg.StoreBackend,
			"file_backend", cfg.FileBackend)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		slog.Info("shutdown complete")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
	}
	return nil
}

func newLogger(cfg *conf.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.Env == "dev" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func newRepos(ctx context.Context, cfg *conf.Config) (admin.AdminRepo, subm.SubmRepo, func(), error) {
	switch cfg.StoreBackend {
	case conf.StoreBackendPostgres:
		if err := migrations.Up(cfg.PostgresConnStr); err != nil {
			return nil, nil, nil, err
		}
		pool, err := pgxpool.New(ctx, cfg.PostgresConnStr)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to create connection pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, nil, fmt.Errorf("failed to ping postgres: %w", err)
		}
		return admpg.NewPgAdminRepo(pool), submpg.NewPgSubmRepo(pool), pool.Close, nil
	case conf.StoreBackendDynamoDb:
		db, err := conf.NewDynamoDb(ctx, cfg.AwsRegion, cfg.DynamoDbEndpoint)
		if err != nil {
			return nil, nil, nil, err
		}
		adminRepo := admddb.NewDynamoDbAdminTable(db, cfg.DynamoDbTablePrefix+"Admins")
		submRepo := submddb.NewDynamoDbSubmTable(db, cfg.DynamoDbTablePrefix+"Submissions")
		return adminRepo, submRepo, func() {}, nil
	default:
		slog.Warn("using in-memory store, data is lost on restart")
		return admin.NewInMemRepo(), subm.NewInMemRepo(), func() {}, nil
	}
}

func newFileBackend(ctx context.Context, cfg *conf.Config) (filestore.Backend, error) {
	if cfg.FileBackend == conf.FileBackendS3 {
		awsCfg, err := conf.LoadAwsConfig(ctx, cfg.AwsRegion)
		if err != nil {
			return nil, err
		}
		return s3bucket.NewS3Bucket(awsCfg, cfg.S3Bucket, filestore.RefPrefix), nil
	}
	return filestore.NewLocalDir(cfg.UploadDir)
}
