package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Harshitk-cp/mcdaxml/internal/config"
	"github.com/Harshitk-cp/mcdaxml/internal/domain"
	"github.com/Harshitk-cp/mcdaxml/internal/reader"
	"github.com/Harshitk-cp/mcdaxml/internal/source"
	"github.com/Harshitk-cp/mcdaxml/internal/writer"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const usage = "usage: mcdaxml <main-location> [kind=location ...]"

// mcdaxml reads a problem from the given locations and writes it back to stdout as
// a single normalized document.
func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	logger, err := config.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	args := os.Args[1:]
	if len(args) == 0 {
		logger.Fatal(usage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	locator := &source.Locator{Table: config.DocumentsTable()}
	if needs(args, "pg:") {
		dbURL := config.DatabaseURL()
		if dbURL == "" {
			logger.Fatal("DATABASE_URL is required for pg: locations")
		}
		pool, err := pgxpool.New(ctx, dbURL)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			logger.Fatal("failed to ping database", zap.Error(err))
		}
		logger.Info("connected to database")
		locator.DB = pool
	}
	if needs(args, "s3://") {
		client, err := source.NewS3Client(ctx, source.S3Params{
			Endpoint:  config.S3Endpoint(),
			Region:    config.S3Region(),
			AccessKey: config.S3AccessKey(),
			SecretKey: config.S3SecretKey(),
		})
		if err != nil {
			logger.Fatal("failed to create s3 client", zap.Error(err))
		}
		locator.S3 = client
	}

	r, err := reader.NewFromConfig(logger)
	if err != nil {
		logger.Fatal("invalid reader configuration", zap.Error(err))
	}

	mainSrc, err := locator.Locate(args[0])
	if err != nil {
		logger.Fatal("invalid main location", zap.Error(err))
	}
	r.SetMainSource(mainSrc)

	for _, arg := range args[1:] {
		name, loc, ok := strings.Cut(arg, "=")
		if !ok {
			logger.Fatal(usage, zap.String("arg", arg))
		}
		kind, err := reader.ParseKind(name)
		if err != nil {
			logger.Fatal("invalid source kind", zap.Error(err))
		}
		src, err := locator.Locate(loc)
		if err != nil {
			logger.Fatal("invalid location", zap.String("kind", name), zap.Error(err))
		}
		if err := r.SetSource(kind, src); err != nil {
			logger.Fatal("failed to set source", zap.Error(err))
		}
	}

	problem, err := r.ReadProblem(ctx)
	if err != nil {
		logger.Fatal("failed to read problem", zap.Error(err))
	}
	for _, d := range r.Diagnostics() {
		logger.Warn("malformed input",
			zap.String("kind", domain.KindName(d.Kind)),
			zap.String("message", d.Message),
		)
	}
	logger.Info("problem read",
		zap.Int("alternatives", len(problem.Alternatives)),
		zap.Int("profiles", len(problem.Profiles)),
		zap.Int("criteria", problem.Criteria.Len()),
		zap.Int("diagnostics", len(r.Diagnostics())),
	)

	if err := writer.New(writer.WithLogger(logger)).Write(os.Stdout, problem); err != nil {
		logger.Fatal("failed to write problem", zap.Error(err))
	}
}

func needs(args []string, prefix string) bool {
	for _, a := range args {
		if _, loc, ok := strings.Cut(a, "="); ok {
			a = loc
		}
		if strings.HasPrefix(a, prefix) {
			return true
		}
	}
	return false
}
