package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/leadsync/internal/cache"
	httpClient "github.com/iudanet/leadsync/internal/client/api"
	"github.com/iudanet/leadsync/internal/client/auth"
	"github.com/iudanet/leadsync/internal/client/cli"
	"github.com/iudanet/leadsync/internal/client/iocli"
	"github.com/iudanet/leadsync/internal/client/storage"
	"github.com/iudanet/leadsync/internal/client/storage/boltdb"
	"github.com/iudanet/leadsync/internal/leads"
	"github.com/iudanet/leadsync/internal/netmon"
	"github.com/iudanet/leadsync/internal/queue"
	"github.com/iudanet/leadsync/internal/syncer"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "leadsync-client.db", "Path to local database")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	// keep structured logs off the command output unless asked for
	logLevel := slog.LevelWarn
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := httpClient.NewClient(*serverURL)
	if token, err := boltStorage.GetToken(ctx); err == nil {
		apiClient.SetToken(token)
	} else if !errors.Is(err, storage.ErrTokenNotFound) {
		logger.Warn("failed to load stored token", "error", err)
	}

	monitor := netmon.New(netmon.DefaultConfig(),
		netmon.NewHTTPProber(*serverURL+"/health"), logger, false)
	monitor.CheckNow(ctx)

	cacheStore := cache.New(ctx, cache.DefaultConfig(), boltStorage, logger)
	requestQueue := queue.New(ctx, queue.DefaultConfig(), boltStorage, logger)

	syncService, err := syncer.NewService(ctx, apiClient, boltStorage, boltStorage, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize sync service: %v\n", err)
		os.Exit(1)
	}

	authService := auth.NewService(apiClient, boltStorage)
	leadService := leads.NewService(apiClient, cacheStore, requestQueue, monitor, syncService, logger)
	defer leadService.Close()

	c := cli.New(iocli.NewStdio(), authService, leadService, syncService, monitor)
	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("LeadSync Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
