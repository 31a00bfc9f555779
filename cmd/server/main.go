package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/leadsync/internal/models"
	"github.com/iudanet/leadsync/internal/server/handlers"
	"github.com/iudanet/leadsync/internal/server/jwt"
	"github.com/iudanet/leadsync/internal/server/middleware"
	serverStorage "github.com/iudanet/leadsync/internal/server/storage"
	"github.com/iudanet/leadsync/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "leadsync.db", "Path to SQLite database")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (or LEADSYNC_JWT_SECRET)")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "Access token lifetime")
	createUser := flag.String("create-user", "", "Create a user (username:password) and exit")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logLevel := slog.LevelInfo
	if *debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("LEADSYNC_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("jwt secret is required, pass -jwt-secret or set LEADSYNC_JWT_SECRET")
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := sqlite.New(ctx, *dbPath)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	if *createUser != "" {
		if err := runCreateUser(ctx, store, *createUser); err != nil {
			logger.Error("failed to create user", "error", err)
			os.Exit(1)
		}
		fmt.Println("User created.")
		return
	}

	jwtConfig := jwt.Config{
		Secret:   []byte(secret),
		TokenTTL: *tokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	rpcHandler := handlers.NewRPCHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authMw := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /auth/login",
		middleware.RateLimitMiddleware(10, time.Minute, logger)(
			http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /exec", authMw(http.HandlerFunc(rpcHandler.Exec)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/health"})(mux))

	server := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", "addr", *addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-shutdownCtx.Done()
	logger.Info("shutting down")

	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(timeoutCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// runCreateUser hashes the password and inserts the account
func runCreateUser(ctx context.Context, store serverStorage.UserStorage, spec string) error {
	username, password, ok := strings.Cut(spec, ":")
	if !ok || username == "" || password == "" {
		return fmt.Errorf("expected username:password, got %q", spec)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	return store.CreateUser(ctx, user)
}

func printVersion() {
	fmt.Printf("LeadSync Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
