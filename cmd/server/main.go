package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"writeit-server/internal/config"
	"writeit-server/internal/handler"
	"writeit-server/internal/middleware"
	"writeit-server/internal/repository"
	"writeit-server/internal/service"

	_ "github.com/go-kivik/kivik/v4/couchdb"

	"github.com/go-kivik/kivik/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	connectAttempts = 5
	connectBackoff  = 2 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger := newLogger(cfg)

	client, err := connectStore(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize store")
	}

	userRepo := repository.NewUserRepository(client, cfg.Database.Name)
	noteRepo := repository.NewNoteRepository(client, cfg.Database.Name)

	accountService := service.NewAccountService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshTokenExpiration)
	noteService := service.NewNoteService(noteRepo, userRepo)

	authHandler := handler.NewAuthHandler(accountService)
	noteHandler := handler.NewNoteHandler(noteService)

	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/register", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/refresh", authHandler.Refresh).Methods("POST", "OPTIONS")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	protected.HandleFunc("/addNote", noteHandler.Add).Methods("POST", "OPTIONS")
	protected.HandleFunc("/deleteNote/{userId}/{noteId}", noteHandler.Delete).Methods("POST", "OPTIONS")
	protected.HandleFunc("/getUserNotes/{userId}", noteHandler.List).Methods("GET", "OPTIONS")

	r.HandleFunc("/health", healthHandler).Methods("GET")
	r.HandleFunc("/", rootHandler).Methods("GET")

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Str("env", cfg.Server.Env).Msg("Starting write-it server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server stopped gracefully")
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.Server.Env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// connectStore opens the CouchDB connection and bootstraps the database and
// its indexes, retrying while the store comes up.
func connectStore(cfg *config.Config, logger zerolog.Logger) (*kivik.Client, error) {
	couchURL := fmt.Sprintf("http://%s:%s@%s:%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
	)

	client, err := kivik.New("couch", couchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create CouchDB client: %w", err)
	}

	ctx := context.Background()

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		lastErr = repository.EnsureDatabase(ctx, client, cfg.Database.Name)
		if lastErr == nil {
			break
		}
		logger.Warn().Err(lastErr).Int("attempt", attempt).Msg("Store not ready, retrying")
		time.Sleep(connectBackoff)
	}
	if lastErr != nil {
		return nil, lastErr
	}

	if err := repository.EnsureIndexes(ctx, client, cfg.Database.Name); err != nil {
		return nil, err
	}

	logger.Info().
		Str("host", cfg.Database.Host).
		Str("port", cfg.Database.Port).
		Str("db", cfg.Database.Name).
		Msg("Connected to CouchDB")

	return client, nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"writeit-server"}`))
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"write-it API","endpoints":{"/api/register":"POST","/api/login":"POST","/api/addNote":"POST (Bearer)","/api/deleteNote/{userId}/{noteId}":"POST (Bearer)","/api/getUserNotes/{userId}":"GET (Bearer)"}}`))
}
