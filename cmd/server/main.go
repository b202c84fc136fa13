package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voicehire/internal/config"
	"voicehire/internal/feedback"
	"voicehire/internal/handlers"
	"voicehire/internal/interview"
	"voicehire/internal/jobs"
	"voicehire/internal/llm"
	_ "voicehire/internal/llm/gemini"
	"voicehire/internal/metrics"
	"voicehire/internal/prompts"
	mongorepo "voicehire/internal/repositories/mongo"
	redisrepo "voicehire/internal/repositories/redis"
	"voicehire/internal/routers"
	"voicehire/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerRoutes(router *chi.Mux, cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	templateHandler *handlers.TemplateHandler,
	interviewHandler *handlers.InterviewHandler,
) {
	routers.HealthRoutes(router, healthHandler)
	routers.AuthRoutes(router, authHandler)
	routers.TemplateRoutes(router, templateHandler, cfg.JWTSecret)
	routers.InterviewRoutes(router, interviewHandler, cfg.JWTSecret)
	router.Handle("/metrics", metrics.Handler())
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider))

	// prompt manager
	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	// AI provider based on configuration
	aiProvider, err := llm.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}

	// The configured provider must also cover both speech directions.
	transcriber, ok := aiProvider.(speech.Transcriber)
	if !ok {
		logger.Fatal("AI provider does not support speech recognition",
			zap.String("provider", aiProvider.GetProviderName()))
	}
	synthesizer, ok := aiProvider.(speech.Synthesizer)
	if !ok {
		logger.Fatal("AI provider does not support speech synthesis",
			zap.String("provider", aiProvider.GetProviderName()))
	}

	ctx := context.Background()

	mongoClient, err := mongorepo.NewClient(ctx)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(context.Background())

	templateRepo, err := mongorepo.NewTemplateRepo(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialize template repository", zap.Error(err))
	}
	sessionRepo, err := mongorepo.NewSessionRepo(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialize session repository", zap.Error(err))
	}
	userRepo, err := mongorepo.NewUserRepo(mongoClient)
	if err != nil {
		logger.Fatal("Failed to initialize user repository", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	tokenRepo := redisrepo.NewTokenRepo(rdb, cfg.RefreshTokenTTL)

	generator := feedback.NewGenerator(aiProvider, promptManager, logger)
	interviewService := interview.NewService(templateRepo, sessionRepo, transcriber, generator, logger)

	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(userRepo, tokenRepo, cfg.JWTSecret, logger)
	templateHandler := handlers.NewTemplateHandler(templateRepo, aiProvider, promptManager, logger)
	interviewHandler := handlers.NewInterviewHandler(interviewService, synthesizer, logger)

	reaperJob := jobs.NewInviteReaperJob(sessionRepo, &jobs.ReaperConfig{
		Schedule: cfg.ReaperSchedule,
		Enabled:  cfg.ReaperEnabled,
		MaxAge:   cfg.ReaperMaxAge,
	}, logger)
	if err := reaperJob.Start(); err != nil {
		logger.Error("Failed to start invite reaper job", zap.Error(err))
	}

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware())

	registerRoutes(router, cfg, healthHandler, authHandler, templateHandler, interviewHandler)

	serverAddr := ":" + cfg.Port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("VoiceHire service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("VoiceHire service shutting down...")

	reaperJob.Stop()

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("VoiceHire service exited")
}
