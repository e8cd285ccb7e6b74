package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"resumentor/internal/analyzer"
	"resumentor/internal/config"
	"resumentor/internal/handlers"
	"resumentor/internal/middleware"
	"resumentor/internal/repositories"
	"resumentor/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := newLogger(cfg.Server.Env)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	achievementRepo := repositories.NewAchievementRepository(db)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		logger.Fatal("failed to create upload directory", zap.Error(err))
	}

	extractor := services.NewTextExtractor()
	engine := analyzer.New(analyzer.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	tokens := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	achievementService := services.NewAchievementService(
		achievementRepo,
		userRepo,
		resumeRepo,
		interviewRepo,
	)

	worker := services.NewAchievementWorker(
		achievementService,
		logger,
		cfg.Worker.Concurrency,
		cfg.Worker.QueueSize,
	)
	worker.Start()

	authService := services.NewAuthService(userRepo, tokens, worker)
	resumeService := services.NewResumeService(
		resumeRepo,
		storageService,
		extractor,
		engine,
		worker,
		logger,
	)
	interviewService := services.NewInterviewService(
		interviewRepo,
		resumeRepo,
		engine,
		worker,
		logger,
	)
	dashboardService := services.NewDashboardService(resumeRepo, interviewRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	resumeHandler := handlers.NewResumeHandler(resumeService)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, achievementService, authService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resumentor API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	router := &handlers.Router{
		Auth:        authHandler,
		Resume:      resumeHandler,
		Interview:   interviewHandler,
		Dashboard:   dashboardHandler,
		RequireAuth: middleware.RequireAuth(tokens),
	}
	router.Register(app)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("shutting down server")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			logger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
