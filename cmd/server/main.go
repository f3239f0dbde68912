package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"loanflow.backend/internal/config"
	"loanflow.backend/internal/infrastructure/export"
	"loanflow.backend/internal/infrastructure/jobs"
	"loanflow.backend/internal/infrastructure/letters"
	"loanflow.backend/internal/infrastructure/notifications"
	"loanflow.backend/internal/infrastructure/repositories"
	"loanflow.backend/internal/infrastructure/storage"
	"loanflow.backend/internal/interfaces/http/handlers"
	"loanflow.backend/internal/interfaces/http/middleware"
	"loanflow.backend/internal/usecases"
	"loanflow.backend/pkg/jwt"
	"loanflow.backend/pkg/logger"
	"loanflow.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	submissionRepo := repositories.NewSubmissionRepository(db)
	disbursementRepo := repositories.NewDisbursementRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize document storage
	docStorage, err := storage.NewLocalStorage(cfg.Storage.Dir, cfg.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize document storage: %w", err)
	}

	// Initialize outbound collaborators
	notifier := notifications.NewEmailNotifier(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.OpsInbox,
		cfg.Verification.DualReviewThreshold,
	)
	lettersClient := letters.NewClient(cfg.Letters.BaseURL)
	exportSink := export.NewSpreadsheetSink()

	// Initialize usecases
	checklist := usecases.NewChecklistValidator()
	engine := usecases.NewAmortizationEngine()
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService)
	documentUsecase := usecases.NewDocumentUsecase(documentRepo, submissionRepo, docStorage, checklist)
	disbursementUsecase := usecases.NewDisbursementUsecase(disbursementRepo, uow, notifier, notifier)
	exportUsecase := usecases.NewExportUsecase(engine, disbursementUsecase, exportSink)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	documentHandler := handlers.NewDocumentHandler(documentUsecase)
	disbursementHandler := handlers.NewDisbursementHandler(disbursementUsecase)
	amortizationHandler := handlers.NewAmortizationHandler(engine)
	exportHandler := handlers.NewExportHandler(exportUsecase)
	letterHandler := handlers.NewLetterHandler(lettersClient)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reminderJob := jobs.NewAppointmentReminderJob(disbursementRepo, notifier)
	go reminderJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	r.Static("/files", docStorage.Dir())

	registerAPIV1Routes(r, routeDeps{
		authHandler:         authHandler,
		documentHandler:     documentHandler,
		disbursementHandler: disbursementHandler,
		amortizationHandler: amortizationHandler,
		exportHandler:       exportHandler,
		letterHandler:       letterHandler,
		authMiddleware:      authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")
		reminderJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("LoanFlow Backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
