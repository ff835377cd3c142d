package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"localgigs_backend/database"
	"localgigs_backend/internal/config"
	"localgigs_backend/internal/email"
	"localgigs_backend/internal/handlers"
	"localgigs_backend/internal/logger"
	"localgigs_backend/internal/middleware"
	"localgigs_backend/internal/repositories"
	chatrepo "localgigs_backend/internal/repositories/chat"
	"localgigs_backend/internal/routes"
	"localgigs_backend/internal/services"
	"localgigs_backend/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database connected and migrated")

	router := SetupRouter(cfg, db)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers and the websocket
// manager into a gin engine. Split out from Run so tests can build a
// full router against their own database handle.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	container := initializeServices(cfg, db)
	appHandlers := handlers.NewAppHandlers(container)

	wsManager := ws.NewManager(container.ChatService)
	go wsManager.Run()
	container.ChatService.SetPublisher(wsManager)
	wsHandler := ws.NewHandler(wsManager)

	router := initializeGinRouter(cfg)
	routes.RegisterRoutes(router, appHandlers, wsHandler)
	return router
}

func initializeServices(cfg *config.Config, db *gorm.DB) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicantRepo := repositories.NewApplicantRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)
	conversationRepo := chatrepo.NewConversationRepository(db)
	messageRepo := chatrepo.NewMessageRepository(db)

	emailProvider := buildEmailProvider(cfg)

	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo, userService, emailProvider)
	jobService := services.NewJobService(jobRepo, applicantRepo, assignmentRepo, userRepo)
	chatService := services.NewChatService(conversationRepo, messageRepo, userRepo)
	searchService := services.NewSearchService(jobRepo, userRepo)

	return &services.ServiceContainer{
		AuthService:   authService,
		UserService:   userService,
		JobService:    jobService,
		ChatService:   chatService,
		SearchService: searchService,
		EmailService:  emailProvider,
	}
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Info("Email sending disabled, using noop provider")
		return &email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(email.Config{
		SMTPHost:  cfg.Email.SMTPHost,
		SMTPPort:  cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("SMTP provider unavailable, falling back to noop", "error", err)
		return &email.NoopProvider{}
	}
	return provider
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	return router
}
