package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/edulink/mentor-service/config"
	"github.com/edulink/mentor-service/database"
	_ "github.com/edulink/mentor-service/docs" // Swagger docs - auto-generated
	adminctrl "github.com/edulink/mentor-service/internal/controller/admin"
	userctrl "github.com/edulink/mentor-service/internal/controller/user"
	"github.com/edulink/mentor-service/internal/logger"
	"github.com/edulink/mentor-service/internal/middleware"
	"github.com/edulink/mentor-service/internal/model"
	"github.com/edulink/mentor-service/internal/repository"
	"github.com/edulink/mentor-service/internal/seed"
	"github.com/edulink/mentor-service/internal/service"
)

// @title EduLink Mentor Vetting API
// @version 1.0
// @description Mentor application intake, tokenized timed assessments, auto-grading and mentor account provisioning.
// @contact.name API Support
// @contact.email support@edulink.dev
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewApplicationRepository,
			repository.NewTestSessionRepository,
			repository.NewQuestionRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewGradingService,
			service.NewRetryPolicyService,
			service.NewQuestionSelectorService,
			service.NewAccountService,
			service.NewSMTPEmailService,
			service.NewTestSessionService,
			service.NewTestSubmissionService,
			service.NewApplicationService,
		),

		fx.Provide(
			userctrl.NewMentorApplicationController,
			adminctrl.NewAdminApplicationController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedQuestionBank),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	mentorCtrl *userctrl.MentorApplicationController,
	adminCtrl *adminctrl.AdminApplicationController,
) {
	api := router.Group("/api/v1/mentor-applications")
	{
		api.GET("/specializations", mentorCtrl.GetSpecializations)
		api.POST("/apply", mentorCtrl.Apply)
		api.POST("/verify-token", mentorCtrl.VerifyToken)
		api.POST("/start-test", mentorCtrl.StartTest)
		api.POST("/submit-test", mentorCtrl.SubmitTest)
		api.GET("/status/:email", mentorCtrl.GetStatus)

		adminGroup := api.Group("/admin", middleware.RequireAdmin(cfg.Admin.JWTSecret))
		adminGroup.GET("/all", adminCtrl.GetAllApplications)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Mentor vetting API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Application{},
		&model.TestSession{},
		&model.Question{},
		&model.User{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedQuestionBank(db *gorm.DB) error {
	return seed.SeedQuestionBank(db)
}
