package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizMe/config"
	"github.com/lshigami/QuizMe/database"
	_ "github.com/lshigami/QuizMe/docs" // Swagger docs - auto-generated
	"github.com/lshigami/QuizMe/internal/controller"
	"github.com/lshigami/QuizMe/internal/logger"
	"github.com/lshigami/QuizMe/internal/model"
	"github.com/lshigami/QuizMe/internal/repository"
	"github.com/lshigami/QuizMe/internal/repository/memory"
	"github.com/lshigami/QuizMe/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizMe API
// @version 1.0
// @description Quiz authoring and quiz taking API with shareable codes, immediate scoring and PDF result export.
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB (nil for the memory driver)
			NewGinEngine,
			NewRepositories,
		),

		fx.Provide(
			service.NewScoringService,
			service.NewQuizService,
			service.NewParticipationService,
			service.NewReportService,
			service.NewPDFService,
		),

		fx.Provide(controller.NewController),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
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
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewRepositories selects the storage backend. The memory store is the
// default; postgres is used when DATABASE_DRIVER=postgres.
func NewRepositories(cfg *config.Config, db *gorm.DB) (
	repository.QuizRepository,
	repository.QuestionRepository,
	repository.ParticipationRepository,
	repository.ResponseRepository,
) {
	if cfg.Database.Driver == "postgres" && db != nil {
		return repository.NewQuizRepository(db),
			repository.NewQuestionRepository(db),
			repository.NewParticipationRepository(db),
			repository.NewResponseRepository(db)
	}

	questions := memory.NewQuestionRepository()
	quizzes := memory.NewQuizRepository(questions)
	participations := memory.NewParticipationRepository(quizzes)
	responses := memory.NewResponseRepository()
	return quizzes, questions, participations, responses
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	ctrl *controller.Controller,
) {
	ctrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizMe server starting on port %s", cfg.Server.Port)
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

func AutoMigrateDB(cfg *config.Config, db *gorm.DB) error {
	if cfg.Database.Driver != "postgres" || db == nil {
		return nil
	}
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Participation{},
		&model.Response{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
