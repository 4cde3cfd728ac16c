package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcraft/config"
	"github.com/lshigami/examcraft/database"
	_ "github.com/lshigami/examcraft/docs"
	"github.com/lshigami/examcraft/internal/cache"
	examctrl "github.com/lshigami/examcraft/internal/controller/exam"
	mcqctrl "github.com/lshigami/examcraft/internal/controller/mcq"
	quranctrl "github.com/lshigami/examcraft/internal/controller/quran"
	"github.com/lshigami/examcraft/internal/logger"
	"github.com/lshigami/examcraft/internal/prompt"
	"github.com/lshigami/examcraft/internal/repository"
	"github.com/lshigami/examcraft/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Examcraft API
// @version 1.0
// @description Exam content management and LLM-generated multiple-choice options.
// @BasePath /
// @schemes http https
func main() {
	logger.Init("info", true)

	app := fx.New(appOptions())

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func appOptions() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			cache.NewExamCache,
			prompt.NewTemplates,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewExamRepository,
		),

		fx.Provide(
			service.NewGeminiGenerator,
			service.NewExamService,
			service.NewMCQService,
			service.NewQuranService,
		),

		fx.Provide(
			examctrl.NewExamController,
			mcqctrl.NewMCQController,
			quranctrl.NewQuranController,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

// ConfigureLogger applies LOG_LEVEL and LOG_PRETTY once the config is loaded.
func ConfigureLogger(cfg *config.Config) {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		event := log.Info()
		if param.StatusCode >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	examCtrl *examctrl.ExamController,
	mcqCtrl *mcqctrl.MCQController,
	quranCtrl *quranctrl.QuranController,
) {
	examCtrl.RegisterRoutes(router)
	mcqCtrl.RegisterRoutes(router)
	quranCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Examcraft server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(cfg *config.Config, db *gorm.DB) error {
	if !cfg.AutoMigrate {
		log.Info().Msg("AUTO_MIGRATE disabled, skipping schema migration")
		return nil
	}
	return database.AutoMigrate(db)
}
