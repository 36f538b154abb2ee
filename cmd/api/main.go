package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/tkaykim/totalmanagement-sub003/internal/adapter/db"
	httpadapter "github.com/tkaykim/totalmanagement-sub003/internal/adapter/http"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/handlers"
	httpmiddleware "github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/middleware"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/validation"
	"github.com/tkaykim/totalmanagement-sub003/internal/app/service"
	"github.com/tkaykim/totalmanagement-sub003/internal/config"
	"github.com/tkaykim/totalmanagement-sub003/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageKo, translator.LanguageFr},
	})
	if err := validation.RegisterBindingValidators(); err != nil {
		logger.Fatal("failed to register validators", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	templateRepository := dbadapter.NewTemplateRepository(db)
	taskRepository := dbadapter.NewProjectTaskRepository(db)
	activityRepository := dbadapter.NewActivityRepository(db)

	templateService := service.NewTemplateService(templateRepository, taskRepository, activityRepository)
	projectTaskService := service.NewProjectTaskService(taskRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}

	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(db, cfg.AppName, cfg.AppVersion),
		handlers.NewTemplateHandler(templateService),
		handlers.NewProjectTaskHandler(projectTaskService),
	)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("app", cfg.AppName),
		zap.String("version", cfg.AppVersion),
		zap.String("db_driver", cfg.DbDriver),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
