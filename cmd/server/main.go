package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"surveyforge/internal/cache"
	"surveyforge/internal/config"
	"surveyforge/internal/repository"
	"surveyforge/internal/service"
	"surveyforge/internal/transport/rest"
	"surveyforge/internal/transport/rest/handler"
)

func main() {
	log.Println("starting surveyforge server...")

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var reportCache cache.ReportCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatalf("failed to connect to redis at %s: %v", cfg.RedisAddr, err)
		}
		cancel()
		log.Printf("connected to redis at %s", cfg.RedisAddr)
		reportCache = cache.NewReportCache(rdb, cfg.ReportTTL)
	} else {
		log.Println("redis not configured, report caching disabled")
	}

	surveyRepo := repository.NewSurveyRepo()
	templateRepo := repository.NewTemplateRepo(repository.BuiltinTemplates())

	var mailer *service.ReportMailer
	if cfg.MailerBaseURL != "" {
		mailer = service.NewReportMailer(cfg.MailerBaseURL, cfg.MailerToken)
	} else {
		log.Println("mailer not configured, report email disabled")
	}

	surveyService := service.NewSurveyService(surveyRepo, templateRepo, cfg.PublicBaseURL)
	responseService := service.NewResponseService(surveyRepo, reportCache)
	templateService := service.NewTemplateService(templateRepo)
	reportService := service.NewReportService(surveyRepo, reportCache, mailer, cfg.PublicBaseURL)

	router := rest.NewRouter(rest.Container{
		Surveys:    handler.NewSurveyHandler(surveyService),
		Responses:  handler.NewResponseHandler(responseService),
		Templates:  handler.NewTemplateHandler(templateService),
		Reports:    handler.NewReportHandler(reportService),
		CORSOrigin: cfg.CORSOrigin,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("listening on :%s", cfg.HTTPPort)
		log.Println("endpoints:")
		log.Println("  GET    /health")
		log.Println("  POST   /v1/surveys")
		log.Println("  GET    /v1/surveys")
		log.Println("  GET    /v1/surveys/{surveyId}")
		log.Println("  POST   /v1/surveys/{surveyId}/publish")
		log.Println("  POST   /v1/surveys/{surveyId}/responses")
		log.Println("  GET    /v1/templates")
		log.Println("  GET    /v1/reports/{surveyId}")
		log.Println("  GET    /v1/reports/{surveyId}/export")
		log.Println("  POST   /v1/reports/{surveyId}/email")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}
