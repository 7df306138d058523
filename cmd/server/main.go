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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"irindex/internal/cache"
	"irindex/internal/catalog"
	"irindex/internal/config"
	"irindex/internal/repository"
	"irindex/internal/service"
	"irindex/internal/transport/rest"
)

// @title Insider Risk Index API
// @version 1.0
// @description Self-assessment scoring, benchmarking, and indexing service
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// Validate the question catalog before serving anything; a bad weight
	// table must kill the process, not skew scores at runtime
	cat, err := catalog.Default()
	if err != nil {
		log.Fatal("Invalid question catalog: ", err)
	}
	log.Printf("Catalog loaded: %d questions across %d pillars", cat.Size(), len(cat.Pillars()))

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	assessmentRepo := repository.NewAssessmentRepo(db)
	benchmarkRepo := repository.NewBenchmarkRepo(db)

	// Initialize caches
	benchmarkCache := cache.NewBenchmarkCache(rdb)
	statsCache := cache.NewStatsCache(rdb)
	indexingLimiter := cache.NewRateLimiter(rdb, 10, time.Minute)

	// Initialize services
	benchmarkSvc := service.NewBenchmarkService(benchmarkRepo, benchmarkCache)
	assessmentSvc := service.NewAssessmentService(cat, benchmarkSvc, assessmentRepo, statsCache)
	indexingSvc := service.NewIndexingService(cfg.SiteHost, cfg.IndexNowKey, indexingLimiter)

	if indexingSvc.Enabled() {
		log.Printf("IndexNow notifications enabled for %s", cfg.SiteHost)
	} else {
		log.Println("IndexNow notifications disabled (SITE_HOST/INDEXNOW_KEY not set)")
	}

	// Create router with container
	container := &rest.Container{
		AssessmentService: assessmentSvc,
		BenchmarkService:  benchmarkSvc,
		IndexingService:   indexingSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/questionnaire")
		log.Println("  POST /v1/assessments")
		log.Println("  GET  /v1/assessments")
		log.Println("  GET  /v1/assessments/{id}")
		log.Println("  GET  /v1/assessments/{id}/result")
		log.Println("  GET  /v1/benchmarks")
		log.Println("  GET  /v1/benchmarks/compare")
		log.Println("  GET  /v1/stats")
		log.Println("  POST /v1/indexing/notify")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
