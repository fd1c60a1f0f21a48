package main

import (
	"context"
	"log"
	"net/http"

	"weather-info/internal/bootstrap"
	"weather-info/internal/config"
	"weather-info/internal/db"
	"weather-info/internal/here"
	"weather-info/internal/kafka"
	"weather-info/internal/workers"
)

func main() {
	cfg := config.Load()

	if cfg.HereAPIKey == "" {
		log.Fatal("HERE_API_KEY not set")
	}

	// ------------------------
	// Redis
	// ------------------------
	redisClient := db.ConnectRedis(cfg)
	defer redisClient.Close()

	// ------------------------
	// Kafka
	// ------------------------
	kafkaBundle := kafka.InitKafka(cfg.WeatherTopic, cfg.GeocodeTopic, cfg.RefreshTopic)

	// ------------------------
	// HERE client (shared transport, owned here)
	// ------------------------
	hereClient := here.NewClient(cfg.HereAPIKey, nil)

	// ------------------------
	// Workers: kafka -> redis syncers + refresh workers
	// ------------------------
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workers.StartAllWorkers(ctx, redisClient, kafkaBundle, hereClient, cfg.DefaultLanguage)

	// ------------------------
	// Handlers + Router
	// ------------------------
	bundle := bootstrap.InitBootstrap(cfg, redisClient, kafkaBundle, hereClient)
	router := bootstrap.InitRoutes(bundle.Handlers, redisClient)

	// ------------------------
	// Cron: keep popular lookups warm
	// ------------------------
	bootstrap.StartCronJobs(ctx, bundle.PopularRepo, kafkaBundle)

	// ------------------------
	// Server
	// ------------------------
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	bootstrap.GracefulShutdown(srv, redisClient, kafkaBundle)

	log.Printf("Server started on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("ListenAndServe: %v", err)
	}
}
