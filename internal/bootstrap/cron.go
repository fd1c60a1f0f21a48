package bootstrap

import (
	"context"
	"time"

	"weather-info/internal/cron"
	"weather-info/internal/kafka"
	"weather-info/internal/repositories"
)

func StartCronJobs(ctx context.Context, popularRepo *repositories.PopularRepository, kafkaBundle *kafka.KafkaBundle) {
	refreshPublisher := cron.NewRefreshPublisher(popularRepo, kafkaBundle.RefreshProducer, 20, 5*time.Minute)
	go refreshPublisher.Start(ctx)
}
