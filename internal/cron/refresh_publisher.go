package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"weather-info/internal/kafka"
	"weather-info/internal/models"
	"weather-info/internal/repositories"
)

// RefreshPublisher periodically publishes the most requested lookups as
// refresh commands, so their cache entries stay warm between user requests.
type RefreshPublisher struct {
	popularRepo *repositories.PopularRepository
	producer    *kafka.Producer
	topN        int64
	interval    time.Duration
}

func NewRefreshPublisher(
	popularRepo *repositories.PopularRepository,
	producer *kafka.Producer,
	topN int64,
	interval time.Duration,
) *RefreshPublisher {
	return &RefreshPublisher{
		popularRepo: popularRepo,
		producer:    producer,
		topN:        topN,
		interval:    interval,
	}
}

func (p *RefreshPublisher) Start(ctx context.Context) {
	log.Printf("RefreshPublisher started (interval: %v, top: %d)", p.interval, p.topN)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.RunOnce(ctx); err != nil {
				log.Printf("RefreshPublisher iteration failed: %v", err)
			}

		case <-ctx.Done():
			log.Println("RefreshPublisher stopped")
			return
		}
	}
}

func (p *RefreshPublisher) RunOnce(ctx context.Context) error {
	top, err := p.popularRepo.GetTopRequests(ctx, p.topN)
	if err != nil {
		return err
	}

	if len(top) == 0 {
		log.Println("No popular requests found")
		return nil
	}

	log.Printf("Publishing %d refresh commands to Kafka...", len(top))

	for _, cmd := range top {
		value, err := json.Marshal(cmd)
		if err != nil {
			log.Printf("Marshal error: %v", err)
			continue
		}

		key := generateKey(cmd)
		if err := p.producer.Publish(key, value); err != nil {
			log.Printf("Kafka publish failed (key=%s): %v", string(key), err)
		} else {
			log.Printf("Published: %s", string(key))
		}
	}

	return nil
}

func generateKey(cmd models.RefreshCommand) []byte {
	switch cmd.Type {
	case "weather":
		return []byte("weather:" + cmd.Args["lat"] + ":" + cmd.Args["lng"])
	case "geocode":
		return []byte("geocode:" + cmd.Args["q"])
	default:
		return []byte("unknown")
	}
}
