package kafka

import (
	"context"
	"log"

	"github.com/twmb/franz-go/pkg/kgo"
)

type Consumer struct {
	client *kgo.Client
	topic  string
}

func NewConsumer(topic, group string) *Consumer {
	brokers := []string{getEnv("KAFKA_BROKERS", "localhost:9092")}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumerGroup(group),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	if err != nil {
		log.Fatalf("Failed to create Kafka consumer: %v", err)
	}

	log.Printf("Kafka consumer initialized for topic: %s, group: %s", topic, group)
	return &Consumer{client: client, topic: topic}
}

func (c *Consumer) Start(handler func(key, value []byte)) {
	go c.run(handler)
}

func (c *Consumer) run(handler func(key, value []byte)) {
	for {
		fetches := c.client.PollFetches(context.Background())
		if fetches.IsClientClosed() {
			log.Printf("Kafka consumer stopped for topic: %s", c.topic)
			return
		}
		if errs := fetches.Errors(); len(errs) > 0 {
			log.Printf("Kafka fetch errors: %v", errs)
		}
		iter := fetches.RecordIter()
		for !iter.Done() {
			record := iter.Next()
			handler(record.Key, record.Value)
		}
	}
}

func (c *Consumer) Stop() {
	c.client.Close()
}
