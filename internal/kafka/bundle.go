package kafka

type KafkaBundle struct {
	WeatherProducer *Producer
	GeocodeProducer *Producer
	RefreshProducer *Producer

	WeatherConsumer *Consumer
	GeocodeConsumer *Consumer
	RefreshConsumer *Consumer
}

// InitKafka builds producers and consumers for the given topics. Topic names
// come from config so there is a single place they are resolved.
func InitKafka(weatherTopic, geocodeTopic, refreshTopic string) *KafkaBundle {
	return &KafkaBundle{
		WeatherProducer: NewProducer(weatherTopic),
		GeocodeProducer: NewProducer(geocodeTopic),
		RefreshProducer: NewProducer(refreshTopic),

		WeatherConsumer: NewConsumer(weatherTopic, "weather-redis-syncer"),
		GeocodeConsumer: NewConsumer(geocodeTopic, "geocode-redis-syncer"),
		RefreshConsumer: NewConsumer(refreshTopic, "refresh-workers"),
	}
}
