package kafka

import "testing"

func TestInitKafkaUsesGivenTopics(t *testing.T) {
	bundle := InitKafka("weather-t", "geocode-t", "refresh-t")
	defer func() {
		bundle.WeatherProducer.Close()
		bundle.GeocodeProducer.Close()
		bundle.RefreshProducer.Close()
		bundle.WeatherConsumer.Stop()
		bundle.GeocodeConsumer.Stop()
		bundle.RefreshConsumer.Stop()
	}()

	if bundle.WeatherProducer.topic != "weather-t" {
		t.Errorf("weather producer topic %q, want weather-t", bundle.WeatherProducer.topic)
	}
	if bundle.GeocodeProducer.topic != "geocode-t" {
		t.Errorf("geocode producer topic %q, want geocode-t", bundle.GeocodeProducer.topic)
	}
	if bundle.RefreshProducer.topic != "refresh-t" {
		t.Errorf("refresh producer topic %q, want refresh-t", bundle.RefreshProducer.topic)
	}
	if bundle.RefreshConsumer.topic != "refresh-t" {
		t.Errorf("refresh consumer topic %q, want refresh-t", bundle.RefreshConsumer.topic)
	}
}
