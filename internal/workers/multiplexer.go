package workers

import (
	"encoding/json"
	"log"

	"weather-info/internal/kafka"
	"weather-info/internal/models"
)

// StartRefreshMultiplexer fans refresh commands out to the per-type worker
// channels.
func StartRefreshMultiplexer(consumer *kafka.Consumer, weatherCh, geocodeCh chan []byte) {
	if consumer == nil {
		return
	}
	consumer.Start(func(key, value []byte) {
		var cmd models.RefreshCommand
		if err := json.Unmarshal(value, &cmd); err != nil {
			log.Printf("Invalid message in multiplexer: %v", err)
			return
		}

		switch cmd.Type {
		case "weather":
			select {
			case weatherCh <- value:
			default:
				log.Printf("Weather channel full, dropping command (key=%s)", string(key))
			}
		case "geocode":
			select {
			case geocodeCh <- value:
			default:
				log.Printf("Geocode channel full, dropping command (key=%s)", string(key))
			}
		default:
			log.Printf("Unknown command type: %s", cmd.Type)
		}
	})
}
