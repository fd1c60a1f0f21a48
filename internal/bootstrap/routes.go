package bootstrap

import (
	"net/http"

	"weather-info/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

func InitRoutes(handlers *HandlersBundle, redisClient *redis.Client) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("OK"))
	})

	r.Post("/token", handlers.TokenHandler.CreateToken)
	r.Post("/admin/popular", handlers.AdminHandler.CreatePopular)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthRequired(redisClient))
		r.Get("/weather", handlers.WeatherHandler.GetWeather)
		r.Get("/astronomy", handlers.AstronomyHandler.GetAstronomy)
		r.Get("/geocode", handlers.GeocodeHandler.Geocode)
	})

	return r
}
