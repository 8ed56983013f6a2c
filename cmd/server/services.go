package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/cache"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/config"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/display"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/esolat"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

// Publisher is a prayer.Publisher that can be shut down.
type Publisher interface {
	prayer.Publisher
	Close()
}

// InitCache selects the prayer table cache backend.
func InitCache(cfg *config.Config) cache.Cache {
	if cfg.CacheDriver == cache.DriverRedis {
		log.Info().Str("address", cfg.RedisAddress).Msg("using redis prayer cache")
		return cache.NewRedis(cache.Connect(cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword))
	}
	log.Info().Msg("using in-memory prayer cache")
	return cache.NewMemory(cfg.PrayerCacheTTL)
}

// InitPublisher connects to the display broker, or returns a no-op
// publisher when none is configured or it cannot be reached.
func InitPublisher(cfg *config.Config) Publisher {
	if cfg.MQTTBrokerURL == "" {
		log.Info().Msg("MQTT_BROKER_URL not set, display publishing disabled")
		return display.Noop{}
	}
	client, err := display.Connect(cfg.MQTTBrokerURL, cfg.MQTTClientID)
	if err != nil {
		log.Error().Err(err).Msg("display publishing disabled")
		return display.Noop{}
	}
	return display.NewPublisher(client)
}

// InitPrayerTimes wires the e-Solat client, cache and publisher.
func InitPrayerTimes(cfg *config.Config, c cache.Cache, publisher prayer.Publisher) *prayer.Times {
	return prayer.NewTimes(
		esolat.NewClient(cfg.ESolatBaseURL, cfg.ESolatTimeout),
		c,
		prayer.WithCacheTTL(cfg.PrayerCacheTTL),
		prayer.WithLocation(cfg.Location),
		prayer.WithDateCheck(cfg.PrayerDateCheck),
		prayer.WithPublisher(publisher),
	)
}
