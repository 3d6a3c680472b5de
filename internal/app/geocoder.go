package app

import (
	"github.com/rs/zerolog"

	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/geo"
	"github.com/kevlarmarlon20-eng/SwiftCargo/internal/infrastructure/config"
)

// NewResolver builds the process resolver from configuration: the seeded hub
// cache, the Nominatim provider and the provider throttle.
func NewResolver(cfg config.GeocoderConfig, log zerolog.Logger) *geo.Resolver {
	cache := geo.NewLocationCache(geo.DefaultHubs(),
		geo.WithMatchStrategy(geo.ParseMatchStrategy(cfg.CacheMatch)),
		geo.WithMaxEntries(cfg.CacheMaxEntries),
	)
	provider := geo.NewNominatimClient(geo.NominatimConfig{
		BaseURL:   cfg.URL,
		UserAgent: cfg.UserAgent,
		Email:     cfg.Email,
		Timeout:   cfg.Timeout,
	})
	return geo.NewResolver(cache, provider, log,
		geo.WithMinInterval(cfg.MinInterval),
		geo.WithResultLimit(cfg.ResultLimit),
	)
}
