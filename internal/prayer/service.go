package prayer

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/cache"
	"github.com/Nixie-Tech-LLC/masjidsite/internal/metrics"
)

// DefaultCacheTTL bounds how long a fetched table is reused.
const DefaultCacheTTL = time.Hour

// PublishTimeout bounds one background publish of a fresh table.
const PublishTimeout = 10 * time.Second

var zonePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{2}$`)

// Provider fetches today's raw table for a zone code.
type Provider interface {
	FetchToday(ctx context.Context, zone string) (*ProviderResponse, error)
}

// Publisher is told about every freshly fetched table.
type Publisher interface {
	PublishTable(ctx context.Context, zone string, table *DailyTable) error
}

// Source is what renderers need from Times.
type Source interface {
	Today(ctx context.Context, zone string) *DailyTable
	Now() time.Time
}

// Times serves today's table per zone: cache first, then the provider.
// It never returns an error; a nil table means prayer times are unavailable.
type Times struct {
	provider  Provider
	cache     cache.Cache
	publisher Publisher
	ttl       time.Duration
	loc       *time.Location
	dateCheck bool
	now       func() time.Time
}

type Option func(*Times)

func WithCacheTTL(ttl time.Duration) Option {
	return func(t *Times) {
		if ttl > 0 {
			t.ttl = ttl
		}
	}
}

// WithLocation sets the zone "today" is computed in.
func WithLocation(loc *time.Location) Option {
	return func(t *Times) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithDateCheck selects the record by date instead of trusting the first one.
func WithDateCheck(enabled bool) Option {
	return func(t *Times) { t.dateCheck = enabled }
}

func WithPublisher(p Publisher) Option {
	return func(t *Times) { t.publisher = p }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Times) {
		if now != nil {
			t.now = now
		}
	}
}

var _ Source = (*Times)(nil)

func NewTimes(provider Provider, c cache.Cache, opts ...Option) *Times {
	t := &Times{
		provider: provider,
		cache:    c,
		ttl:      DefaultCacheTTL,
		loc:      time.UTC,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ValidZone reports whether zone looks like a provider zone code ("SGR01").
func ValidZone(zone string) bool {
	return zonePattern.MatchString(zone)
}

// NormalizeZone upper-cases and trims a zone code.
func NormalizeZone(zone string) string {
	return strings.ToUpper(strings.TrimSpace(zone))
}

// Now is the current instant in the configured location.
func (t *Times) Now() time.Time {
	return t.now().In(t.loc)
}

// Today returns today's table for zone, or nil when it cannot be obtained.
func (t *Times) Today(ctx context.Context, zone string) *DailyTable {
	zone = NormalizeZone(zone)
	if !ValidZone(zone) {
		log.Warn().Str("zone", zone).Msg("[prayer] invalid zone code")
		return nil
	}

	today := t.Now()
	key := cacheKey(zone, today)

	if t.cache != nil {
		if raw, ok := t.cache.Get(ctx, key); ok {
			var table DailyTable
			if err := json.Unmarshal(raw, &table); err == nil {
				metrics.CacheLookups.WithLabelValues("hit").Inc()
				return &table
			}
			log.Warn().Str("key", key).Msg("[prayer] dropping undecodable cache entry")
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	if t.provider == nil {
		return nil
	}

	started := time.Now()
	resp, err := t.provider.FetchToday(ctx, zone)
	metrics.ProviderLatency.Observe(time.Since(started).Seconds())
	if err != nil {
		metrics.ProviderFetches.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("zone", zone).Msg("[prayer] provider fetch failed")
		return nil
	}

	var table *DailyTable
	if t.dateCheck {
		table = NormalizeForDate(resp, today)
	} else {
		table = Normalize(resp)
	}
	if table == nil {
		metrics.ProviderFetches.WithLabelValues("unavailable").Inc()
		log.Warn().Str("zone", zone).Msg("[prayer] provider returned no usable table")
		return nil
	}
	metrics.ProviderFetches.WithLabelValues("ok").Inc()

	if t.cache != nil {
		if raw, err := json.Marshal(table); err == nil {
			t.cache.Set(ctx, key, raw, t.ttl)
		}
	}

	if t.publisher != nil {
		published := *table
		go t.publish(zone, &published)
	}

	return table
}

// publish runs off the request path with its own deadline so a slow or
// unreachable broker never delays rendering.
func (t *Times) publish(zone string, table *DailyTable) {
	ctx, cancel := context.WithTimeout(context.Background(), PublishTimeout)
	defer cancel()
	if err := t.publisher.PublishTable(ctx, zone, table); err != nil {
		log.Warn().Err(err).Str("zone", zone).Msg("[prayer] publish failed")
	}
}

func cacheKey(zone string, day time.Time) string {
	return fmt.Sprintf("prayer:%s:%s", zone, day.Format("2006-01-02"))
}
