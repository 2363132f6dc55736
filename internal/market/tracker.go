package market

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// maxLogoWorkers is the maximum number of concurrent logo downloads.
const maxLogoWorkers = 4

// TrackerConfig represents the configuration for the coin tracker.
type TrackerConfig struct {
	// Fetcher fetches the tracked coins.
	Fetcher Fetcher
	// Images fetches coin logos, logos are skipped when nil.
	Images ImageFetcher
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *TrackerConfig) Validate() error {
	var errs error

	if cfg.Fetcher == nil {
		errs = errors.Join(errs, fmt.Errorf("coin fetcher cannot be nil"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// Tracker owns the coin listing shown by the dashboard. The listing starts empty and is
// filled by a single fetch.
type Tracker struct {
	cfg    *TrackerConfig
	once   sync.Once
	mu     sync.RWMutex
	coins  []CoinMarketEntry
	logos  map[string]image.Image
	closed bool
}

// NewTracker initializes a new coin tracker.
func NewTracker(cfg *TrackerConfig) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating tracker config: %w", err)
	}

	return &Tracker{
		cfg:   cfg,
		coins: []CoinMarketEntry{},
		logos: make(map[string]image.Image),
	}, nil
}

// Run fetches the tracked coins. Only the first call fetches, later calls return immediately.
// A failed fetch is logged and leaves the listing empty.
func (t *Tracker) Run(ctx context.Context) {
	t.once.Do(func() {
		t.load(ctx)
	})
}

// load performs the fetch and stores its result.
func (t *Tracker) load(ctx context.Context) {
	coins, err := t.cfg.Fetcher.FetchTopCoins(ctx)
	if err != nil {
		t.cfg.Logger.Error().Err(err).Msg("loading coins")
		return
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		t.cfg.Logger.Debug().Msg("tracker closed, discarding fetched coins")
		return
	}
	t.coins = coins
	t.mu.Unlock()

	t.cfg.Logger.Info().Msgf("loaded %d coins", len(coins))

	if t.cfg.Images != nil {
		t.loadLogos(ctx, coins)
	}
}

// loadLogos downloads the logos of the provided coins. A logo that cannot be fetched is
// logged and skipped.
func (t *Tracker) loadLogos(ctx context.Context, coins []CoinMarketEntry) {
	var g errgroup.Group
	g.SetLimit(maxLogoWorkers)

	for idx := range coins {
		coin := coins[idx]
		if coin.Image == "" {
			continue
		}

		g.Go(func() error {
			img, err := t.cfg.Images.FetchImage(ctx, coin.Image)
			if err != nil {
				t.cfg.Logger.Warn().Err(err).Str("coin", coin.Key()).Msg("loading logo")
				return nil
			}

			t.mu.Lock()
			defer t.mu.Unlock()
			if !t.closed {
				t.logos[coin.Key()] = img
			}

			return nil
		})
	}

	_ = g.Wait()
}

// Coins returns a copy of the current listing.
func (t *Tracker) Coins() []CoinMarketEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	coins := make([]CoinMarketEntry, len(t.coins))
	copy(coins, t.coins)

	return coins
}

// Logo returns the logo of the coin with the provided key, if loaded.
func (t *Tracker) Logo(key string) (image.Image, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	img, ok := t.logos[key]

	return img, ok
}

// Close tears down the listing. Fetch results arriving after close are discarded.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	t.coins = []CoinMarketEntry{}
	t.logos = make(map[string]image.Image)
}
