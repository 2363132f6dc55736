package market

import (
	"bytes"
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/rs/zerolog"
)

// stubFetcher returns canned coins or an error and counts its calls.
type stubFetcher struct {
	coins []CoinMarketEntry
	err   error
	calls atomic.Int32
	// before runs ahead of returning, when set.
	before func()
}

func (f *stubFetcher) FetchTopCoins(ctx context.Context) ([]CoinMarketEntry, error) {
	f.calls.Add(1)
	if f.before != nil {
		f.before()
	}
	if f.err != nil {
		return nil, f.err
	}

	return f.coins, nil
}

// stubImages serves a blank logo for every url except the failing ones.
type stubImages struct {
	mu      sync.Mutex
	failing map[string]bool
	fetched []string
}

func (s *stubImages) FetchImage(ctx context.Context, imageURL string) (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetched = append(s.fetched, imageURL)
	if s.failing[imageURL] {
		return nil, errors.New("logo unavailable")
	}

	return image.NewRGBA(image.Rect(0, 0, 2, 2)), nil
}

// safeBuffer is a goroutine safe log sink.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *safeBuffer) count(level string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return strings.Count(b.buf.String(), `"level":"`+level+`"`)
}

func testCoins() []CoinMarketEntry {
	return []CoinMarketEntry{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", Image: "http://logos/btc.png", Sparkline: []float64{1, 2}},
		{ID: "ethereum", Name: "Ethereum", Symbol: "eth", Image: "http://logos/eth.png", Sparkline: []float64{3, 4}},
		{ID: "tether", Name: "Tether", Symbol: "usdt"},
	}
}

func TestTrackerConfigValidate(t *testing.T) {
	logger := zerolog.Nop()

	// Ensure a fetcher and a logger are required.
	_, err := NewTracker(&TrackerConfig{})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "coin fetcher cannot be nil"))
	assert.True(t, strings.Contains(err.Error(), "logger cannot be nil"))

	// Ensure images are optional.
	_, err = NewTracker(&TrackerConfig{Fetcher: &stubFetcher{}, Logger: &logger})
	assert.NoError(t, err)
}

func TestTrackerLoadsOnce(t *testing.T) {
	sink := &safeBuffer{}
	logger := zerolog.New(sink)
	fetcher := &stubFetcher{coins: testCoins()}
	images := &stubImages{failing: map[string]bool{"http://logos/eth.png": true}}

	tracker, err := NewTracker(&TrackerConfig{
		Fetcher: fetcher,
		Images:  images,
		Logger:  &logger,
	})
	assert.NoError(t, err)

	// Ensure the listing starts empty.
	assert.Equal(t, len(tracker.Coins()), 0)

	// Ensure the listing is filled in the order fetched.
	tracker.Run(context.Background())
	coins := tracker.Coins()
	assert.Equal(t, len(coins), 3)
	assert.Equal(t, coins[0].Name, "Bitcoin")
	assert.Equal(t, coins[1].Name, "Ethereum")
	assert.Equal(t, coins[2].Name, "Tether")

	// Ensure only one fetch happens per tracker lifetime.
	tracker.Run(context.Background())
	tracker.Run(context.Background())
	assert.Equal(t, fetcher.calls.Load(), int32(1))

	// Ensure logos are loaded, skipping failures and coins without one.
	_, ok := tracker.Logo("bitcoin")
	assert.True(t, ok)
	_, ok = tracker.Logo("ethereum")
	assert.False(t, ok)
	_, ok = tracker.Logo("tether")
	assert.False(t, ok)
	assert.Equal(t, len(images.fetched), 2)
	assert.Equal(t, sink.count("warn"), 1)
	assert.Equal(t, sink.count("error"), 0)

	// Ensure callers receive a copy of the listing.
	coins[0].Name = "changed"
	assert.Equal(t, tracker.Coins()[0].Name, "Bitcoin")
}

func TestTrackerFetchFailure(t *testing.T) {
	sink := &safeBuffer{}
	logger := zerolog.New(sink)
	fetcher := &stubFetcher{err: errors.New("dial tcp: connection refused")}

	tracker, err := NewTracker(&TrackerConfig{
		Fetcher: fetcher,
		Images:  &stubImages{},
		Logger:  &logger,
	})
	assert.NoError(t, err)

	// Ensure a failed fetch leaves the listing empty and logs exactly one error.
	tracker.Run(context.Background())
	assert.Equal(t, len(tracker.Coins()), 0)
	assert.Equal(t, sink.count("error"), 1)

	// Ensure the failure is not retried.
	tracker.Run(context.Background())
	assert.Equal(t, fetcher.calls.Load(), int32(1))
	assert.Equal(t, sink.count("error"), 1)
}

func TestTrackerClose(t *testing.T) {
	logger := zerolog.Nop()
	var tracker *Tracker

	// Close the tracker while the fetch is in flight.
	fetcher := &stubFetcher{coins: testCoins()}
	fetcher.before = func() { tracker.Close() }

	tracker, err := NewTracker(&TrackerConfig{
		Fetcher: fetcher,
		Images:  &stubImages{},
		Logger:  &logger,
	})
	assert.NoError(t, err)

	// Ensure results arriving after close are discarded.
	tracker.Run(context.Background())
	assert.Equal(t, fetcher.calls.Load(), int32(1))
	assert.Equal(t, len(tracker.Coins()), 0)
	_, ok := tracker.Logo("bitcoin")
	assert.False(t, ok)

	// Ensure a loaded tracker is emptied on close.
	loaded, err := NewTracker(&TrackerConfig{
		Fetcher: &stubFetcher{coins: testCoins()},
		Images:  &stubImages{},
		Logger:  &logger,
	})
	assert.NoError(t, err)

	loaded.Run(context.Background())
	assert.Equal(t, len(loaded.Coins()), 3)

	loaded.Close()
	assert.Equal(t, len(loaded.Coins()), 0)
	_, ok = loaded.Logo("bitcoin")
	assert.False(t, ok)
}
