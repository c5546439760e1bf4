package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/cache"
	"github.com/rampp2p/escrow/internal/tracing"
)

const (
	cacheKeyPrefix     = "chain-tx-"
	defaultCacheExpiry = 10 * time.Second
)

// Finder asks each source in turn and returns the first transaction found.
type Finder struct {
	sources           []TxSource
	logger            *slog.Logger
	timeout           time.Duration
	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithFinderTimeout(timeout time.Duration) func(*Finder) {
	return func(f *Finder) {
		f.timeout = timeout
	}
}

func WithFinderTracer(attr ...attribute.KeyValue) func(*Finder) {
	return func(f *Finder) {
		f.tracingEnabled = true
		f.tracingAttributes = tracing.CallerAttributes(attr...)
	}
}

func NewFinder(logger *slog.Logger, sources []TxSource, opts ...func(*Finder)) *Finder {
	f := &Finder{
		sources: sources,
		logger:  logger.With(slog.String("module", "tx-finder")),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

func (f *Finder) GetTransaction(ctx context.Context, txID string) (details *TxDetails, err error) {
	ctx, span := tracing.StartTracing(ctx, "Finder_GetTransaction", f.tracingEnabled, f.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	if len(f.sources) == 0 {
		return nil, ErrNoSources
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	var errs []error
	for _, source := range f.sources {
		details, err = source.GetTransaction(ctx, txID)
		if err == nil {
			return details, nil
		}

		f.logger.Warn("failed to get transaction from source", slog.String("txid", txID), slog.String("source", fmt.Sprintf("%T", source)), slog.String("err", err.Error()))
		errs = append(errs, err)

		if ctx.Err() != nil {
			break
		}
	}

	return nil, errors.Join(errs...)
}

// CachedFinder keeps confirmed transactions for a short while so repeated verification of the same txid does
// not hit the sources again.
type CachedFinder struct {
	source      TxSource
	cacheStore  cache.Store
	cacheExpiry time.Duration
	logger      *slog.Logger
}

func WithCacheExpiry(expiry time.Duration) func(*CachedFinder) {
	return func(c *CachedFinder) {
		c.cacheExpiry = expiry
	}
}

func NewCachedFinder(logger *slog.Logger, source TxSource, cacheStore cache.Store, opts ...func(*CachedFinder)) *CachedFinder {
	c := &CachedFinder{
		source:      source,
		cacheStore:  cacheStore,
		cacheExpiry: defaultCacheExpiry,
		logger:      logger.With(slog.String("module", "cached-tx-finder")),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *CachedFinder) GetTransaction(ctx context.Context, txID string) (*TxDetails, error) {
	key := cacheKeyPrefix + txID

	data, err := c.cacheStore.Get(key)
	if err == nil {
		var details TxDetails
		if err = json.Unmarshal(data, &details); err == nil {
			return &details, nil
		}
	}
	if err != nil && !errors.Is(err, cache.ErrCacheNotFound) {
		c.logger.Warn("failed to read cached transaction", slog.String("txid", txID), slog.String("err", err.Error()))
	}

	details, err := c.source.GetTransaction(ctx, txID)
	if err != nil {
		return nil, err
	}

	// unconfirmed transactions change as blocks arrive
	if details.Confirmations == 0 {
		return details, nil
	}

	data, err = json.Marshal(details)
	if err == nil {
		err = c.cacheStore.Set(key, data, c.cacheExpiry)
	}
	if err != nil {
		c.logger.Warn("failed to cache transaction", slog.String("txid", txID), slog.String("err", err.Error()))
	}

	return details, nil
}
