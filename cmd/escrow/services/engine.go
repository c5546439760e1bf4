package cmd

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/config"
	"github.com/rampp2p/escrow/internal/appeal"
	"github.com/rampp2p/escrow/internal/cache"
	"github.com/rampp2p/escrow/internal/chain"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/escrow/store/memorystore"
	"github.com/rampp2p/escrow/internal/escrow/store/postgresql"
	"github.com/rampp2p/escrow/internal/gateway"
	"github.com/rampp2p/escrow/internal/lifecycle"
	"github.com/rampp2p/escrow/internal/message_queue/nats/client/nats_core"
	"github.com/rampp2p/escrow/internal/message_queue/nats/nats_connection"
	"github.com/rampp2p/escrow/internal/notify"
	"github.com/rampp2p/escrow/internal/tracing"
	"github.com/rampp2p/escrow/internal/verifier"
)

var (
	ErrUnknownDbMode      = errors.New("unknown db mode")
	ErrUnknownChainSource = errors.New("unknown chain source")
	ErrUnknownGatewayMode = errors.New("unknown gateway mode")
)

// engine holds the components shared by the api server and the worker.
type engine struct {
	store        store.EscrowStore
	cache        cache.Store
	mqClient     *nats_core.Client
	notifier     *notify.Notifier
	orchestrator *lifecycle.Orchestrator
	appeals      *appeal.Handler

	tracingEnabled bool
	attributes     []attribute.KeyValue
	shutdownFns    []func()
}

func newEngine(logger *slog.Logger, escrowConfig *config.EscrowConfig, service string) (*engine, error) {
	e := &engine{}

	err := e.init(logger, escrowConfig, service)
	if err != nil {
		e.shutdown()
		return nil, err
	}

	return e, nil
}

func (e *engine) init(logger *slog.Logger, escrowConfig *config.EscrowConfig, service string) (err error) {
	if escrowConfig.IsTracingEnabled() {
		cleanup, err := tracing.Enable(logger, service, escrowConfig.Tracing.DialAddr, escrowConfig.Tracing.Sample)
		if err != nil {
			logger.Error("failed to enable tracing", slog.String("err", err.Error()))
		} else {
			e.shutdownFns = append(e.shutdownFns, cleanup)
		}

		e.tracingEnabled = true
		e.attributes = escrowConfig.Tracing.KeyValueAttributes
		hostname, err := os.Hostname()
		if err == nil {
			e.attributes = append(e.attributes, attribute.String("hostname", hostname))
		}
	}

	e.store, err = newEscrowStore(escrowConfig.Db, e.tracingOpts())
	if err != nil {
		return err
	}

	e.cache, err = NewCacheStore(escrowConfig.Cache)
	if err != nil {
		return errors.Wrap(err, "failed to create cache store")
	}

	coreOpts := []nats_core.Option{nats_core.WithLogger(logger)}
	notifyOpts := []func(*notify.Notifier){}
	orchestratorOpts := []func(*lifecycle.Orchestrator){
		lifecycle.WithAppealCooldown(escrowConfig.Appeal.Cooldown()),
		lifecycle.WithChainTimeout(escrowConfig.Chain.Timeout),
	}
	appealOpts := []func(*appeal.Handler){}

	if e.tracingEnabled {
		coreOpts = append(coreOpts, nats_core.WithTracer(e.attributes...))
		notifyOpts = append(notifyOpts, notify.WithTracer(e.attributes...))
		orchestratorOpts = append(orchestratorOpts, lifecycle.WithTracer(e.attributes...))
		appealOpts = append(appealOpts, appeal.WithTracer(e.attributes...))
	}

	if escrowConfig.Prometheus.IsEnabled() {
		stats := lifecycle.NewStats()
		err = stats.Register()
		if err != nil {
			return errors.Wrap(err, "failed to register lifecycle stats")
		}
		orchestratorOpts = append(orchestratorOpts, lifecycle.WithStats(stats))
	}

	conn, err := nats_connection.Connect(escrowConfig.MessageQueue.URL, service, logger,
		nats_connection.WithReconnects(escrowConfig.MessageQueue.MaxReconnects, escrowConfig.MessageQueue.ReconnectWait))
	if err != nil {
		return errors.Wrapf(err, "failed to connect to message queue at %s", escrowConfig.MessageQueue.URL)
	}

	e.mqClient = nats_core.New(conn, coreOpts...)
	e.notifier = notify.New(e.mqClient, logger, notifyOpts...)
	orchestratorOpts = append(orchestratorOpts, lifecycle.WithJobPublisher(e.mqClient))

	txSource, err := newTxSource(logger, escrowConfig.Chain, e.cache, e.attributes, e.tracingEnabled)
	if err != nil {
		return err
	}

	gw, err := newGateway(logger, escrowConfig.Gateway)
	if err != nil {
		return err
	}

	schedule := escrowConfig.Fees.Schedule()
	v, err := verifier.New(verifier.Config{
		MinConfirmations: escrowConfig.Verifier.MinConfirmations,
		ServicerAddress:  escrowConfig.Fees.ServicerAddress,
		Fees:             schedule,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create verifier")
	}

	e.orchestrator = lifecycle.New(logger, e.store, gw, txSource, v, e.notifier, schedule, orchestratorOpts...)
	e.appeals = appeal.New(logger, e.orchestrator, e.store, e.notifier, appealOpts...)

	return nil
}

func (e *engine) tracingOpts() []attribute.KeyValue {
	if !e.tracingEnabled {
		return nil
	}
	return e.attributes
}

// shutdown drains the message queue connection and closes the store.
func (e *engine) shutdown() {
	if e.mqClient != nil {
		e.mqClient.Shutdown()
	}

	if e.store != nil {
		_ = e.store.Close()
	}

	for _, fn := range e.shutdownFns {
		fn()
	}
}

func newEscrowStore(dbConfig *config.DbConfig, attributes []attribute.KeyValue) (store.EscrowStore, error) {
	switch dbConfig.Mode {
	case config.DbModePostgres:
		var opts []func(*postgresql.PostgreSQL)
		if attributes != nil {
			opts = append(opts, postgresql.WithTracer(attributes...))
		}

		pg := dbConfig.Postgres
		s, err := postgresql.New(pg.DataSourceName(), pg.MaxIdleConns, pg.MaxOpenConns, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open postgres store")
		}
		return s, nil
	case config.DbModeMemory:
		return memorystore.New(), nil
	}

	return nil, errors.Wrapf(ErrUnknownDbMode, "mode %q", dbConfig.Mode)
}

func newTxSource(logger *slog.Logger, cfg *config.ChainConfig, cacheStore cache.Store, attributes []attribute.KeyValue, tracingEnabled bool) (chain.TxSource, error) {
	var sources []chain.TxSource

	if cfg.Source == config.ChainSourceNode || cfg.Source == config.ChainSourceBoth {
		rpc, err := chain.NewRPCClient(cfg.Node.Host, cfg.Node.Port, cfg.Node.User, cfg.Node.Password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create node rpc client for %s:%d", cfg.Node.Host, cfg.Node.Port)
		}

		var opts []func(*chain.NodeClient)
		if tracingEnabled {
			opts = append(opts, chain.WithNodeTracer(attributes...))
		}
		sources = append(sources, chain.NewNodeClient(rpc, opts...))
	}

	if cfg.Source == config.ChainSourceExplorer || cfg.Source == config.ChainSourceBoth {
		opts := []func(*chain.ExplorerClient){
			chain.WithLogger(logger),
			chain.WithAuth(cfg.ExplorerAPIKey),
		}
		if cfg.Timeout > 0 {
			opts = append(opts, chain.WithTimeout(cfg.Timeout))
		}
		if tracingEnabled {
			opts = append(opts, chain.WithTracer(attributes...))
		}
		sources = append(sources, chain.NewExplorerClient(cfg.ExplorerURL, opts...))
	}

	if len(sources) == 0 {
		return nil, errors.Wrapf(ErrUnknownChainSource, "source %q", cfg.Source)
	}

	finderOpts := []func(*chain.Finder){}
	if cfg.Timeout > 0 {
		finderOpts = append(finderOpts, chain.WithFinderTimeout(cfg.Timeout))
	}
	if tracingEnabled {
		finderOpts = append(finderOpts, chain.WithFinderTracer(attributes...))
	}

	finder := chain.NewFinder(logger, sources, finderOpts...)

	var cachedOpts []func(*chain.CachedFinder)
	if cfg.CacheExpiry > 0 {
		cachedOpts = append(cachedOpts, chain.WithCacheExpiry(cfg.CacheExpiry))
	}

	return chain.NewCachedFinder(logger, finder, cacheStore, cachedOpts...), nil
}

func newGateway(logger *slog.Logger, cfg *config.GatewayConfig) (gateway.ContractGateway, error) {
	switch cfg.Mode {
	case config.GatewayModeSubprocess:
		opts := []func(*gateway.Subprocess){gateway.WithContractVersion(cfg.ContractVersion)}
		if cfg.Timeout > 0 {
			opts = append(opts, gateway.WithTimeout(cfg.Timeout))
		}
		return gateway.NewSubprocess(logger, cfg.Command, cfg.Args, opts...), nil
	case config.GatewayModeMemory:
		logger.Warn("using in-memory contract gateway, contracts are not real")
		return gateway.NewInMemory(cfg.ContractVersion), nil
	}

	return nil, errors.Wrapf(ErrUnknownGatewayMode, "mode %q", cfg.Mode)
}
