package config

import "time"

func getDefaultEscrowConfig() *EscrowConfig {
	return &EscrowConfig{
		LogLevel:     "DEBUG",
		LogFormat:    "text",
		ProfilerAddr: "",
		Prometheus:   getDefaultPrometheusConfig(),
		Tracing:      getDefaultTracingConfig(),
		Db:           getDefaultDbConfig(),
		MessageQueue: &MessageQueueConfig{URL: "nats://localhost:4222", MaxReconnects: -1, ReconnectWait: 2 * time.Second},
		Cache:        getDefaultCacheConfig(),
		API:          getDefaultAPIConfig(),
		Fees:         getDefaultFeesConfig(),
		Verifier:     &VerifierConfig{MinConfirmations: 1},
		Appeal:       &AppealConfig{CooldownMinutes: 60},
		Chain:        getDefaultChainConfig(),
		Gateway:      getDefaultGatewayConfig(),
		Jobs:         getDefaultJobsConfig(),
	}
}

func getDefaultPrometheusConfig() *PrometheusConfig {
	return &PrometheusConfig{
		Enabled:  false,
		Endpoint: "/metrics",
		Addr:     ":2112",
	}
}

func getDefaultTracingConfig() *TracingConfig {
	return &TracingConfig{
		Enabled:  false,
		DialAddr: "http://localhost:4317",
		Sample:   100,
	}
}

func getDefaultDbConfig() *DbConfig {
	return &DbConfig{
		Mode: DbModePostgres,
		Postgres: &PostgresConfig{
			Host:         "localhost",
			Port:         5432,
			Name:         "escrow",
			User:         "escrow",
			Password:     "escrow",
			MaxIdleConns: 10,
			MaxOpenConns: 80,
			SslMode:      "disable",
		},
	}
}

func getDefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Engine: CacheEngineMemory,
		Redis: &RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		},
	}
}

func getDefaultAPIConfig() *APIConfig {
	return &APIConfig{
		Address: "localhost:9090",
	}
}

func getDefaultFeesConfig() *FeesConfig {
	return &FeesConfig{
		ArbitrationFee:     1000,
		TradingFee:         1000,
		DefaultContractFee: 1000,
	}
}

func getDefaultChainConfig() *ChainConfig {
	return &ChainConfig{
		Source:      ChainSourceExplorer,
		ExplorerURL: "https://api.whatsonchain.com/v1/bsv/main",
		Timeout:     10 * time.Second,
		CacheExpiry: 10 * time.Second,
		Node: &NodeConfig{
			Host:     "localhost",
			Port:     18332,
			User:     "bitcoin",
			Password: "bitcoin",
		},
	}
}

func getDefaultGatewayConfig() *GatewayConfig {
	return &GatewayConfig{
		Mode:            GatewayModeSubprocess,
		Command:         "node",
		Args:            []string{"escrow.js"},
		Timeout:         30 * time.Second,
		ContractVersion: "v1",
	}
}

func getDefaultJobsConfig() *JobsConfig {
	return &JobsConfig{
		VerifyWorkers:   4,
		MaxRetryElapsed: 30 * time.Minute,
		SweepSchedule:   "@every 1m",
	}
}
