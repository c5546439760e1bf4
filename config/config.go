package config

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/rampp2p/escrow/internal/fees"
)

const (
	DbModePostgres = "postgres"
	DbModeMemory   = "memory"

	CacheEngineMemory = "memory"
	CacheEngineRedis  = "redis"

	ChainSourceExplorer = "explorer"
	ChainSourceNode     = "node"
	ChainSourceBoth     = "both"

	GatewayModeSubprocess = "subprocess"
	GatewayModeMemory     = "memory"
)

type EscrowConfig struct {
	LogLevel     string              `mapstructure:"logLevel"`
	LogFormat    string              `mapstructure:"logFormat"`
	ProfilerAddr string              `mapstructure:"profilerAddr"`
	Prometheus   *PrometheusConfig   `mapstructure:"prometheus"`
	Tracing      *TracingConfig      `mapstructure:"tracing"`
	Db           *DbConfig           `mapstructure:"db"`
	MessageQueue *MessageQueueConfig `mapstructure:"messageQueue"`
	Cache        *CacheConfig        `mapstructure:"cache"`
	API          *APIConfig          `mapstructure:"api"`
	Fees         *FeesConfig         `mapstructure:"fees"`
	Verifier     *VerifierConfig     `mapstructure:"verifier"`
	Appeal       *AppealConfig       `mapstructure:"appeal"`
	Chain        *ChainConfig        `mapstructure:"chain"`
	Gateway      *GatewayConfig      `mapstructure:"gateway"`
	Jobs         *JobsConfig         `mapstructure:"jobs"`
}

type PrometheusConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
	Addr     string `mapstructure:"addr"`
}

func (p *PrometheusConfig) IsEnabled() bool {
	return p != nil && p.Enabled && p.Addr != "" && p.Endpoint != ""
}

type TracingConfig struct {
	Enabled            bool                 `mapstructure:"enabled"`
	DialAddr           string               `mapstructure:"dialAddr"`
	Sample             int                  `mapstructure:"sample"`
	Attributes         map[string]string    `mapstructure:"attributes"`
	KeyValueAttributes []attribute.KeyValue `mapstructure:"-"`
}

func (c *EscrowConfig) IsTracingEnabled() bool {
	return c.Tracing != nil && c.Tracing.Enabled
}

type DbConfig struct {
	Mode     string          `mapstructure:"mode"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Name         string `mapstructure:"name"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	MaxIdleConns int    `mapstructure:"maxIdleConns"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
	SslMode      string `mapstructure:"sslMode"`
}

func (p *PostgresConfig) DataSourceName() string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		p.User, p.Password, p.Name, p.Host, p.Port, p.SslMode)
}

type MessageQueueConfig struct {
	URL           string        `mapstructure:"url"`
	MaxReconnects int           `mapstructure:"maxReconnects"`
	ReconnectWait time.Duration `mapstructure:"reconnectWait"`
}

type CacheConfig struct {
	Engine string       `mapstructure:"engine"`
	Redis  *RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type APIConfig struct {
	Address             string `mapstructure:"address"`
	JWTSecret           string `mapstructure:"jwtSecret"`
	RequestExtendedLogs bool   `mapstructure:"requestExtendedLogs"`
}

// FeesConfig holds satoshi amounts. Bps components are basis points of the order amount.
type FeesConfig struct {
	ArbitrationFee     uint64            `mapstructure:"arbitrationFee"`
	TradingFee         uint64            `mapstructure:"tradingFee"`
	ArbitrationFeeBps  uint64            `mapstructure:"arbitrationFeeBps"`
	TradingFeeBps      uint64            `mapstructure:"tradingFeeBps"`
	DefaultContractFee uint64            `mapstructure:"defaultContractFee"`
	ContractFees       map[string]uint64 `mapstructure:"contractFees"`
	ServicerAddress    string            `mapstructure:"servicerAddress"`
}

func (f *FeesConfig) Schedule() fees.Schedule {
	return fees.Schedule{
		ArbitrationFee:     f.ArbitrationFee,
		TradingFee:         f.TradingFee,
		ArbitrationFeeBps:  f.ArbitrationFeeBps,
		TradingFeeBps:      f.TradingFeeBps,
		DefaultContractFee: f.DefaultContractFee,
		ContractFees:       f.ContractFees,
	}
}

type VerifierConfig struct {
	MinConfirmations uint64 `mapstructure:"minConfirmations"`
}

type AppealConfig struct {
	CooldownMinutes int `mapstructure:"cooldownMinutes"`
}

func (a *AppealConfig) Cooldown() time.Duration {
	return time.Duration(a.CooldownMinutes) * time.Minute
}

type ChainConfig struct {
	Source         string        `mapstructure:"source"`
	ExplorerURL    string        `mapstructure:"explorerURL"`
	ExplorerAPIKey string        `mapstructure:"explorerAPIKey"`
	Timeout        time.Duration `mapstructure:"timeout"`
	CacheExpiry    time.Duration `mapstructure:"cacheExpiry"`
	Node           *NodeConfig   `mapstructure:"node"`
}

type NodeConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

type GatewayConfig struct {
	Mode            string        `mapstructure:"mode"`
	Command         string        `mapstructure:"command"`
	Args            []string      `mapstructure:"args"`
	Timeout         time.Duration `mapstructure:"timeout"`
	ContractVersion string        `mapstructure:"contractVersion"`
}

type JobsConfig struct {
	VerifyWorkers   int           `mapstructure:"verifyWorkers"`
	MaxRetryElapsed time.Duration `mapstructure:"maxRetryElapsed"`
	SweepSchedule   string        `mapstructure:"sweepSchedule"`
}
