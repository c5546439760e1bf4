package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ESCROW"

var (
	ErrConfigFailedToSetDefaults = errors.New("error occurred while setting defaults")
	ErrConfigPath                = errors.New("config path error")
	ErrConfigFailedToDump        = errors.New("failed to dump config")
)

func Load(configFileDirs ...string) (*EscrowConfig, error) {
	escrowConfig := getDefaultEscrowConfig()

	err := setDefaults(escrowConfig)
	if err != nil {
		return nil, err
	}

	err = overrideWithFiles(configFileDirs...)
	if err != nil {
		return nil, err
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err = viper.Unmarshal(escrowConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = overrideWithSettlementEnv(escrowConfig)
	if err != nil {
		return nil, err
	}

	if escrowConfig.Tracing != nil && len(escrowConfig.Tracing.Attributes) > 0 {
		tracingAttributes := make([]attribute.KeyValue, 0, len(escrowConfig.Tracing.Attributes))
		for key, value := range escrowConfig.Tracing.Attributes {
			tracingAttributes = append(tracingAttributes, attribute.String(key, value))
		}

		escrowConfig.Tracing.KeyValueAttributes = tracingAttributes
	}

	return escrowConfig, nil
}

// overrideWithSettlementEnv applies the flat settlement variables operators already use for fee and
// confirmation settings. They take precedence over files and prefixed variables.
func overrideWithSettlementEnv(cfg *EscrowConfig) error {
	for name, target := range map[string]*uint64{
		"ARBITRATION_FEE":   &cfg.Fees.ArbitrationFee,
		"TRADING_FEE":       &cfg.Fees.TradingFee,
		"MIN_CONFIRMATIONS": &cfg.Verifier.MinConfirmations,
	} {
		value, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
		*target = parsed
	}

	if value, ok := os.LookupEnv("APPEAL_COOLDOWN_MINUTES"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid value for APPEAL_COOLDOWN_MINUTES: %s", value)
		}
		cfg.Appeal.CooldownMinutes = parsed
	}

	return nil
}

// DumpConfig writes the currently effective settings as yaml.
func DumpConfig(configFile string) error {
	data, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return errors.Join(ErrConfigFailedToDump, err)
	}

	err = os.WriteFile(configFile, data, 0o600)
	if err != nil {
		return errors.Join(ErrConfigFailedToDump, err)
	}

	return nil
}

func setDefaults(defaultConfig *EscrowConfig) error {
	defaultsMap := make(map[string]interface{})

	if err := mapstructure.Decode(defaultConfig, &defaultsMap); err != nil {
		return errors.Join(ErrConfigFailedToSetDefaults, err)
	}

	for key, value := range defaultsMap {
		viper.SetDefault(key, value)
	}

	return nil
}

func overrideWithFiles(configFileDirs ...string) error {
	if len(configFileDirs) == 0 || configFileDirs[0] == "" {
		return nil
	}

	for _, path := range configFileDirs {
		stat, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Join(ErrConfigPath, fmt.Errorf("path: %s does not exist", path))
			}
			return err
		}
		if !stat.IsDir() {
			return errors.Join(ErrConfigPath, fmt.Errorf("path: %s should be a directory", path))
		}

		viper.AddConfigPath(path)
	}

	return viper.ReadInConfig()
}
