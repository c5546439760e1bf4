package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	t.Run("default load", func(t *testing.T) {
		// given
		viper.Reset()
		expectedConfig := getDefaultEscrowConfig()

		// when
		actualConfig, err := Load()
		require.NoError(t, err, "error loading config")

		// then
		assert.Equal(t, expectedConfig, actualConfig)
	})

	t.Run("partial file override", func(t *testing.T) {
		// given
		viper.Reset()
		expectedConfig := getDefaultEscrowConfig()

		// when
		actualConfig, err := Load("./test_files/")
		require.NoError(t, err, "error loading config")

		// then
		// not overridden
		assert.Equal(t, expectedConfig.Fees.DefaultContractFee, actualConfig.Fees.DefaultContractFee)
		assert.Equal(t, expectedConfig.API.Address, actualConfig.API.Address)
		assert.Equal(t, -1, actualConfig.MessageQueue.MaxReconnects)
		assert.Equal(t, 2*time.Second, actualConfig.MessageQueue.ReconnectWait)

		// overridden
		assert.Equal(t, "INFO", actualConfig.LogLevel)
		assert.Equal(t, "json", actualConfig.LogFormat)
		assert.Equal(t, DbModeMemory, actualConfig.Db.Mode)
		assert.Equal(t, uint64(500), actualConfig.Fees.ArbitrationFee)
		assert.Equal(t, uint64(300), actualConfig.Fees.TradingFee)
		assert.Equal(t, uint64(800), actualConfig.Fees.ContractFees["v2"])
		assert.Equal(t, uint64(2), actualConfig.Verifier.MinConfirmations)
		assert.Equal(t, 15*time.Minute, actualConfig.Appeal.Cooldown())
		assert.Equal(t, ChainSourceBoth, actualConfig.Chain.Source)
		assert.Equal(t, 5*time.Second, actualConfig.Chain.Timeout)
		assert.True(t, actualConfig.IsTracingEnabled())
		assert.Equal(t, "http://tracing:1234", actualConfig.Tracing.DialAddr)
		require.Len(t, actualConfig.Tracing.KeyValueAttributes, 1)
	})

	t.Run("settlement env override", func(t *testing.T) {
		// given
		viper.Reset()
		t.Setenv("ARBITRATION_FEE", "700")
		t.Setenv("TRADING_FEE", "200")
		t.Setenv("MIN_CONFIRMATIONS", "3")
		t.Setenv("APPEAL_COOLDOWN_MINUTES", "5")

		// when
		actualConfig, err := Load()
		require.NoError(t, err)

		// then
		assert.Equal(t, uint64(700), actualConfig.Fees.ArbitrationFee)
		assert.Equal(t, uint64(200), actualConfig.Fees.TradingFee)
		assert.Equal(t, uint64(3), actualConfig.Verifier.MinConfirmations)
		assert.Equal(t, 5*time.Minute, actualConfig.Appeal.Cooldown())
	})

	t.Run("invalid settlement env", func(t *testing.T) {
		// given
		viper.Reset()
		t.Setenv("TRADING_FEE", "-1")

		// when
		_, err := Load()

		// then
		require.Error(t, err)
	})

	t.Run("path does not exist", func(t *testing.T) {
		// given
		viper.Reset()

		// when
		_, err := Load("./does_not_exist/")

		// then
		require.ErrorIs(t, err, ErrConfigPath)
	})
}

func Test_DumpConfig(t *testing.T) {
	// given
	viper.Reset()
	_, err := Load()
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "dumped_config.yaml")

	// when
	err = DumpConfig(file)

	// then
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "arbitrationfee")
}
