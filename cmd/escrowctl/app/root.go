package app

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rampp2p/escrow/config"
)

var RootCmd = &cobra.Command{
	Use:   "escrowctl",
	Short: "operator tool for the escrow settlement engine",
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "directory to look for the escrow config")
	err := viper.BindPFlag("configDir", RootCmd.PersistentFlags().Lookup("config"))
	if err != nil {
		log.Fatal(err)
	}

	RootCmd.AddCommand(FeesCmd)
	RootCmd.AddCommand(MigrateCmd)
	RootCmd.AddCommand(VerifyCmd)
}

func Execute() error {
	return RootCmd.Execute()
}

func loadConfig() (*config.EscrowConfig, error) {
	return config.Load(viper.GetString("configDir"))
}
