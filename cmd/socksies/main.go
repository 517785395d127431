package main

import (
	"fmt"
	"os"

	"github.com/socksies/socksies/pkg/socksies"
	"github.com/spf13/cobra"
)

var (
	app        = socksies.NewApp()
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "socksies",
	Short:         "socksies - manage SSH SOCKS proxy tunnels",
	Long:          `Manage SOCKS proxies for jump hosts defined in a YAML configuration file`,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		app.Configure(configPath, logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the proxy config file (overrides $SOCKSIES_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level")

	rootCmd.AddCommand(socksies.NewListCommand(app))
	rootCmd.AddCommand(socksies.NewInfoCommand(app))
	rootCmd.AddCommand(socksies.NewStatusCommand(app))
	rootCmd.AddCommand(socksies.NewConnectCommand(app))
	rootCmd.AddCommand(socksies.NewDisconnectCommand(app))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
