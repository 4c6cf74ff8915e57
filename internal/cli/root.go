package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "host-insight",
		Short: "Host-scan summarization service",
		Long:  "host-insight aggregates host-scan security telemetry and serves AI-generated summaries over HTTP.",
	}

	// Global flags
	rootCmd.PersistentFlags().IntP("port", "p", 5000, "HTTP listen port")
	_ = viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))

	// Subcommands
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
