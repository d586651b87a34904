package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "actionsd",
	Short: "actionsd is the EnviroSense conversational action server",
	Long:  `actionsd executes the custom actions behind the EnviroSense assistant: it receives intent webhooks from the dialogue engine, runs the matching handler, and returns responses plus dialogue-state events.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "actionsd.yaml", "Path to the configuration file")
}
