package main

import (
	"fmt"
	"os"

	"github.com/envirosense/actionserver"
	"github.com/envirosense/actionserver/internal/config"
	"github.com/spf13/cobra"
)

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the registered action names",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}

		server, err := actionserver.New(cfg)
		if err != nil {
			fmt.Printf("Failed to initialize action server: %v\n", err)
			os.Exit(1)
		}

		for _, name := range server.Actions() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(actionsCmd)
}
