package main

import (
	"fmt"
	"strings"

	"github.com/envirosense/actionserver"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of actionsd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("actionsd version %s\n", strings.TrimSpace(actionserver.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
