// Version command for the trackline CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotcraft/trackline/pkg/trackline"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the trackline version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("trackline", trackline.Version)
	},
}
