// Package cmd provides command-line interface commands for wx
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dannywalker-afni-com/Wx/internal/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wx",
	Short: "Bulk administration for Webex Calling",
	Long: `wx - Command-line batch operations against the Webex API

Feed it a roster CSV and it will run one API call per row, in row
order, reporting progress on the console.

Features:
  • Export per-user voicemail parameters to CSV
  • Bulk enable/disable voicemail with storage routing
  • Resolve person IDs from email addresses

Configuration comes from WEBEX_BASE, WEBEX_TOKEN and WEBEX_ORG_ID
(environment or .env), or from .wx/conf.yaml.`,
	Example: `  # Export voicemail parameters
  wx voicemail list

  # Turn voicemail on with an emailed copy
  wx voicemail set --vm on --mode copy

  # Fill the personid column of a roster
  wx people resolve --csv email2personID.csv`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Enable debug mode if flag is set
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add debug flag to root command
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}
