package cmd

import (
	"github.com/spf13/cobra"
)

var voicemailCmd = &cobra.Command{
	Use:     "voicemail",
	Aliases: []string{"vm"},
	Short:   "Voicemail operations",
	Long: `Batch voicemail operations driven by a roster CSV:
  - Exporting per-user voicemail parameters
  - Enabling or disabling voicemail with storage routing`,
	Example: `  # Export voicemail parameters
  wx voicemail list

  # Enable voicemail with an emailed copy of each message
  wx voicemail set --vm on --mode copy

  # Route messages to an external mailbox
  wx voicemail set --mode external --dest shared-vm@example.com`,
}

func init() {
	rootCmd.AddCommand(voicemailCmd)
}
