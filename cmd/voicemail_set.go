package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dannywalker-afni-com/Wx/internal/log"
	"github.com/dannywalker-afni-com/Wx/internal/voicemail"
)

var (
	setInput string
	setVM    string
	setMode  string
	setDest  string
	setSleep float64
)

var voicemailSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Bulk-update voicemail settings for everyone in a roster CSV",
	Long: `Apply one voicemail settings change to each person in the roster via
PUT /v1/people/{id}/features/voicemail.

When voicemail is turned on, --mode picks where messages land:
  internal   Webex mailbox only
  copy       Webex mailbox plus an emailed copy (default)
  external   external mailbox only; not visible in the Webex App

The delivery address defaults to each row's email column; --dest
overrides it for every row. Failed rows are counted and the run
continues; the exit status is 1 when any row failed.`,
	Example: `  # Enable voicemail with an emailed copy
  wx voicemail set --vm on --mode copy

  # Disable voicemail everywhere
  wx voicemail set --vm off

  # External mailbox, one shared destination
  wx voicemail set --mode external --dest shared-vm@example.com`,
	Run: func(_ *cobra.Command, _ []string) {
		if setVM != "on" && setVM != "off" {
			log.Fatal(fmt.Sprintf("--vm must be 'on' or 'off', got %q", setVM))
		}
		mode, err := voicemail.ParseMode(setMode)
		if err != nil {
			log.Fatal(err)
		}

		api := initClient()

		setter := &voicemail.Setter{
			API:          api,
			InputPath:    setInput,
			Enable:       setVM == "on",
			Mode:         mode,
			DestOverride: setDest,
			Pause:        time.Duration(setSleep * float64(time.Second)),
		}
		summary, err := setter.Run()
		if err != nil {
			log.Fatal(err)
		}

		log.Info("Done. Total: %d  OK: %d  Failed: %d", summary.Total, summary.OK, summary.Failed)
		if summary.Failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	voicemailCmd.AddCommand(voicemailSetCmd)

	voicemailSetCmd.Flags().StringVar(&setInput, "csv", "email2personID.csv", "Roster CSV with email,personid columns")
	voicemailSetCmd.Flags().StringVar(&setVM, "vm", "on", "Turn voicemail on or off")
	voicemailSetCmd.Flags().StringVar(&setMode, "mode", "copy", "Storage mode when enabling: internal | copy | external")
	voicemailSetCmd.Flags().StringVar(&setDest, "dest", "", "Override destination email for all rows")
	voicemailSetCmd.Flags().Float64Var(&setSleep, "sleep", 0.2, "Seconds to pause between requests")
}
