package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dannywalker-afni-com/Wx/internal/log"
	"github.com/dannywalker-afni-com/Wx/internal/voicemail"
)

var (
	listInput  string
	listOutput string
)

var voicemailListCmd = &cobra.Command{
	Use:   "list",
	Short: "Export voicemail parameters for everyone in a roster CSV",
	Long: `Fetch the voicemail configuration of each person in the roster and
write the flattened fields to a report CSV.

The roster needs an 'email' and a 'personid' column (run
'wx people resolve' first if the ids are missing). Rows without a
personid are skipped with a warning; rows whose API call fails are
logged and skipped. The report is rewritten from scratch on every
run.`,
	Example: `  # Default file names
  wx voicemail list

  # Explicit paths
  wx voicemail list --csv roster.csv --out vmParams.csv`,
	Run: func(_ *cobra.Command, _ []string) {
		api := initClient()

		lister := &voicemail.Lister{
			API:        api,
			InputPath:  listInput,
			OutputPath: listOutput,
		}
		if err := lister.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	voicemailCmd.AddCommand(voicemailListCmd)

	voicemailListCmd.Flags().StringVar(&listInput, "csv", "email2personID.csv", "Roster CSV with email,personid columns")
	voicemailListCmd.Flags().StringVar(&listOutput, "out", "userVoicemailParameters.csv", "Report CSV to write")
}
