package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dannywalker-afni-com/Wx/internal/log"
	"github.com/dannywalker-afni-com/Wx/internal/people"
)

var (
	resolveInput string
	resolveSleep float64
)

var peopleResolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Fill the personid column of a roster CSV from email addresses",
	Long: `Look up each email in the roster against /v1/people and write the
matching person id into the personid column, adding the column when
the file does not have one. The file is rewritten atomically.

Rows that already hold an id are left alone, so the command can be
re-run after fixing failures. Unresolvable rows are marked NOT_FOUND,
ERROR_<status> or ERROR_CONNECT so later commands skip them.`,
	Example: `  # Default roster file
  wx people resolve

  # Explicit path, slower pacing
  wx people resolve --csv roster.csv --sleep 0.5`,
	Run: func(_ *cobra.Command, _ []string) {
		api := initClient()

		resolver := &people.Resolver{
			API:   api,
			Path:  resolveInput,
			Pause: time.Duration(resolveSleep * float64(time.Second)),
		}
		if err := resolver.Run(); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	peopleCmd.AddCommand(peopleResolveCmd)

	peopleResolveCmd.Flags().StringVar(&resolveInput, "csv", "email2personID.csv", "Roster CSV with an email column")
	peopleResolveCmd.Flags().Float64Var(&resolveSleep, "sleep", 0.25, "Seconds to pause between lookups")
}
