package cmd

import (
	"github.com/spf13/cobra"
)

var peopleCmd = &cobra.Command{
	Use:     "people",
	Aliases: []string{"p"},
	Short:   "People directory operations",
	Long: `Directory lookups against /v1/people:
  - Resolving person IDs for a roster of email addresses`,
	Example: `  # Fill the personid column in place
  wx people resolve --csv email2personID.csv`,
}

func init() {
	rootCmd.AddCommand(peopleCmd)
}
