package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pranav244872/jobboard/skillz"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var (
		required  string
		candidate string
		asJSON    bool
	)

	matchCmd := &cobra.Command{
		Use:   "match",
		Short: "Score a candidate's skills against a job's required skills",
		Example: `  jobboard match --required "Python, Django, React" --candidate "python, react"
  jobboard match --required "$(cat job.txt)" --candidate "$(cat profile.txt)" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			match := skillz.Compare(required, candidate)
			out := cmd.OutOrStdout()

			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(match)
			}

			fmt.Fprintf(out, "score:   %d%%\n", match.Score)
			fmt.Fprintf(out, "matched: %s\n", strings.Join(match.Matched, ", "))
			fmt.Fprintf(out, "missing: %s\n", strings.Join(match.Missing, ", "))
			return nil
		},
	}

	matchCmd.Flags().StringVarP(&required, "required", "r", "", "job's required skills (comma or newline separated)")
	matchCmd.Flags().StringVarP(&candidate, "candidate", "c", "", "candidate's skills (comma or newline separated)")
	matchCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print the result as JSON")

	return matchCmd
}
