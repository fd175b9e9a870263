package cmd

import (
	"fmt"

	"github.com/abhisek/mindcheck/internal/questionnaire"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the numbered questionnaire and answer scale",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		s := questionnaire.Default()

		fmt.Fprintln(out, "Over the last 2 weeks, how often have you experienced the following?")
		fmt.Fprintln(out)
		for i, f := range questionnaire.Scale() {
			fmt.Fprintf(out, "  %d = %s\n", i, f)
		}

		for _, section := range s.Sections() {
			fmt.Fprintln(out)
			fmt.Fprintln(out, section)
			for _, it := range s.SectionItems(section) {
				fmt.Fprintf(out, "  %2d. %s\n", it.Index+1, it.Prompt)
			}
		}
	},
}
