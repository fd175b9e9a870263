package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/abhisek/mindcheck/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded assessments",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryAssessments(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No assessments recorded yet.")
			return nil
		}

		printAssessmentEvents(out, events)
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one assessment by ID or unique ID prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetAssessment(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get assessment: %w", err)
		}
		if e == nil {
			return fmt.Errorf("assessment %q not found", args[0])
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(e)
		}
		printAssessmentEvent(out, e)
		return nil
	},
}

func printAssessmentEvents(w io.Writer, events []store.AssessmentEvent) {
	t := table{w: w, cols: []column{
		{title: "ID", width: 8},
		{title: "Time", width: 16},
		{title: "Result", width: 22},
		{title: "Decided by", width: 15},
		{title: "Label"},
	}}
	t.header(90)
	for _, e := range events {
		label := truncate(e.Label, 24)
		if e.CrisisShown {
			label += "  (crisis resources shown)"
		}
		t.row(e.AssessmentID, localTime(e.Timestamp, timeMinute), e.FinalVerdict, e.Source, label)
	}
}

func printAssessmentEvent(w io.Writer, e *store.AssessmentEvent) {
	classifier := e.ClassifierVerdict
	if !e.ClassifierAvailable {
		classifier = "unavailable"
	}

	f := fields{w: w, width: 13}
	f.add("ID", "%s", e.AssessmentID)
	f.add("Time", "%s", localTime(e.Timestamp, timeSecond))
	if e.Label != "" {
		f.add("Label", "%s", e.Label)
	}
	f.add("Result", "%s", e.FinalVerdict)
	f.add("Decided by", "%s", e.Source)
	f.add("Rules", "%s", e.RuleVerdict)
	f.add("Classifier", "%s", classifier)
	f.add("Self-harm", "%d", e.Safety)
	f.add("Crisis info", "%v", e.CrisisShown)

	names := make([]string, 0, len(e.Scores))
	for k := range e.Scores {
		names = append(names, k)
	}
	slices.Sort(names)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Scores")
	rule(w, 40)
	t := table{w: w, cols: []column{{width: 24}, {width: 5, right: true}}}
	for _, n := range names {
		t.row(n, e.Scores[n])
	}

	answers := make([]string, len(e.Responses))
	for i, r := range e.Responses {
		answers[i] = fmt.Sprint(r)
	}
	fmt.Fprintln(w)
	f.add("Answers", "%s", strings.Join(answers, ","))
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show")
	historyViewCmd.Flags().Bool("json", false, "Print the stored record as JSON")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
