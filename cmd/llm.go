package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/store"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect language model calls made for classification and guidance",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Purpose: purpose})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM events found.")
			return nil
		}
		printLLMEvents(out, events)
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		printLLMEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		printUsageByPurpose(out, byPurpose)
		if len(byModel) > 0 {
			fmt.Fprintln(out)
			printCostByModel(out, byModel)
		}
		return nil
	},
}

func printLLMEvents(w io.Writer, events []store.LLMEvent) {
	t := table{w: w, cols: []column{
		{title: "ID", width: 5},
		{title: "Timestamp", width: 19},
		{title: "Purpose", width: 12},
		{title: "Model", width: 28},
		{title: "In", width: 6, right: true},
		{title: "Out", width: 6, right: true},
		{title: "Ms", width: 7, right: true},
		{title: "OK"},
	}}
	t.header(100)
	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		t.row(e.ID, localTime(e.Timestamp, timeSecond), e.Purpose, e.Model,
			e.InputTokens, e.OutputTokens, e.LatencyMs, ok)
	}
}

func printLLMEvent(w io.Writer, e *store.LLMEvent) {
	f := fields{w: w, width: 11}
	f.add("ID", "%d", e.ID)
	f.add("Time", "%s", localTime(e.Timestamp, timeSecond))
	f.add("Provider", "%s", e.Provider)
	f.add("Model", "%s", e.Model)
	f.add("Purpose", "%s", e.Purpose)
	f.add("Tokens", "%d in / %d out", e.InputTokens, e.OutputTokens)
	f.add("Latency", "%dms", e.LatencyMs)
	f.add("Success", "%v", e.Success)
	if e.ErrorMessage != "" {
		f.add("Error", "%s", e.ErrorMessage)
	}

	fmt.Fprintln(w)
	banner(w, "REQUEST", 60)
	fmt.Fprintln(w, orNotCaptured(e.RequestBody))
	banner(w, "RESPONSE", 60)
	fmt.Fprintln(w, orNotCaptured(e.ResponseBody))
}

func printUsageByPurpose(w io.Writer, stats []store.PurposeUsage) {
	fmt.Fprintln(w, "Usage by Purpose")
	rule(w, 72)
	t := table{w: w, cols: []column{
		{title: "Purpose", width: 16},
		{title: "Calls", width: 6, right: true},
		{title: "Input", width: 10, right: true},
		{title: "Output", width: 10, right: true},
		{title: "Total", width: 10, right: true},
		{title: "Avg Ms", width: 8, right: true},
	}}
	t.header(72)

	var calls, in, out int
	for _, st := range stats {
		t.row(st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
		calls += st.Calls
		in += st.InputTokens
		out += st.OutputTokens
	}
	rule(w, 72)
	t.row("TOTAL", calls, in, out, in+out, "")
}

func printCostByModel(w io.Writer, usage []store.ModelUsage) {
	fmt.Fprintln(w, "Estimated Cost (USD)")
	rule(w, 72)
	t := table{w: w, cols: []column{
		{title: "Model", width: 32},
		{title: "Calls", width: 6, right: true},
		{title: "Input", width: 10, right: true},
		{title: "Output", width: 10, right: true},
		{title: "Cost", width: 10, right: true},
	}}
	t.header(72)

	var total float64
	var unpriced []string
	for _, mu := range usage {
		cost := "?"
		if p := llm.LookupCost(mu.Model); p != nil {
			c := p.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		t.row(mu.Model, mu.Calls, mu.InputTokens, mu.OutputTokens, cost)
	}

	rule(w, 72)
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	t.row(label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintf(w, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (classify, explain, strategies)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
