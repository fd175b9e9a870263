package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/classify"
	"github.com/abhisek/mindcheck/internal/guidance"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Evaluate a completed questionnaire without the interactive UI",
	Long: `Evaluate 35 answers given on the command line or in a JSON file.

Answers are on the 0-3 scale (0 = not at all, 3 = nearly every day) in
question order; see "mindcheck questions". The file may hold either a JSON
array of answers or an object {"label": "...", "answers": [...]}. Use
--file - to read from stdin.`,
	Example: `  mindcheck assess --answers 0,1,0,0,2,0,0,0,1,1,1,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
  mindcheck assess --file answers.json --json --no-llm`,
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().String("answers", "", "Comma-separated answers, one per question")
	assessCmd.Flags().String("file", "", "Read answers from a JSON file (- for stdin)")
	assessCmd.Flags().String("label", "", "Free-form label stored with the result")
	assessCmd.Flags().Bool("json", false, "Print the result as JSON")
	assessCmd.Flags().Bool("no-llm", false, "Skip the language model; use rules and built-in guidance only")
	assessCmd.Flags().Bool("no-save", false, "Do not record the result in the database")
	assessCmd.Flags().String("classifier-verdict", "", "Use a fixed classifier verdict instead of the language model")
	assessCmd.MarkFlagsMutuallyExclusive("answers", "file")
}

// answerFile is the object form accepted by --file.
type answerFile struct {
	Label   string `json:"label"`
	Answers []int  `json:"answers"`
}

func runAssess(cmd *cobra.Command, args []string) error {
	answersFlag, _ := cmd.Flags().GetString("answers")
	fileFlag, _ := cmd.Flags().GetString("file")
	label, _ := cmd.Flags().GetString("label")
	asJSON, _ := cmd.Flags().GetBool("json")
	noLLM, _ := cmd.Flags().GetBool("no-llm")
	noSave, _ := cmd.Flags().GetBool("no-save")
	verdictFlag, _ := cmd.Flags().GetString("classifier-verdict")

	var answers []int
	var err error
	switch {
	case answersFlag != "":
		answers, err = parseAnswers(answersFlag)
	case fileFlag != "":
		var fileLabel string
		answers, fileLabel, err = readAnswerFile(cmd.InOrStdin(), fileFlag)
		if label == "" {
			label = fileLabel
		}
	default:
		return errors.New("provide answers with --answers or --file")
	}
	if err != nil {
		return err
	}

	opts := serviceOptions{
		NoLLM:    noLLM,
		Status:   cmd.ErrOrStderr(),
		Warnings: cmd.ErrOrStderr(),
	}
	if verdictFlag != "" {
		c, err := scoring.ParseCondition(verdictFlag)
		if err != nil || !classify.InUniverse(c) {
			return fmt.Errorf("invalid --classifier-verdict %q: want one of %s", verdictFlag, labelList())
		}
		opts.Classifier = classify.Fixed(c)
	}
	if !noSave {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		opts.Events = st.EventRepo()
	}

	ctx := cmd.Context()
	svc, err := newService(ctx, opts)
	if err != nil {
		return fmt.Errorf("build assessment service: %w", err)
	}

	a, err := svc.EvaluateLabeled(ctx, label, answers)
	if err != nil {
		return err
	}
	g := svc.Guide(ctx, a.Final())
	report := a.Report(&g, svc.CrisisLines())

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(out, a, report)
	return nil
}

// parseAnswers parses "3,3,0,..." allowing spaces around values.
func parseAnswers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for i, f := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i+1, strings.TrimSpace(f))
		}
		out = append(out, v)
	}
	return out, nil
}

// readAnswerFile reads answers from path ("-" is stdin) as a JSON array or
// an answerFile object.
func readAnswerFile(stdin io.Reader, path string) ([]int, string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("read answers: %w", err)
	}

	var list []int
	if err := json.Unmarshal(data, &list); err == nil {
		return list, "", nil
	}
	var obj answerFile
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, "", fmt.Errorf("parse answers %s: want a JSON array of numbers or {\"answers\": [...]}: %w", path, err)
	}
	return obj.Answers, obj.Label, nil
}

func labelList() string {
	labels := classify.Labels()
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

func printReport(w io.Writer, a *assessment.Assessment, r assessment.Report) {
	classifier := r.ClassifierVerdict
	if !r.ClassifierAvailable {
		classifier = "unavailable"
	}
	f := fields{w: w, width: 12}
	f.add("Result", "%s", r.Final)
	f.add("Decided by", "%s", r.Source)
	f.add("Rules", "%s", r.RuleVerdict)
	f.add("Classifier", "%s", classifier)
	if r.Label != "" {
		f.add("Label", "%s", r.Label)
	}
	f.add("ID", "%s", r.ID)

	if len(r.CrisisResources) > 0 {
		fmt.Fprintln(w)
		banner(w, "IF YOU ARE IN CRISIS, PLEASE REACH OUT NOW", 60)
		for _, l := range r.CrisisResources {
			fmt.Fprintf(w, "  %s\n", l)
		}
	}

	fmt.Fprintln(w)
	t := table{w: w, cols: []column{
		{title: "Category", width: 24},
		{title: "Score", width: 5, right: true},
		{title: "Max", width: 5, right: true},
		{title: "%", width: 5, right: true},
		{title: ""},
	}}
	t.header(60)
	elevated := make(map[string]bool, len(r.Elevated))
	for _, e := range r.Elevated {
		elevated[e] = true
	}
	for _, c := range r.Breakdown {
		mark := ""
		if elevated[c.Name] {
			mark = "elevated"
		}
		t.row(c.Title, c.Score, c.Max, fmt.Sprintf("%.0f%%", c.Percent), mark)
	}
	t.row("Self-harm item", a.Decision.Safety, 3, "", "")

	if r.Explanation != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, r.Explanation)
	}

	if recs := r.Recommendations; recs != nil {
		if len(recs.Strategies) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Daily practices:")
			for _, s := range recs.Strategies {
				fmt.Fprintf(w, "  - %s\n", s)
			}
			fmt.Fprintf(w, "  %s\n", guidance.PracticeTip)
		}
		if len(recs.Resources) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Learn more:")
			for _, res := range recs.Resources {
				fmt.Fprintf(w, "  - %s: %s\n", res.Title, res.Link)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, r.Disclaimer)
}
