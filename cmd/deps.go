package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/abhisek/mindcheck/internal/assessment"
	"github.com/abhisek/mindcheck/internal/classify"
	"github.com/abhisek/mindcheck/internal/guidance"
	"github.com/abhisek/mindcheck/internal/llm"
	"github.com/abhisek/mindcheck/internal/questionnaire"
	"github.com/abhisek/mindcheck/internal/scoring"
	"github.com/abhisek/mindcheck/internal/store"
)

// serviceOptions selects how the assessment service is wired.
type serviceOptions struct {
	// Events records assessments and LLM calls. May be nil.
	Events store.EventRepo

	// NoLLM skips provider discovery entirely.
	NoLLM bool

	// Classifier, when set, replaces the LLM classifier.
	Classifier classify.Classifier

	// Status receives provider discovery problems, once, at startup.
	Status io.Writer

	// Warnings receives non-fatal problems from the pipeline.
	Warnings io.Writer
}

// newService builds the assessment service. A missing or broken LLM
// configuration is reported on Status and leaves the rule engine, the
// safety override and the static guidance in charge.
func newService(ctx context.Context, opts serviceOptions) (*assessment.Service, error) {
	var provider llm.Provider
	if !opts.NoLLM {
		p, err := llm.NewProviderFromEnv(ctx, opts.Events)
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			fmt.Fprintln(opts.Status, "warning: no LLM provider configured; using rule-based scoring and built-in guidance")
		case err != nil:
			fmt.Fprintf(opts.Status, "warning: LLM provider unavailable: %v\n", err)
		default:
			provider = p
		}
	}

	catalog := guidance.DefaultCatalog()
	classifier := opts.Classifier
	var advisor *guidance.Advisor
	if provider != nil {
		if classifier == nil {
			classifier = classify.NewLLMClassifier(provider, classify.DefaultLLMConfig())
		}
		advisor = guidance.NewAdvisor(
			guidance.NewLLMExplainer(provider),
			guidance.NewLLMLookup(provider, catalog),
			catalog,
		)
	} else {
		advisor = guidance.NewAdvisor(nil, nil, catalog)
	}
	advisor.SetWarnings(opts.Warnings)

	return assessment.NewService(assessment.Options{
		Schema:     questionnaire.Default(),
		Thresholds: scoring.DefaultThresholds(),
		Classifier: classifier,
		Advisor:    advisor,
		Events:     opts.Events,
		Warnings:   opts.Warnings,
	})
}
