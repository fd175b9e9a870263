package guidance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/mindcheck/internal/scoring"
)

// ErrLookup marks a failed explanation or recommendation lookup. The
// Advisor recovers from it by substituting catalog content.
var ErrLookup = errors.New("resource lookup failed")

// Guidance is everything shown under a verdict.
type Guidance struct {
	Condition       scoring.Condition
	Explanation     string
	Recommendations Recommendations
	Apps            []App
	// Fallback is set when any part came from the catalog because a
	// generated part failed.
	Fallback bool
}

// Advisor combines an Explainer and a Lookup with catalog fallbacks.
// Nil collaborators mean "use the catalog".
type Advisor struct {
	explainer Explainer
	lookup    Lookup
	catalog   *Catalog
	warnings  io.Writer
}

func NewAdvisor(explainer Explainer, lookup Lookup, catalog *Catalog) *Advisor {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if explainer == nil {
		explainer = StaticExplainer{}
	}
	if lookup == nil {
		lookup = CatalogLookup{Catalog: catalog}
	}
	return &Advisor{explainer: explainer, lookup: lookup, catalog: catalog, warnings: os.Stderr}
}

// SetWarnings redirects fallback warnings. The TUI discards them because
// stderr would tear the screen.
func (a *Advisor) SetWarnings(w io.Writer) {
	a.warnings = w
}

// StaticAdvisor never calls out and never fails.
func StaticAdvisor() *Advisor {
	return NewAdvisor(nil, nil, nil)
}

// Catalog returns the catalog used for fallbacks.
func (a *Advisor) Catalog() *Catalog {
	return a.catalog
}

// Guide returns guidance for cond. It never fails: a failing collaborator
// is reported on stderr and replaced with catalog content.
func (a *Advisor) Guide(ctx context.Context, cond scoring.Condition) Guidance {
	g := Guidance{Condition: cond, Apps: a.catalog.Apps()}

	explanation, err := a.explainer.Explain(ctx, cond)
	if err != nil {
		a.warn(fmt.Errorf("%w: explanation: %w", ErrLookup, err))
		explanation = FallbackExplanation(cond)
		g.Fallback = true
	}
	g.Explanation = explanation

	recs, err := a.lookup.Lookup(ctx, cond)
	if err != nil || recs == nil {
		if err == nil {
			err = errors.New("no recommendations returned")
		}
		a.warn(fmt.Errorf("%w: recommendations: %w", ErrLookup, err))
		recs = a.catalog.Recommendations(cond)
		g.Fallback = true
	}
	if len(recs.Resources) == 0 {
		recs.Resources = a.catalog.Resources(cond)
	}
	g.Recommendations = *recs

	return g
}

func (a *Advisor) warn(err error) {
	fmt.Fprintf(a.warnings, "warning: %v\n", err)
}
