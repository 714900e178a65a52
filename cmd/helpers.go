package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/aerolens/flighteval/internal/model"
	"github.com/aerolens/flighteval/internal/store"
)

// openStore creates the configured store backend and runs migrations.
func openStore(ctx context.Context) (store.Store, error) {
	var st store.Store
	var err error

	switch cfg.Store.Driver {
	case "sqlite", "":
		st, err = store.NewSQLite(cfg.Store.Path)
	case "postgres":
		st, err = store.NewPostgres(ctx, cfg.Store.DatabaseURL)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, err
	}
	return st, nil
}

// renderResult formats a run result as a fixed-width metrics table.
func renderResult(result *model.RunResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%-22s %6s %6s %6s %10s %8s %8s\n",
		"field", "total", "found", "right", "precision", "recall", "f1")
	for _, f := range model.ScoredFields {
		m := result.Fields[f]
		fmt.Fprintf(&b, "%-22s %6d %6d %6d %10.3f %8.3f %8.3f\n",
			string(f), m.Total, m.Extracted, m.Correct, m.Precision, m.Recall, m.F1)
	}

	fmt.Fprintf(&b, "\noverall weighted f1: %.4f\n", result.Overall)
	fmt.Fprintf(&b, "perfect matches:     %d/%d\n", result.Summary.PerfectMatches, result.Summary.Cases)
	fmt.Fprintf(&b, "cases with data:     %d/%d\n", result.Summary.WithData, result.Summary.Cases)
	fmt.Fprintf(&b, "average grade:       %.4f\n", result.Summary.AvgGrade)

	if flagged := flaggedCases(result); len(flagged) > 0 {
		b.WriteString("\nflagged for review:\n")
		for _, line := range flagged {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}
	return b.String()
}

// flaggedCases lists every case that carries review flags, one line each.
func flaggedCases(result *model.RunResult) []string {
	var lines []string
	for i := range result.Cases {
		c := &result.Cases[i]
		if len(c.Flags) == 0 {
			continue
		}
		flags := make([]string, len(c.Flags))
		for j, f := range c.Flags {
			flags[j] = string(f)
		}
		sort.Strings(flags)
		lines = append(lines, fmt.Sprintf("%s  [%s]", c.Query, strings.Join(flags, ", ")))
	}
	return lines
}
