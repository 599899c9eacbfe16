package app

import (
	"fmt"
	"strings"

	"go.trai.ch/forge/internal/core/domain"
)

// summarize renders the per-target results of a successful run.
func summarize(results []domain.TargetResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d target(s) built", len(results))
	for _, r := range results {
		fmt.Fprintf(&b, "\n  %s -> %s", r.PackageName, r.ManifestPath)
	}
	return b.String()
}
