package validation

import "github.com/planforge/planlint/internal/core/plan"

// =============================================================================
// Engine
// =============================================================================

// Run executes one validation pass: it builds the shared context,
// filters the catalog to rules applicable in the given mode, evaluates
// every season, then every block, then every week against its
// applicable rules (entity-outer, rule-inner), and reduces the
// accumulated issues into severity aggregates and the save/publish
// gates. A run is total and deterministic; it cannot fail.
func Run(doc plan.Document, catalog Catalog, mode Mode) Result {
	ctx := NewContext(doc, mode)
	issues := make([]Issue, 0)

	for _, season := range ctx.Seasons {
		for _, rule := range catalog.Seasons {
			if !rule.AppliesTo(mode) {
				continue
			}
			if issue := rule.Check(season, ctx); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}

	for _, block := range ctx.Blocks {
		for _, rule := range catalog.Blocks {
			if !rule.AppliesTo(mode) {
				continue
			}
			if issue := rule.Check(block, ctx); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}

	for _, week := range ctx.Weeks {
		for _, rule := range catalog.Weeks {
			if !rule.AppliesTo(mode) {
				continue
			}
			if issue := rule.Check(week, ctx); issue != nil {
				issues = append(issues, *issue)
			}
		}
	}

	return reduce(issues)
}

// =============================================================================
// Aggregation
// =============================================================================

// reduce partitions issues by severity and computes the lifecycle
// gates: critical issues block saving; any issue blocks publishing.
func reduce(issues []Issue) Result {
	summary := Summary{TotalCount: len(issues)}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			summary.CriticalCount++
		case SeverityBlocking:
			summary.BlockingCount++
		case SeverityInfo:
			summary.InfoCount++
		}
	}

	return Result{
		Issues:      issues,
		HasCritical: summary.CriticalCount > 0,
		HasBlocking: summary.BlockingCount > 0,
		HasInfo:     summary.InfoCount > 0,
		CanSave:     summary.CriticalCount == 0,
		CanPublish:  summary.TotalCount == 0,
		Summary:     summary,
	}
}
