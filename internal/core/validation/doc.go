// Package validation provides the rule-based validation engine for
// training season plans.
//
// This package contains the functional core of plan validation. All
// functions are pure: a validation run is a deterministic function of
// the supplied entity collections, the rule catalog, and the active
// mode. Rules never mutate entities or the shared context, and the
// engine holds no state between runs.
//
// # Types
//
//   - Issue: one reported violation (severity, rule id, entity, field path, message)
//   - Result: the ordered issue list plus severity aggregates and the save/publish gates
//   - Context: the read-only cross-entity snapshot shared by all rule invocations in one run
//   - Rule: a typed rule bound to one entity kind and a set of modes
//   - Catalog: the per-entity-type rule registries
//
// # Usage
//
// The caller assembles a catalog (see internal/core/rules), bundles its
// entity collections into a plan.Document, and runs the engine:
//
//	result := validation.Run(doc, rules.Catalog(), validation.ModePublish)
//	if !result.CanPublish {
//	    // render result.Issues
//	}
package validation
