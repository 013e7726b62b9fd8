// Package rules contains the concrete validation rule catalog for
// training season plans, plus the registry that assembles it.
//
// Fourteen rule families cover the plan invariants:
//
//   - V01.1/.2/.3: required fields (season/block/week), CRITICAL
//   - V02.1/.2/.3: id uniqueness, CRITICAL
//   - V03.1/.2/.3: strict ISO-8601 date format, CRITICAL
//   - V04.1/.2: enum membership (season status, block phase), CRITICAL
//   - V05.1/.2: startDate strictly before endDate, CRITICAL
//   - V06: block date span inside its season, BLOCKING
//   - V07: week span (startDate..+6) inside its block, BLOCKING
//   - V08: season's blocks chronological and non-overlapping, BLOCKING
//   - V09: block's weeks chronological, BLOCKING
//   - V10: week starts on a Monday, BLOCKING
//   - V11: season.blockIds resolve to existing blocks, BLOCKING
//   - V12: block.weekIds resolve to existing weeks, BLOCKING
//   - V13: workout references resolve (with optional @vN pin), BLOCKING
//   - V14: block weekIds count matches back-references, INFO, load only
//
// Every rule is a pure check returning at most the first violation it
// finds, in a fixed field order. CRITICAL rules run in every mode;
// BLOCKING rules run in edit, publish and load; INFO rules run in load
// only.
package rules
