// Package report renders a validation result for humans (text) or
// machines (JSON). The JSON form marshals the result verbatim: its
// field names are the external contract.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/planforge/planlint/internal/core/validation"
)

// =============================================================================
// Formats
// =============================================================================

// Format selects the output rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ErrUnknownFormat reports an unrecognised output format name.
var ErrUnknownFormat = errors.New("unknown report format (expected text or json)")

// ParseFormat validates a format name from config or flags.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON:
		return Format(name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// =============================================================================
// Rendering
// =============================================================================

// Write renders the result in the given format.
func Write(w io.Writer, result validation.Result, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, result)
	default:
		return WriteText(w, result)
	}
}

// WriteJSON renders the result as indented JSON.
func WriteJSON(w io.Writer, result validation.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// WriteText renders the result as a line-per-issue report followed by
// the severity summary and the save/publish gates, preserving engine
// issue order.
func WriteText(w io.Writer, result validation.Result) error {
	for _, issue := range result.Issues {
		if _, err := fmt.Fprintf(w, "%-8s %-6s %s %s: %s\n",
			issue.Severity, issue.RuleID, issue.EntityID, issue.FieldPath, issue.Message); err != nil {
			return err
		}
		if issue.SuggestedFix != "" {
			if _, err := fmt.Fprintf(w, "         fix: %s\n", issue.SuggestedFix); err != nil {
				return err
			}
		}
	}

	if result.Summary.TotalCount == 0 {
		_, err := fmt.Fprintln(w, "no issues found")
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%d issues: %d critical, %d blocking, %d info\n",
		result.Summary.TotalCount, result.Summary.CriticalCount,
		result.Summary.BlockingCount, result.Summary.InfoCount); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "save: %s, publish: %s\n",
		gateWord(result.CanSave), gateWord(result.CanPublish))
	return err
}

func gateWord(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "blocked"
}
