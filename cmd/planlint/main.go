package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/planforge/planlint/internal/core/rules"
	"github.com/planforge/planlint/internal/core/validation"
	"github.com/planforge/planlint/internal/shell/planfile"
	"github.com/planforge/planlint/internal/shell/report"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess     = 0
	ExitIssuesFound = 1
	ExitConfigError = 2
	ExitInputError  = 3
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to config file")
	mode := flag.String("mode", "", "Validation mode: edit, save, publish or load")
	format := flag.String("format", "", "Report format: text or json")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	// Handle version flag
	if *showVersion {
		fmt.Printf("planlint %s (built %s)\n", Version, BuildTime)
		return ExitSuccess
	}

	// Load configuration
	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	// Flags override file and environment
	if *mode != "" {
		cfg.Lint.Mode = *mode
	}
	if *format != "" {
		cfg.Lint.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		return ExitConfigError
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: planlint [flags] <plan-file>...")
		return ExitConfigError
	}

	// Setup logger
	logger := SetupLogger(cfg)
	runID := uuid.New().String()
	logger = logger.With("run_id", runID)
	logger.Info("starting planlint",
		"version", Version,
		"mode", cfg.Lint.Mode,
		"files", flag.NArg(),
	)

	// Load plan documents
	doc, err := planfile.LoadAll(flag.Args())
	if err != nil {
		var perr *planfile.ParseError
		if errors.As(err, &perr) {
			logger.Error("failed to load plan", "path", perr.Path, "error", perr.Err)
		} else {
			logger.Error("failed to load plan", "error", err)
		}
		return ExitInputError
	}

	// Run validation
	vmode := validation.Mode(cfg.Lint.Mode)
	result := validation.Run(doc, rules.Catalog(), vmode)
	logger.Info("validation complete",
		"issues", result.Summary.TotalCount,
		"critical", result.Summary.CriticalCount,
		"blocking", result.Summary.BlockingCount,
		"info", result.Summary.InfoCount,
		"can_save", result.CanSave,
		"can_publish", result.CanPublish,
	)

	// Render report
	outFormat, _ := report.ParseFormat(cfg.Lint.Format)
	if err := report.Write(os.Stdout, result, outFormat); err != nil {
		logger.Error("failed to write report", "error", err)
		return ExitInputError
	}

	if failed(result, cfg.Lint.FailOn) {
		return ExitIssuesFound
	}
	return ExitSuccess
}

// failed decides whether the run fails under the configured policy.
func failed(result validation.Result, failOn string) bool {
	if failOn == "any" {
		return result.Summary.TotalCount > 0
	}
	return result.HasCritical
}
