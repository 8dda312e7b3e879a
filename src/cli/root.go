// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/verdict"
	x509certs "github.com/H0llyW00dzZ/keybox-integrity-checker/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/keybox-integrity-checker/src/logger"
)

// Output format names accepted by --format.
const (
	FormatReport = "report"
	FormatTree   = "tree"
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
)

var (
	// ErrInputFileRequired indicates no keybox XML file was given.
	ErrInputFileRequired = errors.New("cli: keybox XML input file is required")

	// ErrUnknownFormat indicates a --format value outside the known set.
	ErrUnknownFormat = errors.New("cli: unknown output format")
)

var (
	// OperationPerformed is set once a keybox has been read and evaluated,
	// regardless of the verdict.
	OperationPerformed bool

	// OperationPerformedSuccessfully is set once the report has been
	// rendered and delivered to its destination.
	OperationPerformedSuccessfully bool
)

var (
	inputFile    string
	outputFile   string
	strategyName string
	outputFormat string
	nowOverride  string
)

// Execute runs the root command, validating the keybox XML given via -f and
// rendering the resulting report in the requested format.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	rootCmd := &cobra.Command{
		Use:           "keybox-integrity-checker",
		Short:         "Android keybox chain classification and integrity validation",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, log)
		},
	}

	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "keybox XML file to validate (use '-' for stdin)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the report to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().StringVarP(&strategyName, "strategy", "s", verdict.StrategyCategorical, "validation strategy: categorical or score")
	rootCmd.Flags().StringVarP(&outputFormat, "format", "F", FormatReport, "output format: report, tree, table, json or yaml")
	rootCmd.Flags().StringVar(&nowOverride, "now", "", "evaluation instant as RFC 3339 or compact YYMMDDHHMMSSZ (default: current time)")

	return rootCmd.ExecuteContext(ctx)
}

// runValidate reads the keybox XML, evaluates it with the selected strategy
// and writes the rendered report.
func runValidate(cmd *cobra.Command, log logger.Logger) error {
	if inputFile == "" {
		return ErrInputFileRequired
	}

	raw, err := readInput(inputFile)
	if err != nil {
		return fmt.Errorf("cli: reading input: %w", err)
	}

	strategy, err := verdict.ForName(strategyName)
	if err != nil {
		return err
	}

	now := time.Now()
	if nowOverride != "" {
		if now, err = parseInstant(nowOverride); err != nil {
			return fmt.Errorf("cli: invalid --now value: %w", err)
		}
	}

	report, err := verdict.Validate(raw, strategy, now)
	if err != nil {
		return err
	}
	OperationPerformed = true

	rendered, err := render(report, outputFormat)
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, rendered, 0644); err != nil {
			return fmt.Errorf("cli: writing report: %w", err)
		}
		log.Printf("Report written to %s", outputFile)
	} else {
		log.Println(string(rendered))
	}

	OperationPerformedSuccessfully = true
	return nil
}

// readInput loads the keybox XML from a file, or from stdin when path is "-".
// A pooled buffer keeps repeated invocations (shell loops over many keyboxes)
// from churning allocations.
func readInput(path string) ([]byte, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	var src *os.File
	if path == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	}

	if _, err := buf.ReadFrom(src); err != nil {
		return nil, err
	}

	// Copy out: the buffer goes back to the pool.
	data := make([]byte, len(buf.Bytes()))
	copy(data, buf.Bytes())
	return data, nil
}

// parseInstant resolves the --now override. It accepts RFC 3339 or the
// compact calendar form keybox tooling emits ("YYMMDDHHMMSSZ" or
// "YYYYMMDDHHMMSSZ"); the 2-digit year of the short form goes through the
// default century rule.
func parseInstant(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return x509certs.ParseCompactTime(raw, nil)
}

// render serializes the report in the requested format.
func render(report *verdict.ValidationReport, format string) ([]byte, error) {
	switch format {
	case FormatReport:
		return []byte(renderReport(report)), nil
	case FormatTree:
		return []byte(report.RenderASCIITree()), nil
	case FormatTable:
		return []byte(report.RenderTable()), nil
	case FormatJSON:
		return report.ToJSON()
	case FormatYAML:
		return report.ToYAML()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// renderReport combines the chain tree with the full audit log, which is the
// most useful default for a human reading the terminal.
func renderReport(report *verdict.ValidationReport) string {
	out := report.RenderASCIITree()
	out += "\nAudit log:\n"
	for _, entry := range report.AuditLog {
		out += fmt.Sprintf("  [%s] %s\n", entry.Severity, entry.Message)
	}
	return out
}
