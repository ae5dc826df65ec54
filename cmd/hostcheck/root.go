// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/hostname-checker/src/hostname"
	"github.com/H0llyW00dzZ/hostname-checker/src/report"
)

// errNoCandidates is returned when neither arguments nor --input supply
// anything to validate.
var errNoCandidates = errors.New("no candidates given")

type rootOptions struct {
	allowUnderscore bool
	denyIDNA        bool
	allowEmpty      bool
	configFile      string
	inputFile       string
	xlsxFile        string
	concurrency     int
	verbose         bool
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "hostcheck",
		Level:  log.WarnLevel,
	})
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "hostcheck [flags] [candidate...]",
		Short: "Validate Internet hostnames",
		Long: `hostcheck reports whether each candidate is a standards-compliant
Internet hostname: LDH labels, no leading or trailing hyphen, a final
label that is not all digits, with IDNA input converted to punycode.

Candidates come from the arguments and, with --input, from a file with
one candidate per line ("-" reads stdin, "#" starts a comment).

Policy defaults can be overridden by a YAML file given with --config:

  allow_underscore: true
  allow_idna: false
  allow_empty: false

Flags that are set explicitly take precedence over the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, o, logger)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&o.allowUnderscore, "allow-underscore", false, "allow '_' in the leftmost label")
	flags.BoolVar(&o.denyIDNA, "deny-idna", false, "reject non-ASCII candidates instead of converting them to punycode")
	flags.BoolVar(&o.allowEmpty, "allow-empty", false, "accept an empty candidate")
	flags.StringVar(&o.configFile, "config", "", "YAML policy file")
	flags.StringVarP(&o.inputFile, "input", "f", "", `file with one candidate per line ("-" for stdin)`)
	flags.StringVar(&o.xlsxFile, "xlsx", "", "also write an Excel report to this path")
	flags.IntVar(&o.concurrency, "concurrency", 0, "maximum concurrent validations (default 100)")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log every rejected candidate")

	return cmd
}

func run(cmd *cobra.Command, args []string, o *rootOptions, logger *log.Logger) error {
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	policy, err := resolvePolicy(cmd, o)
	if err != nil {
		return err
	}
	logger.Debug("policy resolved", "policy", policy)

	candidates := append([]string(nil), args...)
	if o.inputFile != "" {
		more, err := readCandidatesFile(cmd.InOrStdin(), o.inputFile)
		if err != nil {
			return err
		}
		candidates = append(candidates, more...)
	}
	if len(candidates) == 0 {
		return errNoCandidates
	}

	checker := hostname.New(
		hostname.WithPolicy(policy),
		hostname.WithConcurrency(o.concurrency),
		hostname.WithCache(nil),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := checker.Check(ctx, candidates...)
	if err != nil {
		return err
	}

	for _, r := range results {
		if !r.Valid {
			logger.Debug("rejected", "candidate", r.Candidate, "kind", r.Kind(), "err", r.Error)
		}
	}

	if err := report.WriteText(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if o.xlsxFile != "" {
		if err := writeXLSXFile(o.xlsxFile, results); err != nil {
			return err
		}
		logger.Info("report written", "path", o.xlsxFile)
	}

	summary := report.Summarize(results)
	logger.Info("done", "total", summary.Total, "valid", summary.Valid, "invalid", summary.Invalid)
	if summary.Invalid > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

// resolvePolicy loads --config, if any, and applies explicitly set flags
// on top of it.
func resolvePolicy(cmd *cobra.Command, o *rootOptions) (hostname.Policy, error) {
	policy := hostname.DefaultPolicy()
	if o.configFile != "" {
		f, err := os.Open(o.configFile)
		if err != nil {
			return hostname.Policy{}, err
		}
		defer f.Close()

		policy, err = hostname.LoadPolicy(f)
		if err != nil {
			return hostname.Policy{}, fmt.Errorf("%s: %w", o.configFile, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("allow-underscore") {
		policy.AllowUnderscore = o.allowUnderscore
	}
	if flags.Changed("deny-idna") {
		policy.AllowIDNA = !o.denyIDNA
	}
	if flags.Changed("allow-empty") {
		policy.AllowEmpty = o.allowEmpty
	}
	return policy, nil
}

func readCandidatesFile(stdin io.Reader, path string) ([]string, error) {
	if path == "-" {
		return readCandidates(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCandidates(f)
}

// readCandidates returns the non-blank, non-comment lines of r with
// surrounding whitespace removed.
func readCandidates(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

func writeXLSXFile(path string, results []hostname.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return report.WriteXLSX(f, results)
}
