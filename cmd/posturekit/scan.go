package posturekit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/posturekit/posturekit/internal/audit"
	"github.com/posturekit/posturekit/internal/config"
	"github.com/posturekit/posturekit/internal/engine"
	"github.com/posturekit/posturekit/internal/history"
	"github.com/posturekit/posturekit/internal/report"
)

var (
	flagPath            string
	flagExclude         []string
	flagMaxBytes        int64
	flagFileTimeout     time.Duration
	flagAssessments     string
	flagMarkdownOut     string
	flagSystemName      string
	flagNoHistory       bool
	flagDefaultExcludes bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a codebase and score its security posture",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringSliceVar(&flagExclude, "exclude", nil, "exclusion globs (repeatable or comma-separated)")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 1 MiB)")
	cmd.Flags().DurationVar(&flagFileTimeout, "file-timeout", 0, "per-file detector budget (default 5s)")
	cmd.Flags().StringVar(&flagAssessments, "assessments", "", "YAML file of manual assessments merged before the scan")
	cmd.Flags().StringVar(&flagMarkdownOut, "markdown", "", "write a Markdown report to this path")
	cmd.Flags().StringVar(&flagSystemName, "system-name", "", "system name for the report header")
	cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "do not append this run to the history log")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, images, etc.)")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)

	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}

	cat, err := loadCatalog(pickString(flagCatalog, lcfg.Catalog, gcfg.Catalog))
	if err != nil {
		return err
	}

	a := audit.New(cat, resolveScope(lcfg, gcfg))

	// Manual assessments apply first; scan matches overwrite them for
	// any control the scan has direct evidence about.
	if flagAssessments != "" {
		entries, err := audit.LoadManifest(flagAssessments)
		if err != nil {
			return err
		}
		if err := a.ApplyManifest(entries); err != nil {
			return err
		}
	}

	cfg := engine.Config{
		Root:            abs,
		Exclude:         pickStrings(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		PerFileTimeout:  pickDuration(flagFileTimeout, lcfg.PerFileTimeout, gcfg.PerFileTimeout),
		Workers:         pickInt(flagWorkers, lcfg.Workers, gcfg.Workers),
		DefaultExcludes: flagDefaultExcludes,
	}
	if !cmd.Flags().Changed("default-excludes") {
		if lcfg.DefaultExcludes != nil {
			cfg.DefaultExcludes = *lcfg.DefaultExcludes
		} else if gcfg.DefaultExcludes != nil {
			cfg.DefaultExcludes = *gcfg.DefaultExcludes
		}
	}

	started := time.Now()
	res, err := engine.Scan(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if err := engine.Apply(a, res.Matches); err != nil {
		return err
	}

	warnings := make([]string, 0, len(res.Warnings))
	for _, w := range res.Warnings {
		warnings = append(warnings, fmt.Sprintf("%s: %s", w.Path, w.Reason))
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", w.Path, w.Reason)
	}

	rep := a.Report(warnings)

	if flagMarkdownOut != "" {
		f, err := os.Create(flagMarkdownOut)
		if err != nil {
			return err
		}
		if err := report.WriteMarkdown(f, rep); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if flagJSON {
		if err := report.WriteJSON(os.Stdout, rep); err != nil {
			return err
		}
	} else {
		report.PrintSummary(os.Stdout, rep, report.PrintOptions{
			NoColor:      pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
			Duration:     res.Duration,
			FilesScanned: res.FilesScanned,
		})
	}

	if !pickBool(flagNoHistory, lcfg.NoHistory, gcfg.NoHistory) {
		rec := history.NewRunRecord(abs, rep, res.FilesScanned, time.Since(started))
		if err := history.NewLog(abs).Append(rec); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	// Findings never fail the run; a completed scan exits zero.
	return nil
}

func resolveScope(lcfg, gcfg config.FileConfig) audit.Scope {
	var scope audit.Scope
	for _, sc := range []*config.ScopeConfig{gcfg.Scope, lcfg.Scope} {
		if sc == nil {
			continue
		}
		if sc.SystemName != nil {
			scope.SystemName = *sc.SystemName
		}
		if sc.PrimaryFunction != nil {
			scope.PrimaryFunction = *sc.PrimaryFunction
		}
		if len(sc.DataTypes) > 0 {
			scope.DataTypes = sc.DataTypes
		}
		if sc.Architecture != nil {
			scope.Architecture = *sc.Architecture
		}
		if sc.Environment != nil {
			scope.Environment = *sc.Environment
		}
		if len(sc.Frameworks) > 0 {
			scope.Frameworks = sc.Frameworks
		}
		if sc.UserBase != nil {
			scope.UserBase = *sc.UserBase
		}
		if sc.Criticality != nil {
			scope.Criticality = *sc.Criticality
		}
		if sc.Notes != nil {
			scope.Notes = *sc.Notes
		}
	}
	if flagSystemName != "" {
		scope.SystemName = flagSystemName
	}
	if scope.SystemName == "" {
		scope.SystemName = filepath.Base(flagPath)
		if scope.SystemName == "." || scope.SystemName == string(filepath.Separator) {
			if wd, err := os.Getwd(); err == nil {
				scope.SystemName = filepath.Base(wd)
			}
		}
	}
	return scope
}
