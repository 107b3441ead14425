// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/collocation/collocation"
	"github.com/katalvlaran/collocation/matrix"
)

// app carries the state resolved in PersistentPreRunE.
type app struct {
	log      *zap.Logger
	settings Settings
}

// NewCmd builds the collocate command tree.
func NewCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "collocate [command] [flags] [args]",
		Short:         "collocate estimates measurement errors of collocated systems",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.flush,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print(cmd.UsageString())
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "`<path>` to a config file (yaml, toml or json)")
	pf.String("log-level", "info", "`<level>` debug, info, warn or error")
	pf.String("log-format", "console", "`<format>` console or json")
	pf.Bool("drop-incomplete", false, "drop rows with missing or non-finite values before estimation")
	pf.StringP("format", "f", formatTable, "`<format>` of the result: table or csv")

	tcCmd := &cobra.Command{
		Use:   "tc [flags] <file.csv>",
		Short: "Triple collocation: error variance of 3 independent systems",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTC,
	}
	tcCmd.Flags().StringSlice("columns", nil, "`<a,b,c>` the 3 columns to use (default: first 3)")

	ecCmd := &cobra.Command{
		Use:   "ec [flags] <file.csv>",
		Short: "Extended collocation: error covariance of 3 or more systems",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runEC,
	}
	ecCmd.Flags().StringSlice("columns", nil, "`<a,b,...>` the columns to use (default: all)")
	ecCmd.Flags().String("groups", "", "`<0,0,1,2>` error-correlation group per column (default: all independent)")
	ecCmd.Flags().Bool("symmetric", false, "average (i,j) and (j,i)")

	rootCmd.AddCommand(tcCmd, ecCmd)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	v, err := LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if a.log, err = NewLogger(v); err != nil {
		return err
	}
	if a.settings, err = settingsFrom(v); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("config loaded", zap.String("file", used))
	}

	return nil
}

// flush writes out buffered log entries.
func (a *app) flush(*cobra.Command, []string) {
	_ = a.log.Sync()
}

// load reads the CSV, selects columns and applies the missing-value policy.
// With no explicit columns, the first firstN columns are used (all when
// firstN is 0).
func (a *app) load(path string, columns []string, firstN int) (*matrix.Dense, []string, error) {
	tbl, err := LoadCSV(path)
	if err != nil {
		return nil, nil, err
	}
	if len(columns) == 0 && firstN > 0 {
		if len(tbl.Header) < firstN {
			return nil, nil, fmt.Errorf("%s has %d columns, need %d: %w", path, len(tbl.Header), firstN, collocation.ErrNotTriplet)
		}
		columns = tbl.Header[:firstN]
	}
	x, names, err := tbl.Select(columns)
	if err != nil {
		return nil, nil, err
	}

	if a.settings.DropIncomplete {
		n := x.Rows()
		if x, err = collocation.CompleteRows(x); err != nil {
			return nil, nil, err
		}
		a.log.Debug("dropped incomplete rows", zap.Int("dropped", n-x.Rows()), zap.Int("kept", x.Rows()))
	} else if err = matrix.ValidateFinite(x); err != nil {
		a.log.Warn("samples contain missing or non-finite values; estimates may be NaN (see --drop-incomplete)",
			zap.String("file", path))
	}

	return x, names, nil
}

func (a *app) runTC(cmd *cobra.Command, args []string) error {
	columns, err := cmd.Flags().GetStringSlice("columns")
	if err != nil {
		return err
	}
	x, names, err := a.load(args[0], columns, collocation.TripletSystems)
	if err != nil {
		return err
	}
	if len(names) != collocation.TripletSystems {
		return fmt.Errorf("%d columns selected: %w", len(names), collocation.ErrNotTriplet)
	}
	cov, err := collocation.BuildCovariance(x)
	if err != nil {
		return err
	}
	st, err := collocation.TripleCollocationStats(cov)
	if err != nil {
		return err
	}

	a.log.Info("triple collocation",
		zap.String("file", args[0]),
		zap.Int("samples", x.Rows()),
		zap.Strings("systems", names))
	a.warnInvalid(names, st.ErrVar)
	renderTC(cmd.OutOrStdout(), a.settings.Format, names, st)

	return nil
}

func (a *app) runEC(cmd *cobra.Command, args []string) error {
	columns, err := cmd.Flags().GetStringSlice("columns")
	if err != nil {
		return err
	}
	groupSpec, err := cmd.Flags().GetString("groups")
	if err != nil {
		return err
	}
	symmetric, err := cmd.Flags().GetBool("symmetric")
	if err != nil {
		return err
	}

	x, names, err := a.load(args[0], columns, 0)
	if err != nil {
		return err
	}
	groups, err := parseGroups(groupSpec, len(names))
	if err != nil {
		return err
	}
	errCov, err := collocation.ExtendedCollocation(x, groups)
	if err != nil {
		return err
	}
	if symmetric {
		if errCov, err = collocation.SymmetrizeErrorCovariance(errCov); err != nil {
			return err
		}
	}

	a.log.Info("extended collocation",
		zap.String("file", args[0]),
		zap.Int("samples", x.Rows()),
		zap.Strings("systems", names),
		zap.Ints("groups", groups),
		zap.Bool("symmetric", symmetric))
	a.warnInvalid(names, collocation.ErrorVariances(errCov))
	renderEC(cmd.OutOrStdout(), a.settings.Format, names, errCov)

	return nil
}

// warnInvalid logs systems whose error variance is negative or non-finite.
func (a *app) warnInvalid(names []string, errVar []float64) {
	for _, i := range collocation.NegativeIndices(errVar) {
		a.log.Warn("negative error variance", zap.String("system", names[i]), zap.Float64("value", errVar[i]))
	}
	for _, i := range collocation.NonFiniteIndices(errVar) {
		a.log.Warn("non-finite error variance", zap.String("system", names[i]))
	}
}
