package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/paveg/siunit"
	"github.com/paveg/siunit/internal/extension"
	"github.com/paveg/siunit/internal/temperature"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readings parses command arguments into an array. The caller releases it.
func (a *app) readings(args []string) (*siunit.TemperatureArray, error) {
	arr, err := siunit.NewArray(args)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("parsed readings", zap.Int("count", arr.Len()), zap.Bool("has_na", arr.HasNA()))
	return arr, nil
}

func (a *app) printArray(cmd *cobra.Command, arr *siunit.TemperatureArray) error {
	if a.jsonOutput {
		data, err := arr.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), arr.FormatTruncated(a.cfg.MaxDisplayItems))
	return err
}

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse READING...",
		Short: "Parse readings into a Celsius array",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := a.readings(args)
			if err != nil {
				return err
			}
			defer arr.Release()
			return a.printArray(cmd, arr)
		},
	}
}

func newUniqueCommand(a *app) *cobra.Command {
	var sorted bool

	cmd := &cobra.Command{
		Use:   "unique READING...",
		Short: "Print distinct readings in first-seen order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := a.readings(args)
			if err != nil {
				return err
			}
			defer arr.Release()

			uniques := arr.Unique()
			defer uniques.Release()

			if sorted {
				ordered, err := uniques.Take(uniques.Argsort(true), nil)
				if err != nil {
					return err
				}
				defer ordered.Release()
				return a.printArray(cmd, ordered)
			}
			return a.printArray(cmd, uniques)
		},
	}

	cmd.Flags().BoolVar(&sorted, "sorted", false, "Sort ascending with NA last")
	return cmd
}

// summary is the describe report.
type summary struct {
	Count   int      `json:"count"`
	Missing int      `json:"missing"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Mean    *float64 `json:"mean"`
}

func celsiusOrNil(v temperature.Value) *float64 {
	if v.IsNA() {
		return nil
	}
	c := v.Celsius()
	return &c
}

func describe(arr *siunit.TemperatureArray) summary {
	missing := 0
	for _, na := range arr.IsNA() {
		if na {
			missing++
		}
	}
	return summary{
		Count:   arr.Len(),
		Missing: missing,
		Min:     celsiusOrNil(arr.Min()),
		Max:     celsiusOrNil(arr.Max()),
		Mean:    celsiusOrNil(arr.Mean()),
	}
}

func formatStat(v *float64) string {
	if v == nil {
		return siunit.NA().String()
	}
	return siunit.C(*v).String()
}

func newDescribeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe READING...",
		Short: "Summarize readings, skipping missing values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arr, err := a.readings(args)
			if err != nil {
				return err
			}
			defer arr.Release()

			s := describe(arr)
			if a.jsonOutput {
				return a.writeJSON(cmd.OutOrStdout(), s)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "count\t%d\n", s.Count)
			fmt.Fprintf(w, "missing\t%d\n", s.Missing)
			fmt.Fprintf(w, "min\t%s\n", formatStat(s.Min))
			fmt.Fprintf(w, "max\t%s\n", formatStat(s.Max))
			fmt.Fprintf(w, "mean\t%s\n", formatStat(s.Mean))
			return w.Flush()
		},
	}
}

func newDtypeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dtype NAME",
		Short: "Resolve a dtype name through the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := siunit.NewRegistry(a.logger)
			defer func() { _ = registry.Close() }()

			dtype, err := registry.ConstructFromString(args[0])
			if err != nil {
				return err
			}

			info := map[string]string{
				"name":  dtype.DtypeName(),
				"kind":  dtype.Kind(),
				"arrow": extension.NewCelsiusType().String(),
			}
			if a.jsonOutput {
				return a.writeJSON(cmd.OutOrStdout(), info)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "name: %s\nkind: %s\narrow: %s\n",
				info["name"], info["kind"], info["arrow"])
			return err
		},
	}
}

func newFrameCommand(a *app) *cobra.Command {
	var (
		take      []int
		allowFill bool
		asCSV     bool
		column    string
		file      string
	)

	cmd := &cobra.Command{
		Use:   "frame [READING...]",
		Short: "Tabulate readings against an hour column, or a CSV file",
		Args: func(cmd *cobra.Command, args []string) error {
			if file == "" && len(args) == 0 {
				return fmt.Errorf("requires readings or --file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			df, err := a.frame(file, column, args)
			if err != nil {
				return err
			}
			defer df.Release()

			if cmd.Flags().Changed("take") {
				taken, err := df.Take(take, allowFill)
				if err != nil {
					return err
				}
				defer taken.Release()
				a.logger.Debug("reindexed frame", zap.Ints("indices", take), zap.Bool("allow_fill", allowFill))
				df = taken
			}

			switch {
			case a.jsonOutput:
				return a.writeJSON(cmd.OutOrStdout(), frameRecords(df))
			case asCSV:
				return writeCSV(cmd, df)
			default:
				return writeTable(cmd, df)
			}
		},
	}

	cmd.Flags().IntSliceVar(&take, "take", nil, "Reindex rows by position, e.g. --take 2,0")
	cmd.Flags().BoolVar(&allowFill, "allow-fill", true, "Treat -1 in --take as a missing row")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write the frame as CSV")
	cmd.Flags().StringVar(&column, "column", "Average Temperature", "Name of the temperature column")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read the frame from a CSV file; --column is parsed as temperatures")
	return cmd
}

// frame reads the CSV file when one is given, otherwise it pairs the readings
// with an hour column.
func (a *app) frame(file, column string, args []string) (*siunit.DataFrame, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		opts := siunit.DefaultCSVOptions()
		opts.TemperatureColumns = []string{column}
		df, err := siunit.ReadCSV(f, opts, nil)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("read frame", zap.String("file", file), zap.Strings("columns", df.Columns()))
		return df, nil
	}

	arr, err := a.readings(args)
	if err != nil {
		return nil, err
	}

	hours := make([]int64, arr.Len())
	for i := range hours {
		hours[i] = int64(i + 1)
	}
	return siunit.NewDataFrame(
		siunit.NewSeries("Hour", hours, nil),
		siunit.NewTemperatureSeries(column, arr),
	), nil
}

func frameRecords(df *siunit.DataFrame) []map[string]string {
	columns := df.Columns()
	rows := df.Rows(-1)
	records := make([]map[string]string, len(rows))
	for i, row := range rows {
		record := make(map[string]string, len(columns))
		for j, name := range columns {
			record[name] = row[j]
		}
		records[i] = record
	}
	return records
}

func writeCSV(cmd *cobra.Command, df *siunit.DataFrame) error {
	opts := siunit.DefaultCSVOptions()
	opts.Index = true
	return df.WriteCSV(cmd.OutOrStdout(), opts)
}

func writeTable(cmd *cobra.Command, df *siunit.DataFrame) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, df.String())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\t"+strings.Join(df.Columns(), "\t"))
	for i, row := range df.Rows(-1) {
		fmt.Fprintf(w, "%d\t%s\n", i, strings.Join(row, "\t"))
	}
	return w.Flush()
}
