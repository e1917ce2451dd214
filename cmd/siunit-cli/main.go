// Command siunit-cli parses, inspects and tabulates temperature readings.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/paveg/siunit"
	"github.com/paveg/siunit/internal/config"
	"github.com/paveg/siunit/internal/logging"
	"github.com/paveg/siunit/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	jsonOutput bool

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	a := &app{logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "siunit-cli",
		Short: "siunit - temperature arrays on Apache Arrow",
		Long: `siunit-cli parses temperature readings into Celsius arrays and reports on them.
Readings may be plain numbers ("21.5"), Celsius strings ("21.5 ℃", "21.5°C"),
Fahrenheit strings ("70°F") or "nan" for a missing reading. Put readings that
start with a minus sign after "--" so they are not taken for flags.

Example:
  siunit-cli parse 24 25 26.3 "27°C"
  siunit-cli parse -- -5 "-3.5°C" 2
  siunit-cli frame --take 2,-1 24 25 nan`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a JSON or YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the configuration")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Write results as JSON")

	root.AddCommand(
		newVersionCommand(a),
		newParseCommand(a),
		newUniqueCommand(a),
		newDescribeCommand(a),
		newDtypeCommand(a),
		newFrameCommand(a),
	)
	return root
}

// setup resolves configuration from the environment, an optional file and
// flags, then installs it library-wide and builds the logger.
func (a *app) setup() error {
	cfg := config.LoadFromEnv()
	if a.configPath != "" {
		loaded, err := config.LoadFromFile(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := siunit.SetConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.FromConfig(cfg)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		zap.String("source", a.configPath),
		zap.Bool("copy_on_construct", cfg.CopyOnConstruct),
		zap.Int("max_display_items", cfg.MaxDisplayItems))
	return nil
}

func (a *app) writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Info()
			fields := []zap.Field{
				zap.String("user_agent", version.UserAgent()),
				zap.Bool("release", version.IsRelease()),
				zap.Bool("prerelease", version.IsPreRelease()),
			}
			if sv, err := version.ParseSemVer(info.Version); err == nil {
				fields = append(fields, zap.Int("major", sv.Major), zap.Int("minor", sv.Minor))
			}
			a.logger.Debug("build", fields...)
			if a.jsonOutput {
				return a.writeJSON(cmd.OutOrStdout(), info)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}
