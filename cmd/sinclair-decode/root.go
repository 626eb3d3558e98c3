package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/config"
	"github.com/muurk/sinclair-decoder/internal/logging"
	"github.com/muurk/sinclair-decoder/internal/report"
	"github.com/muurk/sinclair-decoder/internal/version"
)

// flags shared by every command
type flags struct {
	configPath string
	format     string
	policy     string
	logLevel   string
	noLabels   bool
	showRaw    bool
	columns    int
	file       string
}

// settings is the effective configuration after flags are applied
type settings struct {
	cfg    *config.Config
	format report.Format
	policy capture.Policy
}

// reportOptions returns renderer options from the settings
func (s *settings) reportOptions() report.Options {
	return report.Options{
		PayloadColumns: s.cfg.Output.PayloadColumns,
		ShowRaw:        s.cfg.Output.ShowRaw,
	}
}

// processor builds a capture processor for the settings
func (s *settings) processor(opts ...capture.Option) *capture.Processor {
	opts = append(opts, capture.WithLabels(s.cfg.Decode.Labels))
	return capture.NewProcessor(s.policy, opts...)
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:   "sinclair-decode [hex bytes...]",
		Short: "Decode air conditioner UART frames from hex dumps",
		Long: `Decode the frames exchanged between an air conditioner controller and its
network gateway.

Input is hex text in any notation: separated by spaces, dots, commas or
colons, with or without 0x prefixes, or as one run of digits. Frames start
with 7E 7E, followed by a length byte, a command (0x01 SET, 0x31 REPORT),
the payload and a checksum.

Hex bytes are taken from the arguments, from --file (decoded line by line),
or from stdin.`,
		Example: `  # Decode a frame given on the command line
  sinclair-decode 7E 7E 2D 31 00 00 00 10 ...

  # Dotted notation as printed by device logs
  sinclair-decode 7E.7E.2F.01.00...

  # Every frame in a capture log, as JSON lines
  sinclair-decode --file capture.log --format json

  # Pipe from another tool
  grep 'RX:' device.log | sinclair-decode --file -`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, f, args)
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetVersionTemplate("sinclair-decode {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Config file (default: platform config dir)")
	pf.StringVar(&f.format, "format", "", "Output format: "+strings.Join(config.OutputFormats, ", "))
	pf.StringVar(&f.policy, "policy", "", "Decode policy: "+strings.Join(config.DecodePolicies, ", "))
	pf.StringVar(&f.logLevel, "log-level", "", "Log level on stderr: debug, info, warn, error")
	pf.BoolVar(&f.noLabels, "no-labels", false, "Omit swing position labels")
	pf.BoolVar(&f.showRaw, "show-raw", false, "Print the raw frame bytes")
	pf.IntVar(&f.columns, "columns", 0, "Payload hex bytes per row (0 = one row)")

	root.Flags().StringVarP(&f.file, "file", "f", "", "Decode a capture file line by line (- for stdin)")

	root.AddCommand(
		newDecodeCmd(f),
		newStatsCmd(f),
		newBrowseCmd(f),
		newConfigCmd(f),
		newVersionCmd(),
	)

	return root
}

// loadSettings loads the config file and applies command-line overrides.
// It also initializes logging, so it runs before any decoding.
func loadSettings(cmd *cobra.Command, f *flags) (*settings, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fl.Changed("policy") {
		cfg.Decode.Policy = f.policy
	}
	if fl.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if fl.Changed("no-labels") {
		cfg.Decode.Labels = !f.noLabels
	}
	if fl.Changed("show-raw") {
		cfg.Output.ShowRaw = f.showRaw
	}
	if fl.Changed("columns") {
		cfg.Output.PayloadColumns = f.columns
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	policy, err := capture.ParsePolicy(cfg.Decode.Policy)
	if err != nil {
		return nil, err
	}

	err = logging.InitializeWithOptions(logging.Options{
		Level: cfg.Logging.Level,
		File: logging.FileOptions{
			Filename:   cfg.Logging.File.Filename,
			MaxSizeMB:  cfg.Logging.File.MaxSizeMB,
			MaxBackups: cfg.Logging.File.MaxBackups,
			MaxAgeDays: cfg.Logging.File.MaxAgeDays,
			Compress:   cfg.Logging.File.Compress,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	logging.Debug("Settings loaded",
		zap.String("config", f.configPath),
		zap.String("format", format.String()),
		zap.String("policy", policy.String()),
		zap.Bool("labels", cfg.Decode.Labels),
	)

	return &settings{cfg: cfg, format: format, policy: policy}, nil
}
