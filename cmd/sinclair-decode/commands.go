package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/sinclair-decoder/internal/browser"
	"github.com/muurk/sinclair-decoder/internal/capture"
	"github.com/muurk/sinclair-decoder/internal/config"
	"github.com/muurk/sinclair-decoder/internal/logging"
	"github.com/muurk/sinclair-decoder/internal/report"
	"github.com/muurk/sinclair-decoder/internal/ui"
	"github.com/muurk/sinclair-decoder/internal/version"
)

// stdinName selects stdin as --file argument
const stdinName = "-"

// errStdinTerminal is returned when there is nothing piped in to decode
var errStdinTerminal = errors.New("no input: pass hex bytes as arguments, use --file, or pipe hex text on stdin")

// Swapped out by tests
var (
	stdin            io.Reader = os.Stdin
	runBrowser                 = browser.Run
	stdoutIsTerminal           = ui.IsTerminal
)

func newDecodeCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [hex bytes...]",
		Short: "Decode frames from hex bytes, a file or stdin",
		Long: `Decode frames from hex bytes given as arguments, from a capture file or
from stdin. This is also what runs when no command is given.

Arguments are joined and decoded as a single blob. A file is decoded line
by line, so a capture log with one frame per line reports each of them.`,
		Example: `  sinclair-decode decode 7E7E2F01...
  sinclair-decode decode --file capture.log --format compact`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Decode a capture file line by line (- for stdin)")
	return cmd
}

func runDecode(cmd *cobra.Command, f *flags, args []string) error {
	s, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}

	w := report.NewWriter(cmd.OutOrStdout(), s.format, s.reportOptions())
	p := s.processor()

	if len(args) > 0 {
		if f.file != "" {
			return fmt.Errorf("hex arguments and --file are mutually exclusive")
		}
		return decodeBlob(cmd, p, w, strings.Join(args, " "))
	}

	if f.file == "" {
		if isTerminal(stdin) {
			return errStdinTerminal
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return decodeBlob(cmd, p, w, string(data))
	}

	r, closeFn, err := openInput(f.file)
	if err != nil {
		return err
	}
	defer closeFn()

	logging.Info("Decoding capture", zap.String("file", f.file), zap.String("policy", p.Policy().String()))

	err = p.ProcessReader(cmd.Context(), r, w.Write)
	if err != nil {
		return err
	}
	if w.Count() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No frames found")
	}
	return nil
}

// decodeBlob decodes text as one input and writes every result
func decodeBlob(cmd *cobra.Command, p *capture.Processor, w *report.Writer, text string) error {
	results, err := p.DecodeText(text)
	if errors.Is(err, capture.ErrNoHexBytes) {
		fmt.Fprintln(cmd.ErrOrStderr(), "No hex bytes found")
		return nil
	}
	if err != nil {
		return err
	}
	return w.WriteAll(results)
}

func newStatsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats [files...]",
		Short: "Summarize the frames in capture files",
		Long: `Decode capture files line by line and print a summary: frames per
command, payload sizes, checksum mismatches and decode failures with the
first few failing lines.

With no files, or with "-", the capture is read from stdin. Output is a
text summary unless --format is json or yaml.`,
		Example: `  sinclair-decode stats capture.log
  cat *.log | sinclair-decode stats --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, f, args)
		},
	}
}

func runStats(cmd *cobra.Command, f *flags, args []string) error {
	s, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{stdinName}
	}

	stats := capture.NewStats()
	p := s.processor(capture.WithStats(stats))
	discard := func(capture.Result) error { return nil }

	for _, name := range args {
		r, closeFn, err := openInput(name)
		if err != nil {
			return err
		}
		before := stats.LinesWithHex
		err = p.ProcessReader(cmd.Context(), r, discard)
		closeFn()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if stats.LinesWithHex == before {
			logging.Warn("Capture holds no hex bytes", zap.String("file", name))
		}
		logging.Debug("Capture summarized",
			zap.String("file", name),
			zap.Int("lines", stats.Lines),
			zap.Int("decoded", stats.Decoded),
		)
	}

	return report.WriteStats(cmd.OutOrStdout(), stats, s.format)
}

func newBrowseCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse the decoded frames of a capture interactively",
		Long: `Decode a capture file line by line and open an interactive list of the
frames. Select a frame to see its header, payload and decoded fields.

Keys: enter opens a frame, n/p step through frames, esc goes back, q quits.`,
		Example: `  sinclair-decode browse capture.log`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, f, args[0])
		},
	}
}

func runBrowse(cmd *cobra.Command, f *flags, name string) error {
	s, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}
	if !stdoutIsTerminal() {
		return fmt.Errorf("browse needs an interactive terminal; use --format text instead")
	}

	r, closeFn, err := openInput(name)
	if err != nil {
		return err
	}
	results, err := s.processor().Collect(cmd.Context(), r)
	closeFn()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("no frames found in %s", name)
	}

	return runBrowser(results, filepath.Base(name), s.reportOptions())
}

func newConfigCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Long: `Show where the configuration file lives, write a default one, or print
the effective configuration after environment variables and flags.`,
	}

	var force bool

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Example: `  sinclair-decode config init
  sinclair-decode config init --config ./sinclair.yaml --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(f)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd, f)
			if err != nil {
				return err
			}
			out, err := s.cfg.YAML()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(pathCmd, initCmd, showCmd)
	return cmd
}

// configPath is --config when given, else the platform default
func configPath(f *flags) (string, error) {
	if f.configPath != "" {
		return f.configPath, nil
	}
	return config.GetConfigPath()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sinclair-decode %s\n", version.Full())
		},
	}
}

// openInput opens a named file, or stdin for "-"
func openInput(name string) (io.Reader, func(), error) {
	if name == stdinName {
		return stdin, func() {}, nil
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input: %w", err)
	}
	return file, func() { _ = file.Close() }, nil
}

// isTerminal reports whether r is an interactive terminal
func isTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
