package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sadopc/dbcodegen/internal/adapter"
	"github.com/sadopc/dbcodegen/internal/adapter/mysql"
	"github.com/sadopc/dbcodegen/internal/audit"
	"github.com/sadopc/dbcodegen/internal/codegen"
	"github.com/sadopc/dbcodegen/internal/config"
	"github.com/sadopc/dbcodegen/internal/highlight"
	"github.com/sadopc/dbcodegen/internal/logger"
	"github.com/sadopc/dbcodegen/internal/theme"

	// Register output targets
	_ "github.com/sadopc/dbcodegen/internal/codegen/golang"
	_ "github.com/sadopc/dbcodegen/internal/codegen/rust"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultConfigPath = "dbcodegen.yaml"

// source is an introspection connection the CLI owns.
type source interface {
	adapter.Introspector
	Close() error
}

// connect opens the schema source for dsn.
var connect = func(ctx context.Context, dsn string) (source, error) {
	return mysql.Connect(ctx, dsn)
}

type options struct {
	target  string
	verbose bool
	color   string
	theme   string
	timeout time.Duration
	output  string
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	var opts options
	rootCmd := newRootCmd(&opts, stdout, stderr)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		colored := useColor(opts.color, stderr)
		reportError(stderr, err, theme.Get(opts.theme), colored)
		return 1
	}
	return 0
}

func newRootCmd(opts *options, stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dbcodegen <config.yaml>",
		Short: "Generate record types from a MySQL schema",
		Long: `dbcodegen reads the tables of a MySQL schema and prints one record type
per table for the configured target language.

Examples:
  dbcodegen dbcodegen.yaml                  # Go structs on stdout
  dbcodegen --target rust dbcodegen.yaml    # Rust sqlx structs
  dbcodegen -o models/models.go app.yaml    # write to a file
  dbcodegen init                            # write a starter config`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.color {
			case "auto", "always", "never":
			default:
				return fmt.Errorf("invalid --color %q (want auto, always or never)", opts.color)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid from here on; failures are not usage errors.
			cmd.SilenceUsage = true
			return run(cmd.Context(), args[0], *opts, stdout, stderr)
		},
	}

	rootCmd.Flags().StringVarP(&opts.target, "target", "t", "", "Output target, overrides the config ("+strings.Join(codegen.Languages(), ", ")+")")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Overall timeout, overrides the config")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the generated source to a file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "auto", "Colorize output (auto, always, never)")
	rootCmd.PersistentFlags().StringVar(&opts.theme, "theme", "default", "Color theme (default, light, monokai)")

	rootCmd.AddCommand(
		newVersionCmd(stdout),
		newRulesCmd(opts, stdout),
		newInitCmd(opts, stdout),
	)
	return rootCmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "dbcodegen %s (commit: %s, built: %s)\n", version, commit, date)
			fmt.Fprintln(stdout, "\nSupported targets:")
			for _, name := range codegen.Languages() {
				fmt.Fprintf(stdout, "  - %s\n", name)
			}
		},
	}
}

func newRulesCmd(opts *options, stdout io.Writer) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the column type classification table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := codegen.Lookup(target)
			if err != nil {
				return err
			}
			colored := useColor(opts.color, stdout)
			fmt.Fprintln(stdout, renderRules(lang, theme.Get(opts.theme), colored))
			return nil
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", config.DefaultConfig().Target, "Target whose type names are shown")
	return cmd
}

func newInitCmd(opts *options, stdout io.Writer) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Sample().Save(path, force); err != nil {
				return err
			}
			colored := useColor(opts.color, stdout)
			fmt.Fprintln(stdout, paint(theme.Get(opts.theme).SuccessText, "Wrote "+path, colored))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}

// run loads the configuration at path, generates the artifact and writes it
// to stdout or opts.output.
func run(ctx context.Context, path string, opts options, stdout, stderr io.Writer) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if opts.target != "" {
		cfg.Target = opts.target
	}
	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lang, err := codegen.Lookup(cfg.Target)
	if err != nil {
		return err
	}

	level := logger.LevelInfo
	if opts.verbose {
		level = logger.LevelDebug
	}
	log := logger.New("dbcodegen", level, zapcore.AddSync(stderr))
	defer logger.Cleanup(log)

	var auditLog *audit.Logger
	if cfg.AuditLog != "" {
		auditLog, err = audit.New(cfg.AuditLog, cfg.AuditMaxSizeMB)
		if err != nil {
			log.Warn("could not open audit log", zap.String("path", cfg.AuditLog), zap.Error(err))
		}
	}
	defer auditLog.Close()

	start := time.Now()
	res, err := generate(ctx, cfg, lang, log)

	entry := audit.Entry{
		Timestamp:  start,
		Target:     lang.Name(),
		DSN:        cfg.DatabaseURL,
		DurationMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		entry.IsError = true
		entry.Error = err.Error()
	} else {
		entry.Schema = res.Schema
		entry.Tables = res.Tables
		entry.Features = res.Features.String()
		entry.OutputSize = len(res.Source)
	}
	if aerr := auditLog.Log(entry); aerr != nil {
		log.Warn("could not write audit entry", zap.Error(aerr))
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		return writeFile(opts.output, res.Source)
	}
	if useColor(opts.color, stdout) {
		_, err = io.WriteString(stdout, highlight.New(lang.Name()).Highlight(string(res.Source), theme.Get(opts.theme)))
	} else {
		_, err = stdout.Write(res.Source)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// generate connects to the configured database and runs the generator
// within the configured timeout.
func generate(ctx context.Context, cfg *config.Config, lang codegen.Language, log *zap.Logger) (*codegen.Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	conn, err := connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	res, err := codegen.NewGenerator(conn, lang, cfg.Settings(), log).Generate(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("generation did not finish within %s: %w", cfg.Timeout, err)
	}
	return res, err
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
