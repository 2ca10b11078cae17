package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"openpayments.dev/iso20022/internal/config"
	"openpayments.dev/iso20022/internal/logger"
	_ "openpayments.dev/iso20022/message/all"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// failed reports that the command ran but at least one input failed.
func failed(err error) error { return &exitError{code: 1, err: err} }

// app is the state shared by every subcommand.
type app struct {
	out    io.Writer
	errOut io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
	log *zap.Logger
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	a := &app{out: out, errOut: errOut, cfg: config.Default(), log: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(context.Background())
	_ = a.log.Sync()
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(errOut, ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(errOut, err)
	return 2
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "iso20022",
		Short:         "validate, convert and fingerprint ISO 20022 documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (CONSOLE, JSON)")

	root.AddCommand(
		a.validateCmd(),
		a.convertCmd(),
		a.cidCmd(),
		a.listCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if cmd.Flags().Changed("log-level") {
		a.cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		a.cfg.LogFormat = a.logFormat
	}
	a.log = logger.New(a.errOut, a.cfg.LogLevel, logger.LogFormat(a.cfg.LogFormat)).Named(cmd.Name())
	return nil
}
