// Package cmd implements the jsarray command line tool.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dop251/jsarray"
)

const (
	exitGeneric        = 1
	exitInvalidUsage   = 2
	exitRecursionLimit = 3
)

// usageError marks errors caused by bad flags or arguments.
type usageError struct {
	error
}

func (e usageError) Unwrap() error {
	return e.error
}

type rootCommand struct {
	gs  *globalState
	cmd *cobra.Command

	logLevel   string
	verbose    bool
	noColor    bool
	cpuProfile string

	stopProfile func() error
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}
	c.cmd = &cobra.Command{
		Use:                "jsarray",
		Short:              "flatten and inspect JavaScript-style arrays",
		Long:               "jsarray reads JSON or YAML documents and runs array operations on them with JavaScript semantics.",
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  c.persistentPreRunE,
		PersistentPostRunE: c.persistentPostRunE,
	}
	c.cmd.SetOut(gs.stdout)
	c.cmd.SetErr(gs.stderr)
	c.cmd.SetIn(gs.stdin)
	c.cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())
	c.cmd.AddCommand(
		getCmdFlat(gs),
		getCmdFlatMap(gs),
		getCmdKeys(gs),
	)
	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVar(&c.logLevel, "log-level", "info", "log level: trace, debug, info, warning or error")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&c.cpuProfile, "cpuprofile", "", "write a cpu profile to `file`")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(c.logLevel)
	if err != nil {
		return usageError{err}
	}
	if c.verbose {
		level = logrus.DebugLevel
	}
	c.gs.logger.SetLevel(level)
	if c.noColor {
		c.gs.stdoutTTY = false
		c.gs.logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	if c.cpuProfile != "" {
		f, err := c.gs.fs.Create(c.cpuProfile)
		if err != nil {
			return err
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return err
		}
		c.gs.logger.WithField("file", c.cpuProfile).Debug("cpu profiling started")
		c.stopProfile = func() error {
			pprof.StopCPUProfile()
			return f.Close()
		}
	}
	return nil
}

func (c *rootCommand) persistentPostRunE(cmd *cobra.Command, args []string) error {
	return c.stop()
}

func (c *rootCommand) stop() error {
	if c.stopProfile == nil {
		return nil
	}
	stop := c.stopProfile
	c.stopProfile = nil
	return stop()
}

// execute runs the command line and returns the process exit code.
func (c *rootCommand) execute(args []string) int {
	c.cmd.SetArgs(args)
	err := c.cmd.Execute()
	// PersistentPostRunE is skipped when RunE fails
	if stopErr := c.stop(); err == nil {
		err = stopErr
	}
	if err == nil {
		return 0
	}
	c.gs.logger.Error(err)
	return exitCode(err)
}

func exitCode(err error) int {
	var uerr usageError
	switch {
	case errors.As(err, &uerr):
		return exitInvalidUsage
	case errors.Is(err, jsarray.ErrRecursionLimit):
		return exitRecursionLimit
	}
	return exitGeneric
}

// Execute runs the root command with the process arguments and exits.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	gs := newGlobalState(ctx)
	code := newRootCommand(gs).execute(os.Args[1:])
	cancel()
	os.Exit(code)
}

// newFlattener builds a Flattener with the limits configured in the environment.
func newFlattener(gs *globalState) (*jsarray.Flattener, error) {
	conf, err := jsarray.GetConfig(gs.env)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return jsarray.NewFlattener(conf, gs.logger), nil
}

func colorFor(gs *globalState, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if !gs.stdoutTTY {
		c.DisableColor()
	}
	return c
}
