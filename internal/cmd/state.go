package cmd

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/dop251/jsarray"
)

// globalState holds everything a command touches outside of its arguments,
// so that tests can swap the filesystem, the streams and the environment.
type globalState struct {
	ctx context.Context

	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	env    map[string]string

	stdoutTTY bool
	logger    *logrus.Logger
}

func newGlobalState(ctx context.Context) *globalState {
	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	stderr := colorable.NewColorableStderr()
	return &globalState{
		ctx:       ctx,
		fs:        afero.NewOsFs(),
		stdin:     os.Stdin,
		stdout:    colorable.NewColorableStdout(),
		stderr:    stderr,
		env:       jsarray.EnvMap(),
		stdoutTTY: stdoutTTY,
		logger: &logrus.Logger{
			Out:       stderr,
			Formatter: new(logrus.TextFormatter),
			Hooks:     make(logrus.LevelHooks),
			Level:     logrus.InfoLevel,
		},
	}
}
