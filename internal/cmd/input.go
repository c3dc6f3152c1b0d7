package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dop251/jsarray"
	"github.com/dop251/jsarray/codec"
)

const (
	formatAuto = "auto"
	formatJSON = "json"
	formatYAML = "yaml"
)

// inputFlags are shared by every command that reads a document.
type inputFlags struct {
	format string
}

func (f *inputFlags) flagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(&f.format, "format", "f", formatAuto, "input format: auto, json or yaml")
	return flags
}

func inputArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return usageError{err}
	}
	return nil
}

func (f *inputFlags) detect(filename string) (string, error) {
	switch f.format {
	case formatJSON, formatYAML:
		return f.format, nil
	case formatAuto, "":
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			return formatYAML, nil
		}
		return formatJSON, nil
	}
	return "", usageError{fmt.Errorf("unknown input format %q", f.format)}
}

// readArray decodes the document named by args (stdin for none or "-") and
// checks that it is an array.
func (f *inputFlags) readArray(gs *globalState, args []string) (*jsarray.Array, error) {
	var (
		filename string
		data     []byte
		err      error
	)
	if len(args) > 0 {
		filename = args[0]
	}
	if filename == "" || filename == "-" {
		filename = "<stdin>"
		data, err = io.ReadAll(gs.stdin)
	} else {
		data, err = afero.ReadFile(gs.fs, filename)
	}
	if err != nil {
		return nil, err
	}

	format, err := f.detect(filename)
	if err != nil {
		return nil, err
	}
	var v jsarray.Value
	if format == formatYAML {
		v, err = codec.DecodeYAML(data)
	} else {
		v, err = codec.DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	a, ok := v.(*jsarray.Array)
	if !ok {
		return nil, fmt.Errorf("%s: the document is not an array", filename)
	}
	gs.logger.WithField("file", filename).WithField("length", a.Length()).Debug("input read")
	return a, nil
}

func writeJSON(gs *globalState, v jsarray.Value) error {
	data, err := codec.EncodeJSON(v)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = gs.stdout.Write(data)
	return err
}
