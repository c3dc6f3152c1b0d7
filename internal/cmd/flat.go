package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dop251/jsarray"
)

func getCmdFlat(gs *globalState) *cobra.Command {
	var (
		in    inputFlags
		depth string
	)
	cmd := &cobra.Command{
		Use:   "flat [file]",
		Short: "flatten nested arrays",
		Long: `Flatten reads an array and prints it with nested arrays spliced in, the way
Array.prototype.flat does. Holes are dropped; null is kept.`,
		Example: `  jsarray flat data.json
  echo '[1,[2,[3]]]' | jsarray flat --depth Infinity`,
		Args: inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var depthArg jsarray.Value
			if cmd.Flags().Changed("depth") {
				depthArg = jsarray.StringValue(depth)
			}
			d, err := jsarray.DepthArg(depthArg)
			if err != nil {
				return usageError{err}
			}

			a, err := in.readArray(gs, args)
			if err != nil {
				return err
			}
			f, err := newFlattener(gs)
			if err != nil {
				return err
			}
			res, err := f.Flat(a, d)
			if err != nil {
				return err
			}
			return writeJSON(gs, res)
		},
	}
	cmd.Flags().AddFlagSet(in.flagSet())
	cmd.Flags().StringVarP(&depth, "depth", "d", "1", "how many levels of nesting to flatten (a number or Infinity)")
	return cmd
}
