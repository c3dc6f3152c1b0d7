package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/dop251/jsarray/hostjs"
)

func getCmdFlatMap(gs *globalState) *cobra.Command {
	var (
		in      inputFlags
		mapper  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "flatmap [file]",
		Short: "map each element with a JavaScript function and flatten one level",
		Example: `  jsarray flatmap --map 'x => [x, x * 2]' data.json
  jsarray flatmap --map '(x, i) => i % 2 ? [] : x' data.yaml`,
		Args: inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mapper == "" {
				return usageError{errors.New("--map is required")}
			}
			a, err := in.readArray(gs, args)
			if err != nil {
				return err
			}

			vm := hostjs.NewRuntime()
			transform, err := hostjs.CompileTransform(vm, mapper)
			if err != nil {
				return usageError{err}
			}
			stop := context.AfterFunc(gs.ctx, func() {
				vm.Interrupt(gs.ctx.Err())
			})
			defer stop()
			if timeout > 0 {
				t := time.AfterFunc(timeout, func() {
					vm.Interrupt("timeout")
				})
				defer t.Stop()
			}

			f, err := newFlattener(gs)
			if err != nil {
				return err
			}
			res, err := transform.FlatMap(f, a)
			if err != nil {
				return err
			}
			return writeJSON(gs, res)
		},
	}
	cmd.Flags().AddFlagSet(in.flagSet())
	cmd.Flags().StringVarP(&mapper, "map", "m", "", "JavaScript function called with (value, index, array)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "interrupt the mapping function after this long (0 means no limit)")
	return cmd
}
