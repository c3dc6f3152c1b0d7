package cmd

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dop251/jsarray"
)

func getCmdKeys(gs *globalState) *cobra.Command {
	var (
		in        inputFlags
		match     string
		indexOnly bool
	)
	cmd := &cobra.Command{
		Use:   "keys [file]",
		Short: "list the keys of an array in enumeration order",
		Long: `Keys prints the present indices of an array in ascending order followed by
its named properties in insertion order. JSON and YAML arrays have no named
properties, so this is mostly useful together with --index-only to spot holes.`,
		Args: inputArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var re *regexp2.Regexp
			if match != "" {
				var err error
				if re, err = regexp2.Compile(match, regexp2.ECMAScript); err != nil {
					return usageError{fmt.Errorf("invalid --match pattern: %w", err)}
				}
			}
			a, err := in.readArray(gs, args)
			if err != nil {
				return err
			}

			indexColor := colorFor(gs, color.FgCyan)
			nameColor := colorFor(gs, color.FgYellow)
			var keys []jsarray.Key
			if indexOnly {
				for _, idx := range a.IndexIds() {
					keys = append(keys, jsarray.ClassifyInt(idx))
				}
			} else {
				keys = a.Ids()
			}
			for _, k := range keys {
				if re != nil {
					ok, err := re.MatchString(k.String())
					if err != nil {
						return err
					}
					if !ok {
						continue
					}
				}
				c := nameColor
				if k.IsIndex() {
					c = indexColor
				}
				if _, err := c.Fprintln(gs.stdout, k.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().AddFlagSet(in.flagSet())
	cmd.Flags().StringVar(&match, "match", "", "only print keys matching this ECMAScript regular expression")
	cmd.Flags().BoolVar(&indexOnly, "index-only", false, "only print indices")
	return cmd
}
