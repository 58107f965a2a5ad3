package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/nsandbox"
)

func (a *app) layoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the native layout of the record types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range nsandbox.NativeTypes {
				p, err := nsandbox.PlanOf(t)
				if err != nil {
					return err
				}
				if err := p.Verify(); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s size=%d align=%d\n", t.Name(), p.Size, p.Align)
				for _, f := range p.Fields {
					fmt.Fprintf(out, "  %-16s offset=%-3d size=%-3d align=%d\n", f.Name, f.Offset, f.Size, f.Align)
				}
			}
			return nil
		},
	}
}
