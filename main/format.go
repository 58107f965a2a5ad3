package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rawbytedev/nsandbox"
	"github.com/rawbytedev/nsandbox/pkg/fixture"
)

func (a *app) formatCmd() *cobra.Command {
	var capacity, node int
	var arrays bool

	cmd := &cobra.Command{
		Use:   "format [flags] <fixture>",
		Short: "Print a fixture record as the native formatter renders it",
		Long: `Load a fixture document (yaml, toml, json or msgpack, optionally .zst
compressed), build its record chain and print the record formatter output.

Example:
  nsandbox format --arrays --cap 64 testdata/record.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			g, err := fixture.Load(args[0])
			if err != nil {
				return err
			}
			if node < 0 || node >= len(g.Nodes) {
				return fmt.Errorf("format: node %d out of range (%d nodes)", node, len(g.Nodes))
			}
			a.log.Info("fixture loaded",
				zap.String("path", args[0]),
				zap.Int("nodes", len(g.Nodes)),
				zap.Duration("elapsed", time.Since(start)))

			n := g.Nodes[node]
			rec := &n.Record
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render(capacity, len(nsandbox.RecordString(rec)), func(dst []byte) {
				nsandbox.FormatRecord(rec, dst)
			}))
			if !arrays {
				return nil
			}
			for _, sel := range nsandbox.Selectors {
				count := n.Holder.Len(sel)
				full := nsandbox.ArrayFieldString(rec, sel, count)
				text := render(capacity, len(full), func(dst []byte) {
					nsandbox.FormatArrayField(rec, sel, count, dst)
				})
				a.log.Debug("array formatted", zap.Stringer("selector", sel), zap.Int("count", count))
				fmt.Fprintf(out, "%s[%d]: %s\n", sel, count, text)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&capacity, "cap", 0, "destination buffer capacity (0 fits the whole output)")
	cmd.Flags().IntVar(&node, "node", 0, "index of the record in the chain")
	cmd.Flags().BoolVar(&arrays, "arrays", false, "also print every array of the record's holder")
	return cmd
}

// render runs write against a zeroed buffer of the requested capacity and
// returns the NUL-terminated text it produced.
func render(capacity, natural int, write func(dst []byte)) string {
	if capacity <= 0 {
		capacity = natural + 1
	}
	dst := make([]byte, capacity)
	write(dst)
	return nsandbox.CString(dst)
}
