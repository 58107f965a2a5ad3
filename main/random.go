package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rawbytedev/nsandbox/pkg/fixture"
)

func (a *app) randomCmd() *cobra.Command {
	var seed uint64
	var nodes int
	var outPath string

	cmd := &cobra.Command{
		Use:   "random --out <file>",
		Short: "Write a deterministic random fixture document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := fixture.Random(seed, nodes)
			if _, err := fixture.Build(doc); err != nil {
				return err
			}
			if err := fixture.Save(outPath, doc); err != nil {
				return err
			}
			a.log.Info("fixture written",
				zap.String("path", outPath),
				zap.Uint64("seed", seed),
				zap.Int("nodes", len(doc.Nodes)))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 12345, "random seed")
	cmd.Flags().IntVar(&nodes, "nodes", 3, "number of records in the chain")
	cmd.Flags().StringVar(&outPath, "out", "", "output file; the extension picks the format")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
