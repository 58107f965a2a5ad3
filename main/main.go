package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rawbytedev/nsandbox/internal/logging"
)

var version = "0.1.0"

type app struct {
	log     *zap.Logger
	profile *os.File
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{log: zap.NewNop()}
	var logLevel, cpuProfile string
	var dev bool

	root := &cobra.Command{
		Use:     "nsandbox",
		Short:   "Render native sandbox records the way binding test suites expect",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(logging.Config{Level: logLevel, Development: dev})
			if err != nil {
				return err
			}
			a.log = log
			if cpuProfile != "" {
				f, err := os.Create(cpuProfile)
				if err != nil {
					return fmt.Errorf("create cpu profile: %w", err)
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					f.Close()
					return fmt.Errorf("start cpu profile: %w", err)
				}
				a.profile = f
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.profile != nil {
				pprof.StopCPUProfile()
				if err := a.profile.Close(); err != nil {
					return err
				}
				a.log.Debug("cpu profile written", zap.String("path", a.profile.Name()))
			}
			_ = a.log.Sync()
			return nil
		},
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	root.PersistentFlags().BoolVar(&dev, "dev", false, "human readable development logging")
	root.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")

	root.AddCommand(a.formatCmd())
	root.AddCommand(a.layoutCmd())
	root.AddCommand(a.randomCmd())
	return root
}
