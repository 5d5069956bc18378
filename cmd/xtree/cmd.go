package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/benz9527/xtree/lib/infra"
)

const version = "v0.1.0"

type config struct {
	Kind            string
	Desc            bool
	Check           bool
	LogLevel        string
	LogFormat       string
	Metrics         string
	MetricsInterval time.Duration
}

func newRootCmd(out io.Writer) *cobra.Command {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:           "xtree",
		Version:       version,
		Short:         "Ordered key-value trees: unbalanced BST, AVL and Red-Black",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.Kind, "kind", "avl", "tree kind, one of bst, avl, rb")
	flags.BoolVar(&cfg.Desc, "desc", false, "order the keys descending")
	flags.BoolVar(&cfg.Check, "check", false, "validate the whole tree after each write")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "log level, one of debug, info, warn, error")
	flags.StringVar(&cfg.LogFormat, "log-format", "json", "log format, one of json, text")
	flags.StringVar(&cfg.Metrics, "metrics", "none", "metrics exporter, one of none, stdout, prometheus")
	flags.DurationVar(&cfg.MetricsInterval, "metrics-interval", 10*time.Second, "stdout metrics export interval")

	var file string
	cmdReplay := &cobra.Command{
		Use:   "replay",
		Short: "Replay a YAML scenario of operations against a tree",
		Long: `Replay reads the scenario file:

  kind: rb
  ops:
    - op: insert
      keys: [3, 2, 1]
      values: [three, two, one]
    - op: remove
      keys: [2]
    - op: search
      keys: [1, 2]
    - op: remove-min

The tree is validated after each operation, then printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := loadScenario(file)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("kind") && sc.Kind != "" {
				cfg.Kind = sc.Kind
			}
			return runApp(cmd.Context(), cfg, cmd.OutOrStdout(), func(r *runner) error {
				return r.replay(sc)
			})
		},
	}
	cmdReplay.Flags().StringVarP(&file, "file", "f", "", "scenario YAML file")
	_ = cmdReplay.MarkFlagRequired("file")

	cmdDemo := &cobra.Command{
		Use:   "demo [keys...]",
		Short: "Insert the integer keys and print the tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]int, 0, len(args))
			for _, arg := range args {
				key, err := strconv.Atoi(arg)
				if err != nil {
					return infra.WrapErrorStackWithMessage(err, fmt.Sprintf("invalid key %q", arg))
				}
				keys = append(keys, key)
			}
			sc := &scenario{Ops: []operation{{Op: opInsert, Keys: keys}}}
			return runApp(cmd.Context(), cfg, cmd.OutOrStdout(), func(r *runner) error {
				return r.replay(sc)
			})
		},
	}

	rootCmd.AddCommand(cmdReplay, cmdDemo)
	return rootCmd
}
