package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/set-kit/internal/script"
)

// runCmd 表示run命令，用于执行行式脚本文件
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a set algebra script file",
	Long: `Execute a line-oriented script file.

The file starts with set definitions, each a header line "<name> <count>"
followed by a line of <count> space-separated integers, terminated by a
line containing only "Q". The remaining lines are operations, one per
line: print, union, intersection, difference, symmetric_difference,
issubset, isequal, size, powerset, cartesian. A failing command is
reported and skipped without aborting the rest of the script.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open file %q: %w", args[0], err)
		}
		defer file.Close()

		runner := script.NewRunner(GetSetService(), os.Stdout, os.Stderr)
		if err := runner.Run(file); err != nil {
			return fmt.Errorf("error reading script: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
