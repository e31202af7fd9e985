package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// powersetCmd 表示powerset命令，用于计算集合的幂集
var powersetCmd = &cobra.Command{
	Use:   "powerset [name]",
	Short: "Compute the power set of a named set",
	Long: `Compute the power set of a named set: the set of all its subsets,
including the empty set and the set itself. A set with n elements has
exactly 2^n subsets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := GetSetService().PowerSet(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Power set of %s contains %d subsets:\n", args[0], result.Size())
		for _, subset := range result.Elements() {
			fmt.Println(subset.Render())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(powersetCmd)
}
