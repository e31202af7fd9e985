package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// issubsetCmd 表示issubset命令，用于判断子集关系
var issubsetCmd = &cobra.Command{
	Use:   "issubset [setA] [setB]",
	Short: "Check whether set A is a subset of set B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := GetSetService().IsSubset(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Is %s ⊆ %s? %s\n", args[0], args[1], yesNo(result))
		return nil
	},
}

// isequalCmd 表示isequal命令，用于判断两个集合是否相等
var isequalCmd = &cobra.Command{
	Use:   "isequal [setA] [setB]",
	Short: "Check whether two named sets are equal",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := GetSetService().IsEqual(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Are %s and %s equal? %s\n", args[0], args[1], yesNo(result))
		return nil
	},
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func init() {
	rootCmd.AddCommand(issubsetCmd)
	rootCmd.AddCommand(isequalCmd)
}
