package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printCmd 表示print命令，用于显示一个命名集合的内容
var printCmd = &cobra.Command{
	Use:   "print [name]",
	Short: "Print the contents of a named set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := GetSetService().RenderSet(args[0])
		if err != nil {
			return err
		}

		fmt.Println(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(printCmd)
}
