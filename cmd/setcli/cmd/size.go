package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sizeCmd 表示size命令，用于显示集合的元素数量
var sizeCmd = &cobra.Command{
	Use:   "size [name]",
	Short: "Show the number of elements in a named set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := GetSetService().SetSize(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Size of set %s: %d element(s)\n", args[0], size)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sizeCmd)
}
