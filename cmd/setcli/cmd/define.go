package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// defineCmd 表示define命令，用于创建一个命名集合
var defineCmd = &cobra.Command{
	Use:   "define [name] [values...]",
	Short: "Define a named set",
	Long: `Define a new named set with the given integer elements.
Duplicate values are ignored; defining an existing name overwrites its content.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// 解析元素列表
		values := make([]int, 0, len(args)-1)
		for _, arg := range args[1:] {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid element %q: expected an integer", arg)
			}
			values = append(values, v)
		}

		service := GetSetService()
		service.DefineSet(name, values...)

		rendered, err := service.RenderSet(name)
		if err != nil {
			return err
		}

		fmt.Printf("Set '%s' defined: %s\n", name, rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(defineCmd)
}
