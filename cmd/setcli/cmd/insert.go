package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// insertCmd 表示insert命令，用于向已有集合插入元素
var insertCmd = &cobra.Command{
	Use:   "insert [name] [value]",
	Short: "Insert a value into a named set",
	Long: `Insert an integer value into an existing named set.
Inserting a value that is already present leaves the set unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid value %q: expected an integer", args[1])
		}

		service := GetSetService()
		if err := service.InsertValue(name, value); err != nil {
			return fmt.Errorf("failed to insert value: %w", err)
		}

		rendered, err := service.RenderSet(name)
		if err != nil {
			return err
		}

		fmt.Println(rendered)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insertCmd)
}
