package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/set-kit/internal/setservice"
)

// historyCmd 表示history命令，用于显示已执行操作的历史记录
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the history of executed operations",
	Run: func(cmd *cobra.Command, args []string) {
		history := GetSetService().History()

		if len(history) == 0 {
			fmt.Println("No operations executed yet.")
			return
		}

		for _, rec := range history {
			fmt.Println(setservice.FormatOpRecord(rec))
		}
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
