package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/set-kit/internal/setservice"
)

// listCmd 表示list命令，用于列出所有已注册的集合
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all defined sets",
	Long:  `Display a list of all defined sets and their basic information.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 获取集合服务
		service := GetSetService()

		// 按注册顺序获取所有集合
		sets := service.ListSets()

		// 检查是否有集合
		if len(sets) == 0 {
			fmt.Println("No sets defined.")
			return
		}

		// 使用详细模式还是表格模式
		verbose, _ := cmd.Flags().GetBool("verbose")

		if verbose {
			// 详细模式：显示每个集合的完整信息
			fmt.Printf("Found %d set(s):\n\n", len(sets))
			for i, info := range sets {
				if i > 0 {
					fmt.Println("---")
				}
				fmt.Print(setservice.FormatSetInfo(info))
			}
		} else {
			// 表格模式：使用表格格式显示简洁信息
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tCONTENT")

			for _, info := range sets {
				fmt.Fprintf(w, "%s\t%d\t%s\n", info.Name, info.Size, info.Rendered)
			}

			w.Flush()
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	// 添加参数
	listCmd.Flags().BoolP("verbose", "v", false, "Show detailed information for each set")
}
