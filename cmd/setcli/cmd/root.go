package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/set-kit/internal/setservice"
)

var (
	// 集合服务实例，所有命令共享
	setSvc setservice.Service
)

// rootCmd 表示CLI工具的根命令
var rootCmd = &cobra.Command{
	Use:   "setcli",
	Short: "A CLI tool for set algebra on named sets",
	Long: `Set CLI (setcli) is a command line interface for defining named sets
and performing set algebra on them: union, intersection, difference,
symmetric difference, subset and equality tests, power set and
Cartesian product. It can also execute line-oriented script files.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 如果没有子命令被调用，显示帮助信息
		cmd.Help()
	},
}

// Execute 运行根命令并处理任何错误
func Execute() {
	// 设置集合服务实例
	setSvc = setservice.NewInMemoryService()

	if len(os.Args) > 1 {
		// 带参数时按普通CLI方式执行单条命令
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
	} else {
		// 不带参数时直接进入交互模式
		runInteractiveMode()
	}

	// 在程序结束时关闭集合服务
	setSvc.Close()
}

// GetSetService 返回集合服务实例，供子命令使用
func GetSetService() setservice.Service {
	return setSvc
}
