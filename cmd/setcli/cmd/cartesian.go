package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cartesianCmd 表示cartesian命令，用于计算两个集合的笛卡尔积
var cartesianCmd = &cobra.Command{
	Use:   "cartesian [setA] [setB]",
	Short: "Compute the Cartesian product of two named sets",
	Long: `Compute the Cartesian product A × B: the set of all ordered pairs
(a, b) with a from set A and b from set B. The result has exactly
|A| * |B| pairs.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := GetSetService().CartesianProduct(args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Printf("Cartesian product %s × %s (%d pairs):\n",
			args[0], args[1], result.Size())

		result.SetName("")
		fmt.Println(result.Render())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cartesianCmd)
}
