package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fyerfyer/set-kit/registry"
)

// newBinaryOpCmd 为一种二元集合运算构造cobra命令
// 四种运算的参数形式和输出完全一致，只有运算符不同
func newBinaryOpCmd(op registry.OpKind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [setA] [setB]", op),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := GetSetService().Operate(args[0], op, args[1])
			if err != nil {
				return err
			}

			fmt.Println(result.Render())
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(
		newBinaryOpCmd(registry.OpUnion, "Compute the union of two named sets"),
		newBinaryOpCmd(registry.OpIntersection, "Compute the intersection of two named sets"),
		newBinaryOpCmd(registry.OpDifference, "Compute the difference of two named sets"),
		newBinaryOpCmd(registry.OpSymmetricDifference, "Compute the symmetric difference of two named sets"),
	)
}
