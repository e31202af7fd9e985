package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fyerfyer/set-kit/internal/setservice"
	"github.com/fyerfyer/set-kit/registry"
	"github.com/fyerfyer/set-kit/set"
)

// Runner 执行行式脚本
//
// 脚本分为两个阶段：
//  1. 集合定义：重复的"<name> <count>"头行，后跟一行count个空格分隔的整数，
//     直到遇到只含"Q"的行
//  2. 操作执行：每行一条命令，直到输入结束或再次遇到"Q"
//
// 空行和以#开头的注释行在两个阶段都被跳过
// 单条命令的失败只影响该命令本身，后续命令继续执行
type Runner struct {
	svc    setservice.Service
	out    io.Writer
	errOut io.Writer
}

// NewRunner 创建一个新的脚本执行器
func NewRunner(svc setservice.Service, out, errOut io.Writer) *Runner {
	return &Runner{
		svc:    svc,
		out:    out,
		errOut: errOut,
	}
}

// Run 从输入流读取并执行完整脚本
func (r *Runner) Run(input io.Reader) error {
	scanner := bufio.NewScanner(input)

	// 阶段一：读取集合定义
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "Q" {
			break
		}

		fields := strings.Fields(line)
		name := fields[0]
		count := 0
		if len(fields) > 1 {
			count, _ = strconv.Atoi(fields[1])
		}

		var values []int
		if count > 0 && scanner.Scan() {
			values = parseIntList(scanner.Text())
		}

		// 同名集合被覆盖
		r.svc.DefineSet(name, values...)
	}

	// 阶段二：逐行执行操作
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if line == "Q" {
			break
		}

		r.execute(line)
	}

	return scanner.Err()
}

// execute 执行单条命令，失败只报告不中断
func (r *Runner) execute(line string) {
	fields := strings.Fields(line)
	op, args := fields[0], fields[1:]

	switch op {
	case "print":
		if !r.requireArgs(op, args, 1) {
			return
		}
		rendered, err := r.svc.RenderSet(args[0])
		if err != nil {
			r.reportError(err)
			return
		}
		fmt.Fprintln(r.out, rendered)

	case "union", "intersection", "difference", "symmetric_difference":
		if !r.requireArgs(op, args, 2) {
			return
		}
		result, err := r.svc.Operate(args[0], registry.OpKind(op), args[1])
		if err != nil {
			r.reportError(err)
			return
		}
		fmt.Fprintln(r.out, result.Render())

	case "issubset":
		if !r.requireArgs(op, args, 2) {
			return
		}
		result, err := r.svc.IsSubset(args[0], args[1])
		if err != nil {
			r.reportError(err)
			return
		}
		fmt.Fprintf(r.out, "Is %s ⊆ %s? %s\n", args[0], args[1], yesNo(result))

	case "isequal":
		if !r.requireArgs(op, args, 2) {
			return
		}
		result, err := r.svc.IsEqual(args[0], args[1])
		if err != nil {
			r.reportError(err)
			return
		}
		fmt.Fprintf(r.out, "Are %s and %s equal? %s\n", args[0], args[1], yesNo(result))

	case "size":
		if !r.requireArgs(op, args, 1) {
			return
		}
		size, err := r.svc.SetSize(args[0])
		if err != nil {
			r.reportError(err)
			return
		}
		fmt.Fprintf(r.out, "Size of set %s: %d element(s)\n", args[0], size)

	case "powerset":
		if !r.requireArgs(op, args, 1) {
			return
		}
		result, err := r.svc.PowerSet(args[0])
		if err != nil {
			r.reportError(err)
			return
		}
		fmt.Fprintf(r.out, "Power set of %s contains %d subsets:\n", args[0], result.Size())
		result.ForEach(func(subset *set.Set[int]) bool {
			fmt.Fprintln(r.out, subset.Render())
			return true
		})

	case "cartesian":
		if !r.requireArgs(op, args, 2) {
			return
		}
		result, err := r.svc.CartesianProduct(args[0], args[1])
		if err != nil {
			r.reportError(err)
			return
		}
		fmt.Fprintf(r.out, "Cartesian product %s × %s (%d pairs):\n",
			args[0], args[1], result.Size())
		result.SetName("")
		fmt.Fprintln(r.out, result.Render())

	default:
		// 未识别的命令只报告并跳过
		fmt.Fprintf(r.errOut, "Unknown operation: %s\n", op)
	}
}

// requireArgs 检查命令的参数数量，不足时报告并跳过该命令
func (r *Runner) requireArgs(op string, args []string, want int) bool {
	if len(args) < want {
		fmt.Fprintf(r.errOut, "Error: %s expects %d operand(s), got %d\n", op, want, len(args))
		return false
	}
	return true
}

func (r *Runner) reportError(err error) {
	fmt.Fprintf(r.errOut, "Error: %v\n", err)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// parseIntList 解析一行空格分隔的整数，无法解析的词条被跳过
func parseIntList(line string) []int {
	fields := strings.Fields(line)
	result := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		result = append(result, v)
	}
	return result
}
