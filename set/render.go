package set

import (
	"fmt"
	"strings"

	"github.com/fyerfyer/set-kit/slice"
)

// Render 返回集合的文本表示：name = {e1, e2, ...}
// 元素按插入顺序排列，名称为空时省略"name = "前缀
// 嵌套的集合和有序对通过各自的String方法递归渲染
func (s *Set[T]) Render() string {
	var sb strings.Builder

	if s.name != "" {
		sb.WriteString(s.name)
		sb.WriteString(" = ")
	}

	parts := slice.Map(s.elems, func(v T) string {
		return fmt.Sprint(v)
	})

	sb.WriteString("{")
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString("}")

	return sb.String()
}

// String 实现fmt.Stringer接口
func (s *Set[T]) String() string {
	return s.Render()
}
