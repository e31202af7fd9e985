package set

import (
	"fmt"
)

// Pair 有序对(a, b)，用作笛卡尔积的元素类型
type Pair[T any] struct {
	First  T
	Second T
}

// String 返回有序对的文本表示：(a, b)
func (p Pair[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// CartesianProduct 返回笛卡尔积 A × B：所有有序对(a, b)的集合，
// 其中a来自集合A（外层循环，插入顺序），b来自集合B（内层循环，插入顺序）
// 由于两个操作数本身保证元素唯一，结果大小恰好是|A| * |B|
//
// 与PowerSet一样提供为包级函数，避免方法上的Set[Pair[T]]实例化循环
// 有序对的相等性按分量派生：第一分量用A的相等关系，第二分量用B的
func CartesianProduct[T any](a, b *Set[T]) *Set[Pair[T]] {
	result := NewFunc(a.name+" × "+b.name, func(p, q Pair[T]) bool {
		return a.eq(p.First, q.First) && b.eq(p.Second, q.Second)
	})

	for _, first := range a.elems {
		for _, second := range b.elems {
			result.Insert(Pair[T]{First: first, Second: second})
		}
	}

	return result
}
