package set

import (
	"github.com/fyerfyer/set-kit/slice"
)

// Set 数学意义上的集合：元素唯一，保留插入顺序，带有一个可变的显示名称
// 名称只用于展示和结果命名，不参与集合相等性判断
//
// 元素相等性由构造时提供的相等函数决定，而不是要求元素类型本身可比较，
// 这样嵌套集合（幂集）和有序对集合（笛卡尔积）可以复用同一个容器
type Set[T any] struct {
	name  string
	elems []T               // 按插入顺序存储的唯一元素
	eq    func(a, b T) bool // 元素相等关系
}

// New 创建一个新的空集合，元素相等性使用==判断
func New[T comparable](name string, items ...T) *Set[T] {
	return NewFunc(name, func(a, b T) bool { return a == b }, items...)
}

// NewFunc 使用自定义相等函数创建集合
// 用于元素类型本身不可比较的场景，例如集合的集合、有序对集合
func NewFunc[T any](name string, eq func(a, b T) bool, items ...T) *Set[T] {
	s := &Set[T]{
		name: name,
		eq:   eq,
	}
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

// Name 返回集合的名称
func (s *Set[T]) Name() string {
	return s.name
}

// SetName 修改集合的名称
func (s *Set[T]) SetName(name string) {
	s.name = name
}

// Insert 插入元素，已存在时不做任何修改
// 返回元素是否被实际加入，重复插入是幂等的
func (s *Set[T]) Insert(item T) bool {
	if s.Contains(item) {
		return false
	}
	s.elems = append(s.elems, item)
	return true
}

// Contains 检查元素是否在集合中
func (s *Set[T]) Contains(item T) bool {
	return slice.ContainsFunc(s.elems, func(v T) bool {
		return s.eq(v, item)
	})
}

// Size 返回集合中的元素数量
func (s *Set[T]) Size() int {
	return len(s.elems)
}

// IsEmpty 检查集合是否为空
func (s *Set[T]) IsEmpty() bool {
	return len(s.elems) == 0
}

// Elements 按插入顺序返回元素的快照切片
// 返回的切片与内部存储分离，调用方可以随意修改
func (s *Set[T]) Elements() []T {
	return slice.Clone(s.elems)
}

// Clone 返回集合的独立副本，副本与原集合不共享元素存储
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		name:  s.name,
		elems: slice.Clone(s.elems),
		eq:    s.eq,
	}
}

// ForEach 按插入顺序遍历集合中的所有元素，返回false可停止遍历
func (s *Set[T]) ForEach(f func(T) bool) {
	for _, item := range s.elems {
		if !f(item) {
			break
		}
	}
}
