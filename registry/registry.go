package registry

import (
	"fmt"

	"github.com/fyerfyer/set-kit/set"
	"github.com/fyerfyer/set-kit/slice"
)

// Registry 名称到集合的映射，让调用方可以用标签而不是句柄来引用集合
//
// 注册表按值持有集合：存入和取出都会克隆，调用方对自己手里集合的
// 修改不会影响注册表内部状态
// 同名注册是覆盖而不是合并，且覆盖保留首次注册的位置；没有删除操作
type Registry[T any] struct {
	sets  map[string]*set.Set[T]
	order []string // 名称的首次注册顺序
}

// NewRegistry 创建一个空的注册表
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		sets: make(map[string]*set.Set[T]),
	}
}

// AddSet 按名称注册集合，同名时覆盖已有内容
func (r *Registry[T]) AddSet(s *set.Set[T]) {
	name := s.Name()
	if _, exists := r.sets[name]; !exists {
		r.order = append(r.order, name)
	}
	r.sets[name] = s.Clone()
}

// HasSet 检查指定名称的集合是否已注册
func (r *Registry[T]) HasSet(name string) bool {
	_, exists := r.sets[name]
	return exists
}

// GetSet 返回指定名称集合的独立副本
// 名称未注册时返回ErrSetNotFound
func (r *Registry[T]) GetSet(name string) (*set.Set[T], error) {
	s, exists := r.sets[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, name)
	}
	return s.Clone(), nil
}

// InsertInto 向指定名称的集合插入一个元素
// 名称未注册时返回ErrSetNotFound
func (r *Registry[T]) InsertInto(name string, value T) error {
	s, exists := r.sets[name]
	if !exists {
		return fmt.Errorf("%w: %q", ErrSetNotFound, name)
	}
	s.Insert(value)
	return nil
}

// SetNames 按注册顺序返回所有集合名称的快照
func (r *Registry[T]) SetNames() []string {
	return slice.Clone(r.order)
}
