package registry

import (
	"fmt"

	"github.com/fyerfyer/set-kit/set"
)

// OpKind 集合运算符标识
type OpKind string

const (
	// OpUnion 并集运算
	OpUnion OpKind = "union"
	// OpIntersection 交集运算
	OpIntersection OpKind = "intersection"
	// OpDifference 差集运算
	OpDifference OpKind = "difference"
	// OpSymmetricDifference 对称差集运算
	OpSymmetricDifference OpKind = "symmetric_difference"
	// OpPowerSet 幂集运算（一元）
	OpPowerSet OpKind = "powerset"
)

// Operate 按名称解析两个操作数并执行二元集合运算
// 结果集合重命名为规范形式"(nameA op nameB)"
// 操作数未注册时返回ErrSetNotFound，运算符不在四种二元运算之内时
// 返回ErrInvalidOperation
func (r *Registry[T]) Operate(nameA string, op OpKind, nameB string) (*set.Set[T], error) {
	a, err := r.GetSet(nameA)
	if err != nil {
		return nil, err
	}
	b, err := r.GetSet(nameB)
	if err != nil {
		return nil, err
	}

	var result *set.Set[T]
	switch op {
	case OpUnion:
		result = a.Union(b)
	case OpIntersection:
		result = a.Intersection(b)
	case OpDifference:
		result = a.Difference(b)
	case OpSymmetricDifference:
		result = a.SymmetricDifference(b)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, string(op))
	}

	result.SetName(fmt.Sprintf("(%s %s %s)", nameA, op, nameB))
	return result, nil
}

// OperateUnary 按名称解析操作数并执行一元集合运算
// 目前只支持幂集，其余运算符返回ErrUnsupportedOperation
func (r *Registry[T]) OperateUnary(name string, op OpKind) (*set.Set[*set.Set[T]], error) {
	a, err := r.GetSet(name)
	if err != nil {
		return nil, err
	}

	if op != OpPowerSet {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOperation, string(op))
	}

	return set.PowerSet(a), nil
}

// CartesianProduct 按名称解析两个操作数并返回笛卡尔积 A × B
func (r *Registry[T]) CartesianProduct(nameA, nameB string) (*set.Set[set.Pair[T]], error) {
	a, err := r.GetSet(nameA)
	if err != nil {
		return nil, err
	}
	b, err := r.GetSet(nameB)
	if err != nil {
		return nil, err
	}

	return set.CartesianProduct(a, b), nil
}
