package set

// 集合代数运算
// 所有二元运算都不修改操作数，每次返回一个新构造的结果集合
// 结果集合沿用接收者的相等函数

// Union 返回并集 A ∪ B
// 先按顺序放入本集合的全部元素，再追加另一集合中尚未出现的元素
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	result := NewFunc(s.name+" ∪ "+other.name, s.eq)

	for _, item := range s.elems {
		result.Insert(item)
	}
	for _, item := range other.elems {
		result.Insert(item)
	}

	return result
}

// Intersection 返回交集 A ∩ B，保留本集合的元素顺序
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	result := NewFunc(s.name+" ∩ "+other.name, s.eq)

	for _, item := range s.elems {
		if other.Contains(item) {
			result.Insert(item)
		}
	}

	return result
}

// Difference 返回差集 A − B，保留本集合的元素顺序
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	result := NewFunc(s.name+"-"+other.name, s.eq)

	for _, item := range s.elems {
		if !other.Contains(item) {
			result.Insert(item)
		}
	}

	return result
}

// SymmetricDifference 返回对称差集 (A − B) ∪ (B − A)
// 先按本集合顺序放入A−B，再按另一集合顺序放入B−A
func (s *Set[T]) SymmetricDifference(other *Set[T]) *Set[T] {
	result := NewFunc(s.name+" symmetric_difference "+other.name, s.eq)

	for _, item := range s.elems {
		if !other.Contains(item) {
			result.Insert(item)
		}
	}
	for _, item := range other.elems {
		if !s.Contains(item) {
			result.Insert(item)
		}
	}

	return result
}

// IsSubsetOf 检查本集合是否是另一集合的子集
// 空集是任何集合的子集，包括空集自身
func (s *Set[T]) IsSubsetOf(other *Set[T]) bool {
	for _, item := range s.elems {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// IsEqualTo 检查两个集合是否相等
// 相等定义为互为子集：A = B ⇔ (A ⊆ B) ∧ (B ⊆ A)
// 与元素顺序和集合名称无关
func (s *Set[T]) IsEqualTo(other *Set[T]) bool {
	return s.IsSubsetOf(other) && other.IsSubsetOf(s)
}
